package cron

import (
	"context"
	"errors"
	"formbuilder/service"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// ChangeListener flushes the local snapshot cache when another instance
// changes a form.
type ChangeListener struct {
	reader     messageReader
	changes    *service.ChangeTracker
	retryDelay time.Duration
}

func NewChangeListener(reader *kafka.Reader, changes *service.ChangeTracker) *ChangeListener {
	return &ChangeListener{reader: reader, changes: changes, retryDelay: 5 * time.Second}
}

func (l *ChangeListener) handle(message kafka.Message) {
	event, err := service.DecodeChangeEvent(message.Value)
	if err != nil {
		log.Printf("Error decoding change event: %v", err)
		return
	}
	if event.Source == l.changes.Source() || event.Entity == service.EntitySubmission {
		return
	}
	l.changes.Flush()
}

func (l *ChangeListener) Listen(ctx context.Context) {
	go func() {
		defer l.reader.Close()
		for {
			message, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					return
				}
				log.Printf("Error reading change event: %v", err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryDelay):
				}
				continue
			}
			l.handle(message)
		}
	}()
}
