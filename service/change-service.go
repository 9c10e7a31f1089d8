package service

import (
	"context"
	"encoding/json"
	"errors"
	"formbuilder/metrics"
	"log"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/segmentio/kafka-go"
)

type Entity = string
type Action = string

const (
	EntityForm        Entity = "form"
	EntityQuestion    Entity = "question"
	EntityOption      Entity = "option"
	EntityConditional Entity = "conditional"
	EntitySubmission  Entity = "submission"
)

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

type ChangeEvent struct {
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	Id        string    `json:"id"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ChangeEvent) error {
	return nil
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Id),
		Value: data,
	})
}

func DecodeChangeEvent(data []byte) (ChangeEvent, error) {
	var event ChangeEvent
	err := json.Unmarshal(data, &event)
	return event, err
}

// ChangeTracker invalidates cached form snapshots and announces a change.
// Neither step can fail the mutation that triggered it.
type ChangeTracker struct {
	publisher Publisher
	snapshots persistence.CacheStore
	source    string
	// bumped before every flush
	generation atomic.Uint64
}

func NewChangeTracker(publisher Publisher, snapshots persistence.CacheStore, source string) *ChangeTracker {
	return &ChangeTracker{publisher: publisher, snapshots: snapshots, source: source}
}

func (t *ChangeTracker) Track(entity Entity, action Action, id string) {
	t.Flush()
	t.Publish(entity, action, id)
}

// Flush drops every cached snapshot.
func (t *ChangeTracker) Flush() {
	t.generation.Add(1)
	if err := t.snapshots.Flush(); err != nil {
		log.Printf("Error flushing snapshot cache: %v", err)
	}
}

// Generation must be read before loading the data that is later passed to
// StoreSnapshot.
func (t *ChangeTracker) Generation() uint64 {
	return t.generation.Load()
}

// StoreSnapshot caches value unless a flush happened since generation was
// read. A flush racing with the write removes the entry again.
func (t *ChangeTracker) StoreSnapshot(key string, value any, generation uint64) {
	if t.generation.Load() != generation {
		return
	}
	if err := t.snapshots.Set(key, value, persistence.DEFAULT); err != nil {
		log.Printf("Error writing snapshot cache: %v", err)
		return
	}
	if t.generation.Load() != generation {
		if err := t.snapshots.Delete(key); err != nil && !errors.Is(err, persistence.ErrCacheMiss) {
			log.Printf("Error removing stale snapshot %s: %v", key, err)
		}
	}
}

// Publish announces a change that does not affect form snapshots.
func (t *ChangeTracker) Publish(entity Entity, action Action, id string) {
	event := ChangeEvent{
		Entity:    entity,
		Action:    action,
		Id:        id,
		Source:    t.source,
		Timestamp: time.Now(),
	}
	if err := t.publisher.Publish(context.Background(), event); err != nil {
		log.Printf("Error publishing %s %s event for %s: %v", entity, action, id, err)
		metrics.ChangeEventErrorsTotal.Inc()
		return
	}
	metrics.ChangeEventsTotal.WithLabelValues(entity, action).Inc()
}

// Source identifies the instance the tracker publishes for.
func (t *ChangeTracker) Source() string {
	return t.source
}

func (t *ChangeTracker) Snapshots() persistence.CacheStore {
	return t.snapshots
}
