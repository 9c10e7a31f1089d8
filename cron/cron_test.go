package cron

import (
	"context"
	"errors"
	"formbuilder/repository"
	"formbuilder/service"
	"formbuilder/testutil"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrphanSweepRemovesDanglingRows(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&repository.Form{Id: "form-1", Title: "form"}).Error)
	require.NoError(t, db.Create(&repository.Question{Id: "q-1", FormId: "form-1", Type: repository.SingleChoice}).Error)
	require.NoError(t, db.Create(&repository.Question{Id: "q-2", FormId: "form-1", Type: repository.FreeText, IsSubQuestion: true}).Error)
	require.NoError(t, db.Create(&repository.Option{Id: "opt-1", QuestionId: "q-1"}).Error)
	require.NoError(t, db.Create(&repository.Option{Id: "opt-dangling", QuestionId: "q-gone"}).Error)
	require.NoError(t, db.Create(&repository.Conditional{Id: "cond-1", RevealingOptionId: "opt-1", RevealedQuestionId: "q-2"}).Error)
	require.NoError(t, db.Create(&repository.Conditional{Id: "cond-dangling", RevealingOptionId: "opt-gone", RevealedQuestionId: "q-2"}).Error)

	cache := persistence.NewInMemoryStore(time.Minute)
	require.NoError(t, cache.Set("snapshot:form-1", "stale", persistence.DEFAULT))
	changes := service.NewChangeTracker(service.NoopPublisher{}, cache, "test")
	generation := changes.Generation()
	sweep := NewOrphanSweep(db, changes, time.Hour)

	counts, err := sweep.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Questions)
	assert.Equal(t, int64(1), counts.Options)
	assert.Equal(t, int64(1), counts.Conditionals)

	var optionIds, conditionalIds []string
	require.NoError(t, db.Model(&repository.Option{}).Pluck("id", &optionIds).Error)
	require.NoError(t, db.Model(&repository.Conditional{}).Pluck("id", &conditionalIds).Error)
	assert.Equal(t, []string{"opt-1"}, optionIds)
	assert.Equal(t, []string{"cond-1"}, conditionalIds)

	var cached string
	assert.ErrorIs(t, cache.Get("snapshot:form-1", &cached), persistence.ErrCacheMiss)
	assert.NotEqual(t, generation, changes.Generation())

	counts, err = sweep.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Options+counts.Conditionals)
}

type fakeReader struct {
	messages chan kafka.Message
	closed   chan struct{}
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case message := <-r.messages:
		return message, nil
	}
}

type failingReader struct {
	reads  atomic.Int32
	closed chan struct{}
}

func (r *failingReader) ReadMessage(context.Context) (kafka.Message, error) {
	r.reads.Add(1)
	return kafka.Message{}, errors.New("broker unavailable")
}

func (r *failingReader) Close() error {
	close(r.closed)
	return nil
}

func (r *fakeReader) Close() error {
	close(r.closed)
	return nil
}

func TestChangeListenerFlushesForOtherInstances(t *testing.T) {
	cache := persistence.NewInMemoryStore(time.Minute)
	listener := &ChangeListener{changes: service.NewChangeTracker(service.NoopPublisher{}, cache, "me")}

	require.NoError(t, cache.Set("snapshot:form-1", "cached", persistence.DEFAULT))
	listener.handle(kafka.Message{Value: []byte(`{"entity":"question","action":"updated","id":"q-1","source":"me"}`)})
	listener.handle(kafka.Message{Value: []byte(`{"entity":"submission","action":"created","id":"sub-1","source":"other"}`)})
	listener.handle(kafka.Message{Value: []byte(`not json`)})
	var cached string
	assert.NoError(t, cache.Get("snapshot:form-1", &cached))

	listener.handle(kafka.Message{Value: []byte(`{"entity":"question","action":"updated","id":"q-1","source":"other"}`)})
	assert.ErrorIs(t, cache.Get("snapshot:form-1", &cached), persistence.ErrCacheMiss)
}

func TestChangeListenerStopsOnCancel(t *testing.T) {
	reader := &fakeReader{messages: make(chan kafka.Message), closed: make(chan struct{})}
	changes := service.NewChangeTracker(service.NoopPublisher{}, persistence.NewInMemoryStore(time.Minute), "me")
	listener := &ChangeListener{reader: reader, changes: changes, retryDelay: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	listener.Listen(ctx)
	reader.messages <- kafka.Message{Value: []byte(`{"entity":"form","action":"created","id":"form-1","source":"other"}`)}
	cancel()
	select {
	case <-reader.closed:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestChangeListenerWaitsAfterReadError(t *testing.T) {
	reader := &failingReader{closed: make(chan struct{})}
	changes := service.NewChangeTracker(service.NoopPublisher{}, persistence.NewInMemoryStore(time.Minute), "me")
	listener := &ChangeListener{reader: reader, changes: changes, retryDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	listener.Listen(ctx)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), reader.reads.Load())

	cancel()
	select {
	case <-reader.closed:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop while waiting to retry")
	}
}

func TestChangeListenerBumpsGeneration(t *testing.T) {
	changes := service.NewChangeTracker(service.NoopPublisher{}, persistence.NewInMemoryStore(time.Minute), "me")
	listener := &ChangeListener{changes: changes}
	generation := changes.Generation()

	listener.handle(kafka.Message{Value: []byte(`{"entity":"option","action":"deleted","id":"opt-1","source":"other"}`)})
	assert.NotEqual(t, generation, changes.Generation())
}
