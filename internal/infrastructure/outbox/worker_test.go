package outbox

import (
	"context"
	"errors"
	"testing"

	"github.com/luminotest/go-backend/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeOutboxRepo struct {
	batches   [][]*usecase.OutboxEvent
	processed []int64
	markErr   error
}

func (r *fakeOutboxRepo) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	return event, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*usecase.OutboxEvent, error) {
	if len(r.batches) == 0 {
		return nil, nil
	}
	batch := r.batches[0]
	r.batches = r.batches[1:]
	return batch, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.processed = append(r.processed, id)
	return nil
}

type fakeSender struct {
	name   string
	err    error
	events []string
}

func (s *fakeSender) Name() string { return s.name }

func (s *fakeSender) Send(_ context.Context, event *usecase.OutboxEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event.EventID)
	return nil
}

func testEvents(ids ...int64) []*usecase.OutboxEvent {
	events := make([]*usecase.OutboxEvent, 0, len(ids))
	for _, id := range ids {
		event := usecase.NewOutboxEvent(id*100, []byte(`{}`))
		event.ID = id
		events = append(events, event)
	}
	return events
}

func TestProcessBatchMarksEventsDespiteSenderFailure(t *testing.T) {
	repo := &fakeOutboxRepo{batches: [][]*usecase.OutboxEvent{testEvents(1, 2)}}
	broken := &fakeSender{name: "webhook", err: errors.New("endpoint down")}
	healthy := &fakeSender{name: "kafka"}
	worker := NewWorker(repo, []usecase.NotificationSender{broken, healthy}, nopLogger{}, "")

	hasMore, err := worker.processBatch(context.Background())
	if err != nil {
		t.Fatalf("processBatch: %v", err)
	}
	if !hasMore {
		t.Fatalf("non-empty batch must report hasMore")
	}

	if len(repo.processed) != 2 {
		t.Fatalf("failed delivery must still mark events processed: got %v", repo.processed)
	}
	if len(healthy.events) != 2 {
		t.Fatalf("one broken sender must not block the other: delivered %d", len(healthy.events))
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	repo := &fakeOutboxRepo{}
	worker := NewWorker(repo, nil, nopLogger{}, "")

	hasMore, err := worker.processBatch(context.Background())
	if err != nil {
		t.Fatalf("processBatch: %v", err)
	}
	if hasMore {
		t.Fatalf("empty batch must report no more work")
	}
	if len(repo.processed) != 0 {
		t.Fatalf("nothing to process, but marked %v", repo.processed)
	}
}

func TestProcessBatchDrainsSequentially(t *testing.T) {
	repo := &fakeOutboxRepo{batches: [][]*usecase.OutboxEvent{
		testEvents(1, 2),
		testEvents(3),
	}}
	sender := &fakeSender{name: "webhook"}
	worker := NewWorker(repo, []usecase.NotificationSender{sender}, nopLogger{}, "")

	for {
		hasMore, err := worker.processBatch(context.Background())
		if err != nil {
			t.Fatalf("processBatch: %v", err)
		}
		if !hasMore {
			break
		}
	}

	if len(repo.processed) != 3 {
		t.Fatalf("drain must cover all batches: processed %v", repo.processed)
	}
	if len(sender.events) != 3 {
		t.Fatalf("drain must deliver all events: got %d", len(sender.events))
	}
}
