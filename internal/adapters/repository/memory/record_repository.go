package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// recordRepository is an in-memory PollStore for tests and local runs.
// Records are held as JSON blobs so the durable encoding is exercised
// the same way the Postgres store exercises it.
type recordRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewRecordRepository() ports.PollStore {
	return &recordRepository{
		records: make(map[string][]byte),
	}
}

func (r *recordRepository) Save(_ context.Context, id string, poll *domain.Poll) error {
	record, err := json.Marshal(poll)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[id] = record
	return nil
}

func (r *recordRepository) Load(_ context.Context, id string) (*domain.Poll, error) {
	r.mu.RLock()
	record, ok := r.records[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrPollNotFound
	}

	var poll domain.Poll
	if err := json.Unmarshal(record, &poll); err != nil {
		return nil, err
	}

	return &poll, nil
}

func (r *recordRepository) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.records))
	for id := range r.records {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys, nil
}
