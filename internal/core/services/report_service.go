package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

type reportService struct {
	store ports.PollStore
}

func NewReportService(store ports.PollStore) ports.ReportService {
	return &reportService{
		store: store,
	}
}

// TallyAll loads every stored poll and reports its counts. Loads fan
// out concurrently; ViewResults semantics apply, so nothing is mutated.
func (s *reportService) TallyAll(ctx context.Context) ([]ports.PollTally, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll keys: %w", err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		tallies = make([]ports.PollTally, 0, len(keys))
	)
	errChan := make(chan error, len(keys))

	for _, key := range keys {
		wg.Add(1)
		go func(id string) { // passing the key by value to avoid closure issues
			defer wg.Done()

			poll, err := s.store.Load(ctx, id)
			if err != nil {
				errChan <- fmt.Errorf("failed to load poll %s: %w", id, err)
				return
			}

			yes, no := poll.Tally()
			mu.Lock()
			tallies = append(tallies, ports.PollTally{ID: id, Title: poll.Title, Yes: yes, No: no})
			mu.Unlock()
		}(key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(tallies, func(i, j int) bool { return tallies[i].ID < tallies[j].ID })

	return tallies, nil
}
