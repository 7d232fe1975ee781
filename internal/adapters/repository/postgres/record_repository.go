package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// recordRepository persists each poll as one opaque JSON blob keyed by
// the poll's message id. The blob layout is the durable record
// contract; nothing here inspects it beyond (de)serialization.
type recordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) ports.PollStore {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) Save(ctx context.Context, id string, poll *domain.Poll) error {
	record, err := json.Marshal(poll)
	if err != nil {
		return fmt.Errorf("failed to encode poll record: %w", err)
	}

	query := `
		INSERT INTO poll_records (id, record)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record, updated_at = NOW()
	`
	_, err = r.db.ExecContext(ctx, query, id, record)
	if err != nil {
		return fmt.Errorf("failed to save poll record: %w", err)
	}

	return nil
}

func (r *recordRepository) Load(ctx context.Context, id string) (*domain.Poll, error) {
	query := `SELECT record FROM poll_records WHERE id = $1`

	var record []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&record)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to load poll record: %w", err)
	}

	var poll domain.Poll
	if err := json.Unmarshal(record, &poll); err != nil {
		return nil, fmt.Errorf("failed to decode poll record: %w", err)
	}

	return &poll, nil
}

func (r *recordRepository) Keys(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM poll_records ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list poll records: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan poll record id: %w", err)
		}
		keys = append(keys, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll records: %w", err)
	}

	return keys, nil
}
