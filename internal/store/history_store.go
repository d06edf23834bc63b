package store

import "context"

// HistoryStore is the append-only ledger of completed calculations.
type HistoryStore struct {
	db DB
}

func NewHistoryStore(db DB) *HistoryStore {
	return &HistoryStore{db: db}
}

type HistoryEntry struct {
	ID        string `db:"id" json:"id"`
	ZakatType string `db:"zakat_type" json:"type"`
	CreatedAt string `db:"created_at" json:"timestamp"`
	Input     string `db:"input" json:"input"`
	Result    string `db:"result" json:"result"`
	Currency  string `db:"currency" json:"currency"`
}

type HistoryEntryInput struct {
	ID        string
	ZakatType string
	CreatedAt string
	Input     string
	Result    string
	Currency  string
}

func (s *HistoryStore) Append(ctx context.Context, input HistoryEntryInput) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history_entries (id, zakat_type, created_at, input, result, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, input.ID, input.ZakatType, input.CreatedAt, input.Input, input.Result, input.Currency)
	return err
}

// List returns every entry, most recent first.
func (s *HistoryStore) List(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	err := s.db.SelectContext(ctx, &entries, `
		SELECT id, zakat_type, created_at, input, result, currency
		FROM history_entries
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove deletes one entry and reports how many rows matched.
func (s *HistoryStore) Remove(ctx context.Context, id string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM history_entries
		WHERE id = $1
	`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history_entries`)
	return err
}
