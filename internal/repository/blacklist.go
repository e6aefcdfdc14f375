package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNoDatabase = errors.New("no database configured")

// BlacklistRepository reads additional common passwords from the
// common_passwords table.
type BlacklistRepository struct {
	db *sql.DB
}

// NewBlacklistRepository creates a new BlacklistRepository.
func NewBlacklistRepository(db *sql.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// List returns every non-empty entry of common_passwords.
func (r *BlacklistRepository) List(ctx context.Context) ([]string, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	query := `SELECT password FROM common_passwords WHERE password <> ''`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying common passwords: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scanning common password: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
