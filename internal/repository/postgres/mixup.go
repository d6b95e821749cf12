package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"traductor/internal/domain"
)

// MixupRepo implements repository.MixupRepository
type MixupRepo struct {
	db *sql.DB
}

// NewMixupRepo creates a new mixup repository
func NewMixupRepo(db *sql.DB) *MixupRepo {
	return &MixupRepo{db: db}
}

// LoadMixups returns the learner's table, empty when none was saved
func (r *MixupRepo) LoadMixups(userID int64) (domain.MixupTable, error) {
	var data []byte
	query := `SELECT data FROM mixups WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&data)

	if err == sql.ErrNoRows {
		return domain.MixupTable{}, nil
	}
	if err != nil {
		return nil, err
	}

	table := domain.MixupTable{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode mixups: %w", err)
	}
	return table, nil
}

// SaveMixups replaces the learner's whole table
func (r *MixupRepo) SaveMixups(userID int64, table domain.MixupTable) error {
	if table == nil {
		table = domain.MixupTable{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode mixups: %w", err)
	}

	query := `
		INSERT INTO mixups (user_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	_, err = r.db.Exec(query, userID, data)
	return err
}
