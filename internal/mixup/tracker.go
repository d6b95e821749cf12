// Package mixup keeps a persistent count of which wrong answers were given
// for which expected answers.
package mixup

import (
	"cmp"

	"traductor/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Store persists a whole mixup table
type Store interface {
	Load() (domain.MixupTable, error)
	Save(table domain.MixupTable) error
}

// Tracker owns the in-memory mixup table and mirrors every mutation to its
// store. Store failures are logged and never returned.
type Tracker struct {
	store  Store
	table  domain.MixupTable
	logger *zap.Logger
}

// NewTracker loads the table from store; a failed load starts empty
func NewTracker(store Store, logger *zap.Logger) *Tracker {
	t := &Tracker{store: store, logger: logger, table: domain.MixupTable{}}

	table, err := store.Load()
	if err != nil {
		logger.Warn("Failed to load mixup table, starting empty", zap.Error(err))
		return t
	}
	for expected, wrongs := range table {
		for wrong, n := range wrongs {
			if expected == "" || wrong == "" || n <= 0 {
				continue
			}
			t.cell(expected)[wrong] = n
		}
	}
	return t
}

// Record counts one occurrence of wrong given for expected
func (t *Tracker) Record(expected, wrong string) {
	if expected == "" || wrong == "" {
		return
	}
	t.cell(expected)[wrong]++
	t.persist()
}

// Revert undoes one Record, pruning cells and buckets that reach zero
func (t *Tracker) Revert(expected, wrong string) {
	wrongs, ok := t.table[expected]
	if !ok {
		return
	}
	n, ok := wrongs[wrong]
	if !ok {
		return
	}
	if n <= 1 {
		delete(wrongs, wrong)
	} else {
		wrongs[wrong] = n - 1
	}
	if len(wrongs) == 0 {
		delete(t.table, expected)
	}
	t.persist()
}

// Query returns rows sorted by count descending, then expected and wrong.
// An empty expected returns every row.
func (t *Tracker) Query(expected string) []domain.MixupRow {
	var rows []domain.MixupRow
	for e, wrongs := range t.table {
		if expected != "" && e != expected {
			continue
		}
		for w, n := range wrongs {
			rows = append(rows, domain.MixupRow{Expected: e, Wrong: w, Count: n})
		}
	}
	slices.SortFunc(rows, func(a, b domain.MixupRow) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		if a.Expected != b.Expected {
			return cmp.Compare(a.Expected, b.Expected)
		}
		return cmp.Compare(a.Wrong, b.Wrong)
	})
	return rows
}

// Clear empties the table
func (t *Tracker) Clear() {
	t.table = domain.MixupTable{}
	t.persist()
}

// Table returns a copy of the current table
func (t *Tracker) Table() domain.MixupTable {
	return t.table.Clone()
}

func (t *Tracker) cell(expected string) map[string]int {
	wrongs, ok := t.table[expected]
	if !ok {
		wrongs = make(map[string]int)
		t.table[expected] = wrongs
	}
	return wrongs
}

func (t *Tracker) persist() {
	if err := t.store.Save(t.table.Clone()); err != nil {
		t.logger.Warn("Failed to save mixup table", zap.Error(err))
	}
}

// MemoryStore keeps the table in memory only
type MemoryStore struct {
	table domain.MixupTable
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: domain.MixupTable{}}
}

func (s *MemoryStore) Load() (domain.MixupTable, error) {
	return s.table.Clone(), nil
}

func (s *MemoryStore) Save(table domain.MixupTable) error {
	s.table = table.Clone()
	return nil
}
