// Package ledger holds the in-memory transaction store and the operations
// served on top of it: admission with parent validation, lookup by id,
// lookup by type and parent chain summation.
package ledger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HimTar/golang-transactions/internal/model"
)

// Ledger admits and queries transactions.
type Ledger struct {
	store  *Store
	logger *zerolog.Logger
}

// New creates a Ledger over store. A nil logger uses the global zerolog logger.
func New(store *Store, logger *zerolog.Logger) *Ledger {
	if logger == nil {
		logger = &log.Logger
	}
	return &Ledger{store: store, logger: logger}
}

// Put stores tx under id, replacing any previous transaction with that id.
// The declared parent must already be stored and the resulting chain must
// not loop. Validation and the write happen under one lock, so a parent
// that is being written concurrently is either fully visible or reported
// missing; the call is never retried.
func (l *Ledger) Put(id int64, tx model.Transaction) error {
	err := l.store.Update(func(w Writer) error {
		if err := ValidateParent(w, tx); err != nil {
			return err
		}
		if err := CheckCycle(w, id, tx); err != nil {
			return err
		}
		w.Put(id, tx)
		return nil
	})
	if err != nil {
		l.logger.Debug().Int64("id", id).Err(err).Msg("transaction rejected")
		return err
	}
	l.logger.Debug().Int64("id", id).Str("type", tx.Type).Float64("amount", tx.Amount).Msg("transaction stored")
	return nil
}

// Get returns the transaction stored under id.
func (l *Ledger) Get(id int64) (model.Transaction, error) {
	return l.store.Get(id)
}

// Sum returns the chain sum starting at id, read from one consistent state.
func (l *Ledger) Sum(id int64) (float64, error) {
	var total float64
	err := l.store.View(func(r Reader) error {
		var err error
		total, err = Sum(r, id)
		return err
	})
	return total, err
}

// FindByType returns the ids of transactions whose type equals typ.
func (l *Ledger) FindByType(typ string) []int64 {
	return FindByType(l.store, typ)
}

// All returns every stored transaction in insertion order.
func (l *Ledger) All() []model.Entry {
	return l.store.Scan()
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return l.store.Len()
}
