package ledger

import (
	"sync"

	"github.com/HimTar/golang-transactions/internal/model"
)

// Reader is the read side of the store used by validation and summation.
type Reader interface {
	Get(id int64) (model.Transaction, error)
	Contains(id int64) bool
}

// Writer is a Reader that can also store transactions.
type Writer interface {
	Reader
	Put(id int64, tx model.Transaction)
}

// Scanner iterates every stored transaction.
type Scanner interface {
	Scan() []model.Entry
}

// Store keeps transactions in memory keyed by id. All methods are safe for
// concurrent use. Records are copied on the way in and out, so callers never
// share memory with the store.
type Store struct {
	mu    sync.RWMutex
	txs   map[int64]model.Transaction
	order []int64 // first-insertion order; overwrites keep their slot
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{txs: make(map[int64]model.Transaction)}
}

// Put inserts or replaces the transaction stored under id.
func (s *Store) Put(id int64, tx model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(id, tx)
}

// Get returns the transaction stored under id, or a *NotFoundError.
func (s *Store) Get(id int64) (model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(id)
}

// Contains reports whether id is stored.
func (s *Store) Contains(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.txs[id]
	return ok
}

// Scan returns a snapshot of every entry in insertion order.
func (s *Store) Scan() []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, model.Entry{ID: id, Transaction: s.txs[id].Clone()})
	}
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}

// Update runs fn with exclusive access to the store. Reads and writes made
// through w are applied directly; fn returning an error does not undo writes
// it already made.
func (s *Store) Update(fn func(w Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(unlocked{s})
}

// View runs fn with a read-only view that observes no concurrent writes.
func (s *Store) View(fn func(r Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(unlocked{s})
}

func (s *Store) put(id int64, tx model.Transaction) {
	if _, exists := s.txs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.txs[id] = tx.Clone()
}

func (s *Store) get(id int64) (model.Transaction, error) {
	tx, ok := s.txs[id]
	if !ok {
		return model.Transaction{}, &NotFoundError{ID: id}
	}
	return tx.Clone(), nil
}

// unlocked accesses the store's maps directly; the caller holds s.mu.
type unlocked struct {
	s *Store
}

func (u unlocked) Get(id int64) (model.Transaction, error) { return u.s.get(id) }

func (u unlocked) Contains(id int64) bool {
	_, ok := u.s.txs[id]
	return ok
}

func (u unlocked) Put(id int64, tx model.Transaction) { u.s.put(id, tx) }
