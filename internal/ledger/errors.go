package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched when a looked-up id, a declared parent or an
	// ancestor reached during summation is absent from the store.
	ErrNotFound = errors.New("ledger: transaction not found")

	// ErrCyclicChain is matched when following parent ids revisits a transaction.
	ErrCyclicChain = errors.New("ledger: cyclic parent chain")
)

// NotFoundError names the missing transaction.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find transaction '%d'.", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CyclicChainError reports a parent chain starting at ID that loops back to At.
type CyclicChainError struct {
	ID int64
	At int64
}

func (e *CyclicChainError) Error() string {
	return fmt.Sprintf("parent chain of transaction '%d' loops back to '%d'.", e.ID, e.At)
}

func (e *CyclicChainError) Is(target error) bool { return target == ErrCyclicChain }
