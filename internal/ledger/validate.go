package ledger

import "github.com/HimTar/golang-transactions/internal/model"

// ValidateParent checks that the parent declared by tx, if any, is stored.
func ValidateParent(r Reader, tx model.Transaction) error {
	if !tx.HasParent() {
		return nil
	}
	if !r.Contains(*tx.ParentID) {
		return &NotFoundError{ID: *tx.ParentID}
	}
	return nil
}

// CheckCycle rejects storing tx under id when its parent chain would reach id
// again (an overwrite re-parenting a transaction under one of its descendants)
// or run into a loop that already exists. The walk stops at the first missing
// ancestor; existence is ValidateParent's concern.
func CheckCycle(r Reader, id int64, tx model.Transaction) error {
	seen := make(map[int64]struct{})
	next := tx.ParentID
	for next != nil {
		cur := *next
		if cur == id {
			return &CyclicChainError{ID: id, At: cur}
		}
		if _, ok := seen[cur]; ok {
			return &CyclicChainError{ID: id, At: cur}
		}
		seen[cur] = struct{}{}

		parent, err := r.Get(cur)
		if err != nil {
			return nil
		}
		next = parent.ParentID
	}
	return nil
}
