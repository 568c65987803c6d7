package ledger

// Sum returns the amount of transaction id plus the amounts of all of its
// ancestors. A missing transaction anywhere on the chain fails with a
// *NotFoundError; a chain that revisits a transaction fails with a
// *CyclicChainError instead of walking forever.
func Sum(r Reader, id int64) (float64, error) {
	seen := make(map[int64]struct{})
	var amounts []float64

	next := &id
	for next != nil {
		cur := *next
		if _, ok := seen[cur]; ok {
			return 0, &CyclicChainError{ID: id, At: cur}
		}
		seen[cur] = struct{}{}

		tx, err := r.Get(cur)
		if err != nil {
			return 0, err
		}
		amounts = append(amounts, tx.Amount)
		next = tx.ParentID
	}

	// Add from the root down, the same association as amount + sum(parent).
	var total float64
	for i := len(amounts) - 1; i >= 0; i-- {
		total = amounts[i] + total
	}
	return total, nil
}
