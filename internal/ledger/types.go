package ledger

// FindByType returns the ids of every transaction whose type equals typ
// exactly, in insertion order. The result is never nil.
func FindByType(s Scanner, typ string) []int64 {
	ids := []int64{}
	for _, e := range s.Scan() {
		if e.Transaction.Type == typ {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
