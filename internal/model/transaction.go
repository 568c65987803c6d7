package model

// Transaction is a ledger record. Its id is the key it is stored under.
type Transaction struct {
	Amount   float64
	Type     string
	ParentID *int64 // nil = root transaction
}

// Entry pairs a transaction with the id it is stored under.
type Entry struct {
	ID          int64
	Transaction Transaction
}

// HasParent reports whether the transaction declares a parent.
func (t Transaction) HasParent() bool {
	return t.ParentID != nil
}

// Clone returns a copy that shares no memory with t.
func (t Transaction) Clone() Transaction {
	if t.ParentID != nil {
		p := *t.ParentID
		t.ParentID = &p
	}
	return t
}

// ParentOf is a convenience for building a ParentID.
func ParentOf(id int64) *int64 {
	return &id
}
