// Package seed reads transactions from a YAML file and admits them into a
// ledger in file order, so later rows may name earlier rows as parents.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HimTar/golang-transactions/internal/model"
)

// Row is one transaction in a seed file.
type Row struct {
	ID       int64    `yaml:"id"`
	Amount   *float64 `yaml:"amount"`
	Type     *string  `yaml:"type"`
	ParentID *int64   `yaml:"parent_id,omitempty"`
}

type file struct {
	Transactions []Row `yaml:"transactions"`
}

// Admitter stores a validated transaction. *ledger.Ledger satisfies it.
type Admitter interface {
	Put(id int64, tx model.Transaction) error
}

// Transaction converts the row, requiring an amount and a type.
func (r Row) Transaction() (model.Transaction, error) {
	if r.Amount == nil {
		return model.Transaction{}, errors.New("amount is required")
	}
	if r.Type == nil {
		return model.Transaction{}, errors.New("type is required")
	}
	return model.Transaction{Amount: *r.Amount, Type: *r.Type, ParentID: r.ParentID}, nil
}

// Read decodes a seed document. Unknown keys are rejected.
func Read(r io.Reader) ([]Row, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return f.Transactions, nil
}

// Apply admits rows in order and stops at the first rejected one. It returns
// how many rows were stored.
func Apply(rows []Row, dst Admitter) (int, error) {
	for i, row := range rows {
		tx, err := row.Transaction()
		if err == nil {
			err = dst.Put(row.ID, tx)
		}
		if err != nil {
			return i, fmt.Errorf("row %d (id %d): %w", i+1, row.ID, err)
		}
	}
	return len(rows), nil
}

// LoadFile reads path and applies it to dst.
func LoadFile(path string, dst Admitter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return 0, fmt.Errorf("reading seed %s: %w", path, err)
	}
	return Apply(rows, dst)
}
