// Package txid converts transaction identifiers between their textual form
// (URL path segments, seed files) and the int64 key used by the ledger.
package txid

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidFormat is matched by every decode failure.
var ErrInvalidFormat = errors.New("txid: invalid transaction id format")

// FormatError reports identifier text that is not a decimal int64.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("the following transaction_id : '%s' is not of type 'long'.", e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// Decode parses "42", "+42" or "-42" into an id. Whitespace, other bases and
// values outside the int64 range are rejected.
func Decode(text string) (int64, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &FormatError{Text: text, Err: err}
	}
	return id, nil
}

// Encode returns the canonical decimal form of id.
func Encode(id int64) string {
	return strconv.FormatInt(id, 10)
}
