package api

import "github.com/HimTar/golang-transactions/internal/model"

// TransactionRequest is the PUT body. Amount and Type are pointers so a
// missing field can be told apart from zero or "".
type TransactionRequest struct {
	Amount   *float64 `json:"amount"`
	Type     *string  `json:"type"`
	ParentID *int64   `json:"parent_id"`
}

// TransactionResponse is the body of GET /transaction/{id}.
type TransactionResponse struct {
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	ParentID *int64  `json:"parent_id"`
}

// TransactionListItem is one element of GET /transactions/all.
type TransactionListItem struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	ParentID *int64  `json:"parent_id"`
}

type SumResponse struct {
	Sum float64 `json:"sum"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	Transactions int    `json:"transactions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (r TransactionRequest) toModel() model.Transaction {
	return model.Transaction{Amount: *r.Amount, Type: *r.Type, ParentID: r.ParentID}
}

func newTransactionResponse(tx model.Transaction) TransactionResponse {
	return TransactionResponse{Amount: tx.Amount, Type: tx.Type, ParentID: tx.ParentID}
}
