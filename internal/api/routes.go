// Package api exposes the ledger over HTTP under /transactionservice.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// NewRouter wires the transactionservice routes and middleware.
func NewRouter(h *Handler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID(logger))
	r.Use(Logger)
	r.Use(Recovery)

	r.Get("/health", h.Health)

	r.Route("/transactionservice", func(r chi.Router) {
		// GET Routes
		r.Get("/transactions/all", h.GetAllTransactions)
		r.Get("/transaction/{id}", h.GetTransaction)
		r.Get("/types/{type}", h.GetTransactionsByType)
		r.Get("/sum/{id}", h.GetTransactionSum)

		// PUT Routes
		r.Put("/transaction/{id}", h.PutTransaction)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
