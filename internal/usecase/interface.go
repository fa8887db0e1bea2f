package usecase

import (
	"context"
	"io"

	"txengine/internal/domain"
)

// TransactionSource opens a stream of parsed transaction records.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type TransactionSource interface {
	Open(ctx context.Context, path string) (TransactionStream, error)
}

// TransactionStream yields records in input order. Next returns io.EOF once
// the input is exhausted; any other error is fatal for the run.
type TransactionStream interface {
	Next() (domain.Transaction, error)
	Close() error
}

// AccountWriter renders the final account table.
type AccountWriter interface {
	WriteAccounts(ctx context.Context, w io.Writer, accounts []domain.ClientAccount) error
}
