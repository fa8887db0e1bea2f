package engine

import (
	"errors"
	"fmt"

	"txengine/internal/domain"
)

// Processing errors. Each operation documents the subset it can return;
// all of them leave the processor state unchanged.
var (
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInsufficientFunds   = errors.New("insufficient funds available")
	ErrTransactionNotFound = errors.New("referenced transaction not found for client")
	ErrDisputeNotFound     = errors.New("no open dispute for referenced transaction")
	ErrAccountFrozen       = errors.New("account is frozen")
	ErrUnknownKind         = errors.New("unknown transaction kind")
	ErrProcessorFinished   = errors.New("processor already finished")
)

// TransactionError reports a rejected transaction together with the record
// that caused it.
type TransactionError struct {
	Kind   domain.TransactionKind
	Client domain.ClientID
	TxID   domain.TransactionID
	Err    error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s tx %d for client %d: %v", e.Kind, e.TxID, e.Client, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func reject(kind domain.TransactionKind, client domain.ClientID, tx domain.TransactionID, err error) error {
	return &TransactionError{Kind: kind, Client: client, TxID: tx, Err: err}
}
