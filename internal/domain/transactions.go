package domain

import "fmt"

// ClientID identifies the owner of an account.
type ClientID uint16

// TransactionID identifies a transaction. Ids are assumed unique across the
// whole input stream.
type TransactionID uint32

// TransactionKind defines the nature of a transaction record.
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
	TransactionKindDispute    TransactionKind = "dispute"
	TransactionKindResolve    TransactionKind = "resolve"
	TransactionKindChargeback TransactionKind = "chargeback"
)

// TransactionKinds lists every kind in the order they are reported.
var TransactionKinds = []TransactionKind{
	TransactionKindDeposit,
	TransactionKindWithdrawal,
	TransactionKindDispute,
	TransactionKindResolve,
	TransactionKindChargeback,
}

// ParseTransactionKind maps the textual type column onto a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return k, nil
}

// Valid reports whether k is one of the five known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindDeposit, TransactionKindWithdrawal, TransactionKindDispute,
		TransactionKindResolve, TransactionKindChargeback:
		return true
	}
	return false
}

// CarriesAmount reports whether records of this kind must specify an amount.
// Dispute, resolve and chargeback reference an earlier deposit instead.
func (k TransactionKind) CarriesAmount() bool {
	return k == TransactionKindDeposit || k == TransactionKindWithdrawal
}

// Transaction is one parsed input record. Amount is only meaningful when
// Kind.CarriesAmount() is true.
type Transaction struct {
	Kind   TransactionKind
	Client ClientID
	ID     TransactionID
	Amount Amount
}

// Deposit builds a deposit record.
func Deposit(client ClientID, id TransactionID, amount Amount) Transaction {
	return Transaction{Kind: TransactionKindDeposit, Client: client, ID: id, Amount: amount}
}

// Withdrawal builds a withdrawal record.
func Withdrawal(client ClientID, id TransactionID, amount Amount) Transaction {
	return Transaction{Kind: TransactionKindWithdrawal, Client: client, ID: id, Amount: amount}
}

// Dispute builds a dispute record referencing deposit id.
func Dispute(client ClientID, id TransactionID) Transaction {
	return Transaction{Kind: TransactionKindDispute, Client: client, ID: id}
}

// Resolve builds a resolve record referencing deposit id.
func Resolve(client ClientID, id TransactionID) Transaction {
	return Transaction{Kind: TransactionKindResolve, Client: client, ID: id}
}

// Chargeback builds a chargeback record referencing deposit id.
func Chargeback(client ClientID, id TransactionID) Transaction {
	return Transaction{Kind: TransactionKindChargeback, Client: client, ID: id}
}
