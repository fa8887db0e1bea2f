package engine

import (
	"fmt"

	"txengine/internal/domain"
)

// FrozenPolicy decides whether a frozen account still accepts deposits and
// withdrawals. Disputes, resolves and chargebacks are never blocked.
type FrozenPolicy int

const (
	// FrozenAllow records the frozen flag but does not enforce it.
	FrozenAllow FrozenPolicy = iota
	// FrozenReject refuses deposits and withdrawals on frozen accounts.
	FrozenReject
)

// ParseFrozenPolicy accepts "allow" or "reject".
func ParseFrozenPolicy(s string) (FrozenPolicy, error) {
	switch s {
	case "allow":
		return FrozenAllow, nil
	case "reject":
		return FrozenReject, nil
	}
	return FrozenAllow, fmt.Errorf("unknown frozen account policy %q", s)
}

func (p FrozenPolicy) String() string {
	if p == FrozenReject {
		return "reject"
	}
	return "allow"
}

// Option configures a Processor.
type Option func(*Processor)

// WithFrozenPolicy sets how frozen accounts are treated.
func WithFrozenPolicy(policy FrozenPolicy) Option {
	return func(p *Processor) {
		p.frozenPolicy = policy
	}
}

// Processor applies transactions to client accounts, one at a time, in the
// order they are received. It exclusively owns the account table and the
// deposit ledger and is not safe for concurrent use.
//
// Transactions never cross clients, so independent processors could each
// own a disjoint set of clients.
type Processor struct {
	accounts     map[domain.ClientID]*domain.Account
	order        []domain.ClientID
	ledger       *ledger
	frozenPolicy FrozenPolicy
	stats        map[domain.TransactionKind]domain.KindStats
	finished     bool
}

// NewProcessor creates an empty processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		accounts: make(map[domain.ClientID]*domain.Account),
		ledger:   newLedger(),
		stats:    make(map[domain.TransactionKind]domain.KindStats),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply dispatches a parsed record to the matching operation.
//
// Errors: those of the dispatched operation, ErrUnknownKind for any other
// kind, ErrProcessorFinished.
func (p *Processor) Apply(tx domain.Transaction) error {
	switch tx.Kind {
	case domain.TransactionKindDeposit:
		return p.Deposit(tx.Client, tx.ID, tx.Amount)
	case domain.TransactionKindWithdrawal:
		return p.Withdraw(tx.Client, tx.ID, tx.Amount)
	case domain.TransactionKindDispute:
		return p.Dispute(tx.Client, tx.ID)
	case domain.TransactionKindResolve:
		return p.Resolve(tx.Client, tx.ID)
	case domain.TransactionKindChargeback:
		return p.Chargeback(tx.Client, tx.ID)
	default:
		return reject(tx.Kind, tx.Client, tx.ID, ErrUnknownKind)
	}
}

// Deposit credits amount to the client's available funds, opening the
// account if needed, and makes the deposit disputable.
//
// Errors: ErrNegativeAmount, ErrAccountFrozen (FrozenReject only),
// ErrProcessorFinished.
func (p *Processor) Deposit(client domain.ClientID, tx domain.TransactionID, amount domain.Amount) error {
	const kind = domain.TransactionKindDeposit
	if p.finished {
		return reject(kind, client, tx, ErrProcessorFinished)
	}
	if amount.IsNegative() {
		return p.rejected(kind, client, tx, ErrNegativeAmount)
	}
	acc := p.account(client)
	if acc.Frozen && p.frozenPolicy == FrozenReject {
		return p.rejected(kind, client, tx, ErrAccountFrozen)
	}

	acc.Available = acc.Available.Add(amount)
	p.ledger.recordDeposit(ledgerKey{client, tx}, amount)
	p.applied(kind)
	return nil
}

// Withdraw debits amount from the client's available funds. Withdrawals are
// not disputable.
//
// The account is opened before the funds check, so a withdrawal from an
// unknown client leaves an empty account behind even though it fails.
//
// Errors: ErrNegativeAmount, ErrInsufficientFunds, ErrAccountFrozen
// (FrozenReject only), ErrProcessorFinished.
func (p *Processor) Withdraw(client domain.ClientID, tx domain.TransactionID, amount domain.Amount) error {
	const kind = domain.TransactionKindWithdrawal
	if p.finished {
		return reject(kind, client, tx, ErrProcessorFinished)
	}
	if amount.IsNegative() {
		return p.rejected(kind, client, tx, ErrNegativeAmount)
	}
	acc := p.account(client)
	if acc.Frozen && p.frozenPolicy == FrozenReject {
		return p.rejected(kind, client, tx, ErrAccountFrozen)
	}
	if acc.Available.LessThan(amount) {
		return p.rejected(kind, client, tx, ErrInsufficientFunds)
	}

	acc.Available = acc.Available.Sub(amount)
	p.applied(kind)
	return nil
}

// Dispute moves the funds of a pending deposit from available to held.
// The account total is unchanged.
//
// Errors: ErrTransactionNotFound, which covers unknown ids, withdrawals,
// deposits of another client and deposits already disputed or charged back;
// ErrProcessorFinished.
func (p *Processor) Dispute(client domain.ClientID, tx domain.TransactionID) error {
	const kind = domain.TransactionKindDispute
	if p.finished {
		return reject(kind, client, tx, ErrProcessorFinished)
	}
	amount, ok := p.ledger.beginDispute(ledgerKey{client, tx})
	if !ok {
		return p.rejected(kind, client, tx, ErrTransactionNotFound)
	}

	// a ledger entry implies the deposit opened the account
	acc := p.accounts[client]
	acc.Available = acc.Available.Sub(amount)
	acc.Held = acc.Held.Add(amount)
	p.applied(kind)
	return nil
}

// Resolve releases the held funds of a disputed deposit back to available.
// The deposit becomes pending again and may be disputed later.
//
// Errors: ErrDisputeNotFound, ErrProcessorFinished.
func (p *Processor) Resolve(client domain.ClientID, tx domain.TransactionID) error {
	const kind = domain.TransactionKindResolve
	if p.finished {
		return reject(kind, client, tx, ErrProcessorFinished)
	}
	amount, ok := p.ledger.resolve(ledgerKey{client, tx})
	if !ok {
		return p.rejected(kind, client, tx, ErrDisputeNotFound)
	}

	acc := p.accounts[client]
	acc.Held = acc.Held.Sub(amount)
	acc.Available = acc.Available.Add(amount)
	p.applied(kind)
	return nil
}

// Chargeback withdraws the held funds of a disputed deposit and freezes the
// account. The deposit is forgotten and cannot be disputed again.
//
// Errors: ErrDisputeNotFound, ErrProcessorFinished.
func (p *Processor) Chargeback(client domain.ClientID, tx domain.TransactionID) error {
	const kind = domain.TransactionKindChargeback
	if p.finished {
		return reject(kind, client, tx, ErrProcessorFinished)
	}
	amount, ok := p.ledger.chargeback(ledgerKey{client, tx})
	if !ok {
		return p.rejected(kind, client, tx, ErrDisputeNotFound)
	}

	acc := p.accounts[client]
	acc.Held = acc.Held.Sub(amount)
	acc.Frozen = true
	p.applied(kind)
	return nil
}

// Account returns a copy of the client's account.
func (p *Processor) Account(client domain.ClientID) (domain.Account, bool) {
	acc, ok := p.accounts[client]
	if !ok {
		return domain.Account{}, false
	}
	return *acc, true
}

// IsPending reports whether the deposit can currently be disputed.
func (p *Processor) IsPending(client domain.ClientID, tx domain.TransactionID) bool {
	return !p.finished && p.ledger.isPending(ledgerKey{client, tx})
}

// IsDisputed reports whether the deposit is under an open dispute.
func (p *Processor) IsDisputed(client domain.ClientID, tx domain.TransactionID) bool {
	return !p.finished && p.ledger.isDisputed(ledgerKey{client, tx})
}

// Stats returns the applied and rejected counts per transaction kind.
func (p *Processor) Stats() map[domain.TransactionKind]domain.KindStats {
	out := make(map[domain.TransactionKind]domain.KindStats, len(p.stats))
	for k, v := range p.stats {
		out[k] = v
	}
	return out
}

// Finish hands over the final account table, ordered by the first
// transaction that opened each account. The order is deterministic but is
// not part of the output contract.
//
// Finish consumes the processor: later operations fail with
// ErrProcessorFinished and a second Finish returns nil.
func (p *Processor) Finish() []domain.ClientAccount {
	if p.finished {
		return nil
	}
	out := make([]domain.ClientAccount, 0, len(p.order))
	for _, client := range p.order {
		out = append(out, domain.ClientAccount{Client: client, Account: *p.accounts[client]})
	}

	p.finished = true
	p.accounts = nil
	p.order = nil
	p.ledger = newLedger()
	return out
}

func (p *Processor) account(client domain.ClientID) *domain.Account {
	acc, ok := p.accounts[client]
	if !ok {
		acc = &domain.Account{}
		p.accounts[client] = acc
		p.order = append(p.order, client)
	}
	return acc
}

func (p *Processor) applied(kind domain.TransactionKind) {
	s := p.stats[kind]
	s.Applied++
	p.stats[kind] = s
}

func (p *Processor) rejected(kind domain.TransactionKind, client domain.ClientID, tx domain.TransactionID, err error) error {
	s := p.stats[kind]
	s.Rejected++
	p.stats[kind] = s
	return reject(kind, client, tx, err)
}
