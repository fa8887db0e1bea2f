package engine

import "txengine/internal/domain"

type ledgerKey struct {
	client domain.ClientID
	tx     domain.TransactionID
}

// ledger tracks the lifecycle of deposits. A deposit is pending until it is
// disputed; a dispute either returns it to pending (resolve) or drops it for
// good (chargeback). A key is never in both maps at once, unless a deposit
// id is reused while disputed.
type ledger struct {
	pending  map[ledgerKey]domain.Amount
	disputed map[ledgerKey]domain.Amount
}

func newLedger() *ledger {
	return &ledger{
		pending:  make(map[ledgerKey]domain.Amount),
		disputed: make(map[ledgerKey]domain.Amount),
	}
}

// recordDeposit makes a deposit disputable. A repeated key overwrites the
// earlier amount.
func (l *ledger) recordDeposit(k ledgerKey, amount domain.Amount) {
	l.pending[k] = amount
}

func (l *ledger) beginDispute(k ledgerKey) (domain.Amount, bool) {
	amount, ok := l.pending[k]
	if !ok {
		return 0, false
	}
	delete(l.pending, k)
	l.disputed[k] = amount
	return amount, true
}

func (l *ledger) resolve(k ledgerKey) (domain.Amount, bool) {
	amount, ok := l.disputed[k]
	if !ok {
		return 0, false
	}
	delete(l.disputed, k)
	l.pending[k] = amount
	return amount, true
}

func (l *ledger) chargeback(k ledgerKey) (domain.Amount, bool) {
	amount, ok := l.disputed[k]
	if !ok {
		return 0, false
	}
	delete(l.disputed, k)
	return amount, true
}

func (l *ledger) isPending(k ledgerKey) bool {
	_, ok := l.pending[k]
	return ok
}

func (l *ledger) isDisputed(k ledgerKey) bool {
	_, ok := l.disputed[k]
	return ok
}
