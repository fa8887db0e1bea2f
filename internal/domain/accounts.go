package domain

// Account holds the balances of a single client.
type Account struct {
	Available Amount `json:"available"`
	Held      Amount `json:"held"`
	Frozen    bool   `json:"locked"`
}

// Total is the sum of available and held funds. It is derived on demand and
// never stored.
func (a Account) Total() Amount {
	return a.Available.Add(a.Held)
}

// ClientAccount pairs an account with its owner, as handed to output writers.
type ClientAccount struct {
	Client  ClientID `json:"client"`
	Account Account  `json:"account"`
}

// AccountRecord is the flattened output shape of a ClientAccount.
type AccountRecord struct {
	Client    ClientID `json:"client"`
	Available Amount   `json:"available"`
	Held      Amount   `json:"held"`
	Total     Amount   `json:"total"`
	Locked    bool     `json:"locked"`
}

// Record flattens ca into its output shape.
func (ca ClientAccount) Record() AccountRecord {
	return AccountRecord{
		Client:    ca.Client,
		Available: ca.Account.Available,
		Held:      ca.Account.Held,
		Total:     ca.Account.Total(),
		Locked:    ca.Account.Frozen,
	}
}

// KindStats counts how many records of one kind were applied or rejected.
type KindStats struct {
	Applied  int `json:"applied"`
	Rejected int `json:"rejected"`
}

// ReplaySummary provides high-level statistics of a replay run.
type ReplaySummary struct {
	TotalTransactions int                           `json:"total_transactions"`
	Applied           int                           `json:"applied"`
	Rejected          int                           `json:"rejected"`
	ByKind            map[TransactionKind]KindStats `json:"by_kind"`
}

// ReplayReport is the outcome of replaying a transaction stream.
type ReplayReport struct {
	Summary  ReplaySummary   `json:"summary"`
	Accounts []ClientAccount `json:"accounts"`
}
