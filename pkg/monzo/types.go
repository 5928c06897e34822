package monzo

import (
	"time"
)

// Identity is the response from the whoami endpoint
type Identity struct {
	Authenticated bool   `json:"authenticated"`
	ClientID      string `json:"client_id"`
	UserID        string `json:"user_id"`
}

// Account represents a Monzo account
type Account struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Currency    string    `json:"currency"`
	Created     time.Time `json:"created"`
	Closed      bool      `json:"closed"`
}

// Balance represents the balance of an account, in minor currency units
type Balance struct {
	Balance      int64  `json:"balance"`
	TotalBalance int64  `json:"total_balance"`
	Currency     string `json:"currency"`
	SpendToday   int64  `json:"spend_today"`
}

// Transaction represents a single financial transaction. Amount is in
// minor currency units (pence); debits are negative.
type Transaction struct {
	ID            string    `json:"id"`
	Created       time.Time `json:"created"`
	Description   string    `json:"description"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
	IsLoad        bool      `json:"is_load"`
	Settled       Time      `json:"settled"`
	DeclineReason string    `json:"decline_reason,omitempty"`
	AccountID     string    `json:"account_id"`
}

// IsExpense reports whether the transaction reduced the account
// balance
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}
