package monzo

import "context"

// PingService verifies that the client is authenticated
type PingService interface {
	// WhoAmI calls the identity endpoint and reports who the access
	// token belongs to
	WhoAmI(ctx context.Context) (*Identity, error)
}

// AccountService handles account-related operations
type AccountService interface {
	// List retrieves all accounts owned by the current user
	List(ctx context.Context) ([]*Account, error)

	// Balance retrieves the balance for a single account
	Balance(ctx context.Context, accountID string) (*Balance, error)
}

// TransactionService handles transaction-related operations
type TransactionService interface {
	// List retrieves all transactions for an account. A non-2xx
	// response from the API is logged and reported as an empty list
	// rather than an error.
	List(ctx context.Context, accountID string) ([]*Transaction, error)
}
