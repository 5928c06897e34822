package monzo

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all accounts owned by the current user
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	var result struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := s.client.get(ctx, "/accounts", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return result.Accounts, nil
}

// Balance retrieves the balance for a single account
func (s *accountService) Balance(ctx context.Context, accountID string) (*Balance, error) {
	query := url.Values{}
	query.Set("account_id", accountID)

	var result Balance

	if err := s.client.get(ctx, "/balance", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return &result, nil
}
