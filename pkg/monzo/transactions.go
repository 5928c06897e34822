package monzo

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// List retrieves all transactions for the given account. The API
// serves the queried window in a single page; no pagination is
// attempted. An error response from the API is logged and reported as
// an empty list so callers can take the no-transactions path.
func (s *transactionService) List(ctx context.Context, accountID string) ([]*Transaction, error) {
	query := url.Values{}
	query.Set("account_id", accountID)

	var result struct {
		Transactions []*Transaction `json:"transactions"`
	}

	if err := s.client.get(ctx, "/transactions", query, &result); err != nil {
		if apiErr, ok := AsAPIError(err); ok {
			s.client.logError("error fetching transactions",
				"status", apiErr.StatusCode,
				"body", apiErr.Body)
			return []*Transaction{}, nil
		}
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return result.Transactions, nil
}
