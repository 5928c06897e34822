package monzo

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	internalTypes "github.com/petebray/monzoreport/internal/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	args := m.Called(ctx, path, query, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

func newTestClient(t *MockTransport) *Client {
	c := &Client{
		transport: t,
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
	}
	c.initServices()
	return c
}

func TestTransactionService_List(t *testing.T) {
	// Setup
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// Mock response
	mockResponse := `{
		"transactions": [
			{
				"id": "tx_0001",
				"created": "2024-05-02T09:14:00Z",
				"description": "Coffee Shop",
				"amount": -500,
				"currency": "GBP",
				"category": "eating_out",
				"settled": "2024-05-03T00:00:00Z"
			},
			{
				"id": "tx_0002",
				"created": "2024-05-04T18:41:00Z",
				"description": "Salary",
				"amount": 120000,
				"currency": "GBP",
				"category": "",
				"settled": ""
			}
		]
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/transactions",
		mock.MatchedBy(func(q url.Values) bool {
			return q.Get("account_id") == "acc_123"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	// Execute
	ctx := context.Background()
	txns, err := client.Transactions.List(ctx, "acc_123")

	// Assert
	require.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "tx_0001", txns[0].ID)
	assert.Equal(t, int64(-500), txns[0].Amount)
	assert.Equal(t, "eating_out", txns[0].Category)
	assert.True(t, txns[0].IsExpense())
	assert.False(t, txns[1].IsExpense())
	assert.True(t, txns[1].Settled.IsZero())

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_List_HTTPErrorIsEmptyResult(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	apiErr := &internalTypes.Error{
		Code:       "UNAUTHORIZED",
		Message:    "invalid token",
		StatusCode: 403,
		Body:       `{"error":"invalid token"}`,
		Err:        internalTypes.ErrNotAuthenticated,
	}

	mockTransport.On("Get",
		mock.Anything,
		"/transactions",
		mock.Anything,
		mock.Anything,
	).Return(nil, apiErr)

	txns, err := client.Transactions.List(context.Background(), "acc_123")

	// A non-2xx response is reported as zero transactions, not an error
	require.NoError(t, err)
	assert.Empty(t, txns)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_List_TransportError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/transactions",
		mock.Anything,
		mock.Anything,
	).Return(nil, errors.New("connection refused"))

	txns, err := client.Transactions.List(context.Background(), "acc_123")

	require.Error(t, err)
	assert.Nil(t, txns)
	assert.Contains(t, err.Error(), "failed to list transactions")

	mockTransport.AssertExpectations(t)
}
