package monzo

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"accounts": [
			{
				"id": "acc_123",
				"description": "Personal Account",
				"type": "uk_retail",
				"currency": "GBP",
				"created": "2021-03-01T10:00:00Z",
				"closed": false
			}
		]
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/accounts",
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	accounts, err := client.Accounts.List(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acc_123", accounts[0].ID)
	assert.Equal(t, "Personal Account", accounts[0].Description)
	assert.False(t, accounts[0].Closed)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_Balance(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"balance": 507231,
		"total_balance": 507231,
		"currency": "GBP",
		"spend_today": -1250
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/balance",
		mock.MatchedBy(func(q url.Values) bool {
			return q.Get("account_id") == "acc_123"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	balance, err := client.Accounts.Balance(context.Background(), "acc_123")

	require.NoError(t, err)
	assert.Equal(t, int64(507231), balance.Balance)
	assert.Equal(t, int64(-1250), balance.SpendToday)
	assert.Equal(t, "GBP", balance.Currency)

	mockTransport.AssertExpectations(t)
}
