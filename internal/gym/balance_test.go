package gym_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk/internal/gym"
)

func TestNewBalance(t *testing.T) {
	b, err := gym.NewBalance(gym.CurrencyCZK, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "500.00 CZK", b.String())

	_, err = gym.NewBalance(gym.CurrencyUSD, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
}

func TestBalanceString(t *testing.T) {
	b, err := gym.NewBalance(gym.CurrencyUSD, decimal.RequireFromString("19.5"))
	require.NoError(t, err)
	assert.Equal(t, "19.50 USD", b.String())
}

func TestBalanceHalf(t *testing.T) {
	b, err := gym.NewBalance(gym.CurrencyCZK, decimal.NewFromInt(501))
	require.NoError(t, err)
	assert.Equal(t, "250.50 CZK", b.Half().String())
	assert.Equal(t, "501.00 CZK", b.String(), "Half must not mutate the receiver")
}

func TestDates(t *testing.T) {
	d, err := gym.NewDate(2022, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "2022-01-01", d.String())

	_, err = gym.NewDate(2022, 2, 30)
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
	_, err = gym.NewDate(2022, 13, 1)
	assert.ErrorIs(t, err, gym.ErrInvalidInput)

	p, err := gym.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, gym.Date("2024-02-29"), p)
	_, err = gym.ParseDate("2023-02-29")
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
}
