// internal/gym/balance.go
package gym

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currencies of the two fee schedules.
const (
	CurrencyCZK = "CZK"
	CurrencyUSD = "USD"
)

// Country selects which fee schedule applies to an operation.
type Country string

const (
	CountryCZ Country = "CZ"
	CountryUS Country = "US"
)

// Balance is an immutable amount of money in one currency.
type Balance struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewBalance builds a Balance. Negative amounts are rejected.
func NewBalance(currency string, amount decimal.Decimal) (Balance, error) {
	if amount.IsNegative() {
		return Balance{}, fmt.Errorf("%w: negative amount %s", ErrInvalidInput, amount)
	}
	return Balance{Currency: currency, Amount: amount}, nil
}

// Half returns the same balance at half the amount.
func (b Balance) Half() Balance {
	return Balance{Currency: b.Currency, Amount: b.Amount.Div(decimal.NewFromInt(2))}
}

func (b Balance) String() string {
	return fmt.Sprintf("%s %s", b.Amount.StringFixed(2), b.Currency)
}
