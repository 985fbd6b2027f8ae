// internal/gym/member.go
package gym

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/gymdesk/internal/auth"
)

// Gender selects the fee tier; it has no other meaning in the system.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ParseGender accepts the one-letter tags, case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToUpper(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
}

// Reservation is one calendar date held by a member, together with the fee
// actually paid for it. The paid fee is what gets refunded on cancellation,
// converted to the balance's current currency if a locale toggle changed
// it in the meantime.
type Reservation struct {
	Date     Date            `json:"date"`
	FeePaid  decimal.Decimal `json:"fee_paid"`
	Currency string          `json:"currency"`
}

// ExerciseRecord is one exercise and its recorded weights, in insertion
// order until sorted. A slice (not a map) keeps the catalog order stable
// and reorderable.
type ExerciseRecord struct {
	Name    string `json:"name"`
	Weights []int  `json:"weights"`
}

// Member is a registered person. It is JSON-serialized as a whole into the
// store under the key derived from the lower-cased name.
type Member struct {
	ID           uuid.UUID        `json:"id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Gender       Gender           `json:"gender"`
	PasswordHash string           `json:"password_hash"`
	Balance      decimal.Decimal  `json:"balance"`
	Currency     string           `json:"currency,omitempty"`
	Reservations []Reservation    `json:"reservations"`
	Records      []ExerciseRecord `json:"records"`
}

// NewMember builds a fresh member with a random identifier, a hashed
// credential and a zero balance.
func NewMember(first, last string, gender Gender, password string) (*Member, error) {
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidInput)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, newFault(CodeDigest, err)
	}
	return &Member{
		ID:           uuid.New(),
		FirstName:    first,
		LastName:     last,
		Gender:       gender,
		PasswordHash: hash,
		Balance:      decimal.Zero,
	}, nil
}

// MemberKey derives the storage key for a member record from a display
// name: whitespace stripped, lower-cased, first and last name concatenated.
func MemberKey(name string) string {
	name = strings.ToLower(strings.Join(strings.Fields(name), ""))
	return "members/" + name
}

// Key is the storage key of this member's record.
func (m *Member) Key() string {
	return MemberKey(m.FirstName + m.LastName)
}

// HasReservation reports whether the member already holds a slot on date.
func (m *Member) HasReservation(date Date) bool {
	for _, r := range m.Reservations {
		if r.Date == date {
			return true
		}
	}
	return false
}

// TopUp adds a non-negative amount to the balance.
func (m *Member) TopUp(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative top-up %s", ErrInvalidInput, amount)
	}
	m.Balance = m.Balance.Add(amount)
	return nil
}

// AddRecord appends a weight to the named exercise, creating the exercise
// on first use. Names are normalized to upper case. Any integer weight is
// accepted; callers wanting stricter rules validate at their boundary.
func (m *Member) AddRecord(exercise string, weight int) error {
	exercise = strings.ToUpper(strings.TrimSpace(exercise))
	if exercise == "" {
		return fmt.Errorf("%w: empty exercise name", ErrInvalidInput)
	}
	for i := range m.Records {
		if m.Records[i].Name == exercise {
			m.Records[i].Weights = append(m.Records[i].Weights, weight)
			return nil
		}
	}
	m.Records = append(m.Records, ExerciseRecord{Name: exercise, Weights: []int{weight}})
	return nil
}

// SortOrder controls SortRecords.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// SortRecords sorts each exercise's weights in place, then reorders the
// exercise catalog by each exercise's first (now extreme) weight, in the
// same direction.
func (m *Member) SortRecords(order SortOrder) {
	for i := range m.Records {
		w := m.Records[i].Weights
		if order == SortDescending {
			sort.Sort(sort.Reverse(sort.IntSlice(w)))
		} else {
			sort.Ints(w)
		}
	}
	sort.SliceStable(m.Records, func(i, j int) bool {
		a, b := m.Records[i], m.Records[j]
		if len(a.Weights) == 0 || len(b.Weights) == 0 {
			return len(a.Weights) > len(b.Weights)
		}
		if order == SortDescending {
			return a.Weights[0] > b.Weights[0]
		}
		return a.Weights[0] < b.Weights[0]
	})
}

// RecordsText renders the record catalog as plain text, one exercise per
// line, in catalog order.
func (m *Member) RecordsText() string {
	var sb strings.Builder
	for _, r := range m.Records {
		parts := make([]string, len(r.Weights))
		for i, w := range r.Weights {
			parts[i] = fmt.Sprintf("%d", w)
		}
		fmt.Fprintf(&sb, "%s = %s\n", r.Name, strings.Join(parts, ", "))
	}
	return sb.String()
}

// ConvertBalance reinterprets the balance in the other fee currency when
// the locale toggles: into CZ multiply by rate, into US divide by it.
// It must be called exactly once per toggle or the amount drifts. The
// resulting unit is tracked so refunds of fees paid under the old unit
// can be converted the same way.
func (m *Member) ConvertBalance(country Country, rate decimal.Decimal) {
	switch country {
	case CountryCZ:
		m.Balance = m.Balance.Mul(rate)
		m.Currency = CurrencyCZK
	case CountryUS:
		m.Balance = m.Balance.Div(rate)
		m.Currency = CurrencyUSD
	}
}
