// internal/gym/gym.go

// Package gym is the reservation and account engine for a single facility:
// member registration and authentication, capacity-bound slot booking and
// cancellation, fee computation and balances, and persistence of all of it
// through the store. It returns typed results and never prints or logs;
// rendering belongs to the shell.
package gym

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/gymdesk/gymdesk/internal/auth"
	"github.com/gymdesk/gymdesk/internal/store"
)

// stateKey is the well-known store key of the facility record (capacity,
// fee schedule, shared calendar).
const stateKey = "gym"

// Slot is one occupied unit of capacity on one date. The fee paid and its
// currency are recorded at booking time; cancellation refunds that amount,
// converted if the balance has changed units since.
type Slot struct {
	MemberID string          `json:"member_id"`
	FeePaid  decimal.Decimal `json:"fee_paid"`
	Currency string          `json:"currency"`
}

// gymState is the persisted facility record.
type gymState struct {
	Name     string          `json:"name"`
	Capacity int             `json:"capacity"`
	FeeCZK   decimal.Decimal `json:"fee_czk"`
	FeeUSD   decimal.Decimal `json:"fee_usd"`
	Calendar map[Date][]Slot `json:"calendar"`
}

// Gym owns the facility configuration, the shared reservation calendar and
// the single active session. Capacity and fees are fixed at provisioning
// time. Operations are serialized by a mutex: the session itself is single
// threaded, but the interrupt hook may flush the session from another
// goroutine while an operation is in flight.
type Gym struct {
	mu         sync.Mutex
	name       string
	capacity   int
	feeCZK     Balance
	feeUSD     Balance
	rate       decimal.Decimal
	currentFee Balance
	calendar   map[Date][]Slot
	st         store.Store
	member     *Member
}

// Open loads the facility record from the store, or provisions one from
// the given configuration on first run. Once provisioned, the stored
// capacity and fees win over the arguments. The rate is the fixed USD→CZK
// conversion rate used for balance and refund unit changes.
func Open(st store.Store, name string, capacity int, feeCZK, feeUSD, rate decimal.Decimal) (*Gym, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", ErrInvalidInput)
	}
	localFee, err := NewBalance(CurrencyCZK, feeCZK)
	if err != nil {
		return nil, err
	}
	refFee, err := NewBalance(CurrencyUSD, feeUSD)
	if err != nil {
		return nil, err
	}

	g := &Gym{
		name:     name,
		capacity: capacity,
		feeCZK:   localFee,
		feeUSD:   refFee,
		rate:     rate,
		calendar: map[Date][]Slot{},
		st:       st,
	}

	var state gymState
	err = st.Load(stateKey, &state)
	switch {
	case err == nil:
		g.name = state.Name
		g.capacity = state.Capacity
		g.feeCZK = Balance{Currency: CurrencyCZK, Amount: state.FeeCZK}
		g.feeUSD = Balance{Currency: CurrencyUSD, Amount: state.FeeUSD}
		if state.Calendar != nil {
			g.calendar = state.Calendar
		}
	case errors.Is(err, store.ErrNotFound):
		if err := g.saveState(); err != nil {
			return nil, err
		}
	case errors.Is(err, store.ErrCorrupt):
		return nil, newFault(CodeLoad, err)
	default:
		return nil, newFault(CodeLoad, err)
	}

	return g, nil
}

func (g *Gym) Name() string  { return g.name }
func (g *Gym) Capacity() int { return g.capacity }

func (g *Gym) CurrentFee() Balance {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentFee
}

func (g *Gym) ActiveMember() *Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.member
}

// Occupancy is the number of slots taken on date; an absent date counts
// as empty.
func (g *Gym) Occupancy(date Date) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calendar[date])
}

// Register creates a new member, persists it, and makes it the active
// session. A record already present at the derived key is rejected rather
// than silently overwritten.
func (g *Gym) Register(first, last string, gender Gender, password string) (*Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := NewMember(first, last, gender, password)
	if err != nil {
		return nil, err
	}
	exists, err := g.st.Exists(m.Key())
	if err != nil {
		return nil, newFault(CodeLoad, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s %s", ErrDuplicateMember, first, last)
	}
	if err := g.st.Save(m.Key(), m); err != nil {
		return nil, newFault(CodeSave, err)
	}
	g.member = m
	return m, nil
}

// Authenticate loads the member at the derived key and checks the
// password digest. On mismatch the loaded record is discarded and no
// session is established.
func (g *Gym) Authenticate(name, password string) (*Member, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := MemberKey(name)
	var m Member
	if err := g.st.Load(key, &m); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(name))
		case errors.Is(err, store.ErrCorrupt):
			return nil, newFault(CodeLoad, err)
		default:
			return nil, newFault(CodeLoad, err)
		}
	}
	ok, err := auth.VerifyPassword(m.PasswordHash, password)
	if err != nil {
		return nil, newFault(CodeDigest, err)
	}
	if !ok {
		return nil, ErrBadCredentials
	}
	g.member = &m
	return g.member, nil
}

// ComputeFee selects the base fee for country and halves it for the
// discounted gender tag. The result is remembered as the current fee of
// the in-progress operation.
func (g *Gym) ComputeFee(country Country) (Balance, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.computeFee(country)
}

func (g *Gym) computeFee(country Country) (Balance, error) {
	if g.member == nil {
		return Balance{}, ErrNoSession
	}
	var base Balance
	switch country {
	case CountryCZ:
		base = g.feeCZK
	case CountryUS:
		base = g.feeUSD
	default:
		return Balance{}, fmt.Errorf("%w: unknown country %q", ErrInvalidInput, country)
	}
	fee := base
	if g.member.Gender == GenderFemale {
		fee = base.Half()
	}
	g.currentFee = fee
	return fee, nil
}

// BookingResult reports a successful booking.
type BookingResult struct {
	Date      Date
	Occupancy int
	Capacity  int
	Fee       Balance
}

// Book reserves a slot for the active member. The rules run in a fixed
// order, so when several conditions hold at once the first one decides
// which failure is reported: funds, then duplicate date, then capacity.
func (g *Gym) Book(country Country, date Date) (BookingResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fee, err := g.computeFee(country)
	if err != nil {
		return BookingResult{}, err
	}
	if g.member.Balance.LessThan(fee.Amount) {
		return BookingResult{}, ErrInsufficientFunds
	}
	if g.member.HasReservation(date) {
		return BookingResult{}, ErrAlreadyReserved
	}
	if len(g.calendar[date]) >= g.capacity {
		return BookingResult{}, ErrCapacityExceeded
	}

	g.place(date, fee)
	if err := g.saveState(); err != nil {
		return BookingResult{}, err
	}
	return BookingResult{
		Date:      date,
		Occupancy: len(g.calendar[date]),
		Capacity:  g.capacity,
		Fee:       fee,
	}, nil
}

// Cancel releases the active member's slot on date and refunds the fee
// that was paid for it. It reports false when there is nothing to cancel.
func (g *Gym) Cancel(date Date) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return false, ErrNoSession
	}
	slots, ok := g.calendar[date]
	if !ok {
		return false, nil
	}
	idx := -1
	for i, s := range slots {
		if s.MemberID == g.member.ID.String() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	g.displace(date, idx)
	if err := g.saveState(); err != nil {
		return false, err
	}
	return true, nil
}

// place appends the member to the date's slot list and the date to the
// member's personal list, deducting the fee. It is the only writer of the
// booking side of the calendar, which keeps the two lists consistent.
// A balance has no pinned unit until the first booking or conversion; the
// first booking pins it to the fee currency.
func (g *Gym) place(date Date, fee Balance) {
	if g.member.Currency == "" {
		g.member.Currency = fee.Currency
	}
	g.calendar[date] = append(g.calendar[date], Slot{
		MemberID: g.member.ID.String(),
		FeePaid:  fee.Amount,
		Currency: fee.Currency,
	})
	g.member.Reservations = append(g.member.Reservations, Reservation{
		Date:     date,
		FeePaid:  fee.Amount,
		Currency: fee.Currency,
	})
	g.member.Balance = g.member.Balance.Sub(fee.Amount)
}

// displace is place's inverse: both lists shrink together and the stored
// fee flows back to the balance. When a locale toggle has converted the
// balance to the other currency since the slot was paid for, the refund is
// converted the same way so no value is lost or created.
func (g *Gym) displace(date Date, idx int) {
	slots := g.calendar[date]
	slot := slots[idx]
	slots = append(slots[:idx], slots[idx+1:]...)
	if len(slots) == 0 {
		delete(g.calendar, date)
	} else {
		g.calendar[date] = slots
	}
	for i, r := range g.member.Reservations {
		if r.Date == date {
			g.member.Reservations = append(g.member.Reservations[:i], g.member.Reservations[i+1:]...)
			break
		}
	}

	refund := slot.FeePaid
	if cur := g.member.Currency; cur != "" && slot.Currency != cur {
		if slot.Currency == CurrencyUSD {
			refund = refund.Mul(g.rate)
		} else {
			refund = refund.Div(g.rate)
		}
	}
	g.member.Balance = g.member.Balance.Add(refund)
}

// TopUp adds funds to the active member's balance.
func (g *Gym) TopUp(amount decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return ErrNoSession
	}
	return g.member.TopUp(amount)
}

// AddExerciseRecord records a weight for the active member.
func (g *Gym) AddExerciseRecord(exercise string, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return ErrNoSession
	}
	return g.member.AddRecord(exercise, weight)
}

// SortRecords sorts the active member's record catalog.
func (g *Gym) SortRecords(order SortOrder) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return ErrNoSession
	}
	g.member.SortRecords(order)
	return nil
}

// ExportRecords writes the active member's records as plain text to the
// per-member export key and returns that key.
func (g *Gym) ExportRecords() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return "", ErrNoSession
	}
	key := "records/" + strings.ToLower(g.member.FirstName) + "_record.txt"
	if err := g.st.SaveText(key, g.member.RecordsText()); err != nil {
		return "", newFault(CodeSave, err)
	}
	return key, nil
}

// ConvertBalance reinterprets the active member's balance in the currency
// of country, using the fixed rate. One call per locale toggle.
func (g *Gym) ConvertBalance(country Country) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return ErrNoSession
	}
	g.member.ConvertBalance(country, g.rate)
	return nil
}

// SaveSession persists the active member record, if any. The interrupt
// hook uses it for a best-effort flush.
func (g *Gym) SaveSession() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saveSession()
}

func (g *Gym) saveSession() error {
	if g.member == nil {
		return nil
	}
	if err := g.st.Save(g.member.Key(), g.member); err != nil {
		return newFault(CodeSave, err)
	}
	return nil
}

// LogOff persists the active member and the calendar and closes the
// session. Calling it with no session open is a no-op.
func (g *Gym) LogOff() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.member == nil {
		return nil
	}
	if err := g.saveSession(); err != nil {
		return err
	}
	if err := g.saveState(); err != nil {
		return err
	}
	g.member = nil
	return nil
}

// saveState persists capacity, fees and the calendar under the well-known
// key. The member record is saved separately; the two writes are not
// transactional (see the store package).
func (g *Gym) saveState() error {
	state := gymState{
		Name:     g.name,
		Capacity: g.capacity,
		FeeCZK:   g.feeCZK.Amount,
		FeeUSD:   g.feeUSD.Amount,
		Calendar: g.calendar,
	}
	if err := g.st.Save(stateKey, state); err != nil {
		return newFault(CodeSave, err)
	}
	return nil
}
