package gym_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk/internal/gym"
)

func newMember(t *testing.T) *gym.Member {
	t.Helper()
	m, err := gym.NewMember("Karla", "Dvorak", gym.GenderFemale, "pw")
	require.NoError(t, err)
	return m
}

func TestNewMember(t *testing.T) {
	m := newMember(t)
	assert.NotEqual(t, "", m.ID.String())
	assert.NotEqual(t, "pw", m.PasswordHash)
	assert.True(t, m.Balance.IsZero())
	assert.Empty(t, m.Reservations)
	assert.Empty(t, m.Records)

	other := newMember(t)
	assert.NotEqual(t, m.ID, other.ID)
}

func TestNewMemberEmptyName(t *testing.T) {
	_, err := gym.NewMember("", "Dvorak", gym.GenderFemale, "pw")
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
	_, err = gym.NewMember("Karla", "  ", gym.GenderFemale, "pw")
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
}

func TestMemberKey(t *testing.T) {
	m := newMember(t)
	assert.Equal(t, "members/karladvorak", m.Key())
	// Login input with spaces derives the same key.
	assert.Equal(t, m.Key(), gym.MemberKey("Karla Dvorak"))
	assert.Equal(t, m.Key(), gym.MemberKey("  karla   dvorak "))
}

func TestParseGender(t *testing.T) {
	for raw, want := range map[string]gym.Gender{
		"M": gym.GenderMale, "m": gym.GenderMale,
		"F": gym.GenderFemale, " f ": gym.GenderFemale,
	} {
		got, err := gym.ParseGender(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := gym.ParseGender("x")
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
}

func TestTopUp(t *testing.T) {
	m := newMember(t)
	require.NoError(t, m.TopUp(decimal.NewFromInt(100)))
	require.NoError(t, m.TopUp(decimal.NewFromInt(0)))
	assert.Equal(t, "100", m.Balance.String())

	err := m.TopUp(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
	assert.Equal(t, "100", m.Balance.String())
}

func TestAddRecordNormalizesName(t *testing.T) {
	m := newMember(t)
	require.NoError(t, m.AddRecord("bench press", 60))
	require.NoError(t, m.AddRecord("Bench Press", 65))
	require.NoError(t, m.AddRecord("SQUAT", -10)) // any integer is accepted

	require.Len(t, m.Records, 2)
	assert.Equal(t, "BENCH PRESS", m.Records[0].Name)
	assert.Equal(t, []int{60, 65}, m.Records[0].Weights)
	assert.Equal(t, []int{-10}, m.Records[1].Weights)

	err := m.AddRecord("   ", 10)
	assert.ErrorIs(t, err, gym.ErrInvalidInput)
}

func TestSortRecordsTwoLevel(t *testing.T) {
	build := func(t *testing.T) *gym.Member {
		m := newMember(t)
		require.NoError(t, m.AddRecord("SQUAT", 120))
		require.NoError(t, m.AddRecord("SQUAT", 100))
		require.NoError(t, m.AddRecord("BENCH", 70))
		require.NoError(t, m.AddRecord("BENCH", 80))
		require.NoError(t, m.AddRecord("DEADLIFT", 150))
		return m
	}

	t.Run("ascending", func(t *testing.T) {
		m := build(t)
		m.SortRecords(gym.SortAscending)
		// Weights ascend inside each exercise, and the catalog orders by
		// each exercise's first (smallest) weight.
		assert.Equal(t, "BENCH", m.Records[0].Name)
		assert.Equal(t, []int{70, 80}, m.Records[0].Weights)
		assert.Equal(t, "SQUAT", m.Records[1].Name)
		assert.Equal(t, []int{100, 120}, m.Records[1].Weights)
		assert.Equal(t, "DEADLIFT", m.Records[2].Name)
	})

	t.Run("descending", func(t *testing.T) {
		m := build(t)
		m.SortRecords(gym.SortDescending)
		assert.Equal(t, "DEADLIFT", m.Records[0].Name)
		assert.Equal(t, []int{150}, m.Records[0].Weights)
		assert.Equal(t, "SQUAT", m.Records[1].Name)
		assert.Equal(t, []int{120, 100}, m.Records[1].Weights)
		assert.Equal(t, "BENCH", m.Records[2].Name)
		assert.Equal(t, []int{80, 70}, m.Records[2].Weights)
	})
}

func TestRecordsText(t *testing.T) {
	m := newMember(t)
	require.NoError(t, m.AddRecord("BENCH", 70))
	require.NoError(t, m.AddRecord("BENCH", 80))
	require.NoError(t, m.AddRecord("SQUAT", 100))

	assert.Equal(t, "BENCH = 70, 80\nSQUAT = 100\n", m.RecordsText())
}

func TestConvertBalanceRoundTrip(t *testing.T) {
	m := newMember(t)
	require.NoError(t, m.TopUp(decimal.NewFromInt(42)))
	rate := decimal.NewFromInt(21)

	m.ConvertBalance(gym.CountryCZ, rate)
	assert.Equal(t, "882", m.Balance.String())
	assert.Equal(t, gym.CurrencyCZK, m.Currency)

	m.ConvertBalance(gym.CountryUS, rate)
	assert.Equal(t, "42", m.Balance.String())
	assert.Equal(t, gym.CurrencyUSD, m.Currency)
}
