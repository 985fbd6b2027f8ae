package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/store"
)

// NewTestStore creates a file-backed store rooted in a temporary directory.
func NewTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	return st
}

// NewTestGym provisions a gym on a fresh test store with the given
// capacity, a 500 CZK / 20 USD fee schedule and a rate of 21 CZK per USD.
func NewTestGym(t *testing.T, capacity int) *gym.Gym {
	t.Helper()

	g, err := gym.Open(NewTestStore(t), "Test Gym", capacity,
		decimal.NewFromInt(500), decimal.NewFromInt(20), decimal.NewFromInt(21))
	if err != nil {
		t.Fatalf("open test gym: %v", err)
	}
	return g
}
