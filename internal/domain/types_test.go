package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plats-network/sponsor-ledger/internal/domain"
)

func TestAddChecked(t *testing.T) {
	tests := []struct {
		name        string
		a, b        uint64
		expected    uint64
		expectedErr error
	}{
		{name: "simple addition", a: 5000, b: 20000, expected: 25000},
		{name: "zero operands", a: 0, b: 0, expected: 0},
		{name: "max plus zero", a: math.MaxUint64, b: 0, expected: math.MaxUint64},
		{name: "overflow by one", a: math.MaxUint64, b: 1, expectedErr: domain.ErrAmountOverflow},
		{name: "overflow large", a: math.MaxUint64 - 10, b: 20000, expectedErr: domain.ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := domain.AddChecked(tt.a, tt.b)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sum)
		})
	}
}

func TestSubChecked(t *testing.T) {
	diff, err := domain.SubChecked(65000, 5000)
	require.NoError(t, err)
	assert.Equal(t, uint64(60000), diff)

	_, err = domain.SubChecked(5000, 65000)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestEventStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.EventStatus
		to      domain.EventStatus
		allowed bool
	}{
		{name: "active to cancel", from: domain.EventStatusActive, to: domain.EventStatusCancel, allowed: true},
		{name: "active to finish", from: domain.EventStatusActive, to: domain.EventStatusFinish, allowed: true},
		{name: "pending to active", from: domain.EventStatusPending, to: domain.EventStatusActive, allowed: true},
		{name: "pending to cancel", from: domain.EventStatusPending, to: domain.EventStatusCancel, allowed: true},
		{name: "cancel is terminal", from: domain.EventStatusCancel, to: domain.EventStatusActive, allowed: false},
		{name: "finish is terminal", from: domain.EventStatusFinish, to: domain.EventStatusCancel, allowed: false},
		{name: "no backward move", from: domain.EventStatusActive, to: domain.EventStatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestAmount(t *testing.T) {
	a := domain.Amount{Native: 5000, Token: 0}
	assert.False(t, a.IsZero())
	assert.Equal(t, uint64(5000), a.Get(domain.AssetNative))
	assert.Equal(t, uint64(0), a.Get(domain.AssetToken))
	assert.True(t, domain.Amount{}.IsZero())
}

func TestClaimWorkflowID(t *testing.T) {
	id := domain.ClaimWorkflowID("E1", "alice.test")
	assert.Equal(t, "claim:E1:alice.test", id)
}
