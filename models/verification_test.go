package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    VerificationLevel
		to      VerificationLevel
		wantErr bool
	}{
		{name: "pending to verified", from: VerificationPending, to: VerificationVerified},
		{name: "pending to rejected", from: VerificationPending, to: VerificationRejected},
		{name: "verified to champion", from: VerificationVerified, to: VerificationChampion},
		{name: "pending to champion skips verified", from: VerificationPending, to: VerificationChampion, wantErr: true},
		{name: "rejected is terminal", from: VerificationRejected, to: VerificationVerified, wantErr: true},
		{name: "champion is terminal", from: VerificationChampion, to: VerificationVerified, wantErr: true},
		{name: "verified never returns to pending", from: VerificationVerified, to: VerificationPending, wantErr: true},
		{name: "rejected never returns to pending", from: VerificationRejected, to: VerificationPending, wantErr: true},
		{name: "unknown current level", from: VerificationLevel("bogus"), to: VerificationVerified, wantErr: true},
		{name: "unknown next level", from: VerificationPending, to: VerificationLevel("bogus"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.from, tc.to)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.from, got, "failed transition must not change the level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}

func TestVerificationLevelCounted(t *testing.T) {
	assert.False(t, VerificationPending.Counted())
	assert.False(t, VerificationRejected.Counted())
	assert.True(t, VerificationVerified.Counted())
	assert.True(t, VerificationChampion.Counted())
}
