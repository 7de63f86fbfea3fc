package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"rational", PolicyRational},
		{"RATIONAL", PolicyRational},
		{" rational ", PolicyRational},
		{"risk_taking", PolicyRiskTaking},
		{"risk-taking", PolicyRiskTaking},
		{"RiskTaking", PolicyRiskTaking},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParsePolicy("greedy")
		assert.ErrorIs(t, err, ErrInvalidPolicy)
		assert.Contains(t, err.Error(), "greedy")
	})
}

func TestScavenger_WithHeldReturnsCopy(t *testing.T) {
	original := NewScavenger("Vex", PolicyRational, EnergyCrystal{Power: 3})

	updated := original.WithHeld(InertRock{Color: "red"})

	assert.Equal(t, EnergyCrystal{Power: 3}, original.Held)
	assert.Equal(t, InertRock{Color: "red"}, updated.Held)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Vex", updated.Name)
}

func TestDestroyedArtifact(t *testing.T) {
	assert.Equal(t, InertRock{Color: "dull grey"}, DestroyedArtifact())
	assert.Equal(t, KindInertRock, DestroyedArtifact().Kind())
}
