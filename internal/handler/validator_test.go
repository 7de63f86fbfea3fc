package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvaluateInput struct {
	Policy string `validate:"required,policy"`
	Owned  string `validate:"required,artifact"`
}

func TestValidator_PolicyValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{"rational", "rational", false},
		{"risk taking", "risk_taking", false},
		{"hyphenated", "risk-taking", false},
		{"uppercase", "RATIONAL", false},
		{"empty", "", true},
		{"unknown", "greedy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testEvaluateInput{Policy: tt.policy, Owned: "EnergyCrystal:POWER=1"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ArtifactValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		artifact string
		wantErr  bool
	}{
		{"star chart", "StarChart:Vega;RISK=3;SEC=1;SYS=2", false},
		{"crystal", "EnergyCrystal:POWER=5", false},
		{"rock", "InertRock:COLOR=red", false},
		{"missing kind", "POWER=5", true},
		{"unknown kind", "Plutonium:YIELD=1", true},
		{"non-numeric power", "EnergyCrystal:POWER=lots", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testEvaluateInput{Policy: "rational", Owned: tt.artifact})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(testEvaluateInput{Policy: "greedy", Owned: ""})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be rational or risk_taking", fields["policy"])
	assert.Equal(t, "This field is required", fields["owned"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(errors.New("boom"))["error"])
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	const goroutines = 8

	got := make([]*Validator, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		require.NotNil(t, v)
		assert.Same(t, got[0], v)
	}
	assert.NoError(t, got[0].ValidateStruct(testEvaluateInput{Policy: "rational", Owned: "InertRock:COLOR=red"}))
}
