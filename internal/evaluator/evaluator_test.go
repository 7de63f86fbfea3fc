package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/random"
)

var (
	chart   = domain.StarChart{Destination: "Canberra", Risk: 2, Sector: 3, System: 4}
	crystal = domain.EnergyCrystal{Power: 5}
	rock    = domain.InertRock{Color: "blue"}
)

func TestRational_Table(t *testing.T) {
	tests := []struct {
		name  string
		owned domain.Artifact
		found domain.Artifact
		want  domain.Verdict
	}{
		{"chart vs safer chart", chart, domain.StarChart{Destination: "Sydney", Risk: 1, Sector: 4, System: 7}, domain.VerdictValuable},
		{"chart vs riskier chart", chart, domain.StarChart{Risk: 3}, domain.VerdictMundane},
		{"chart vs equal risk chart", chart, domain.StarChart{Risk: 2}, domain.VerdictMundane},
		{"chart vs crystal", chart, crystal, domain.VerdictMundane},
		{"chart vs rock", chart, rock, domain.VerdictUnknown},
		{"crystal vs chart", crystal, chart, domain.VerdictHazardous},
		{"crystal vs stronger crystal", crystal, domain.EnergyCrystal{Power: 10}, domain.VerdictValuable},
		{"crystal vs weaker crystal", crystal, domain.EnergyCrystal{Power: 1}, domain.VerdictMundane},
		{"crystal vs equal crystal", crystal, domain.EnergyCrystal{Power: 5}, domain.VerdictMundane},
		{"crystal vs rock", crystal, rock, domain.VerdictUnknown},
		{"rock vs chart", rock, chart, domain.VerdictUnknown},
		{"rock vs crystal", rock, crystal, domain.VerdictUnknown},
		{"rock vs same color", rock, domain.InertRock{Color: "blue"}, domain.VerdictMundane},
		{"rock vs other color", rock, domain.InertRock{Color: "red"}, domain.VerdictIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rational(tt.owned, tt.found))
		})
	}
}

func TestRational_StrictInequality(t *testing.T) {
	for r1 := -3; r1 <= 6; r1++ {
		for r2 := -3; r2 <= 6; r2++ {
			got := Rational(domain.StarChart{Risk: r1}, domain.StarChart{Risk: r2})
			if r1 > r2 {
				assert.Equal(t, domain.VerdictValuable, got, "risk %d vs %d", r1, r2)
			} else {
				assert.Equal(t, domain.VerdictMundane, got, "risk %d vs %d", r1, r2)
			}

			got = Rational(domain.EnergyCrystal{Power: r1}, domain.EnergyCrystal{Power: r2})
			if r1 < r2 {
				assert.Equal(t, domain.VerdictValuable, got, "power %d vs %d", r1, r2)
			} else {
				assert.Equal(t, domain.VerdictMundane, got, "power %d vs %d", r1, r2)
			}
		}
	}
}

func TestRational_CrystalAlwaysFearsCharts(t *testing.T) {
	for p := 0; p < 20; p++ {
		found := domain.StarChart{Destination: "anywhere", Risk: p, Sector: p, System: p}
		assert.Equal(t, domain.VerdictHazardous, Rational(domain.EnergyCrystal{Power: p}, found))
	}
}

func TestRiskTaking_Table(t *testing.T) {
	tests := []struct {
		name  string
		owned domain.Artifact
		found domain.Artifact
		want  domain.Verdict
	}{
		{"chart vs crystal", chart, crystal, domain.VerdictMundane},
		{"chart vs rock", chart, rock, domain.VerdictMundane},
		{"crystal vs stronger crystal", crystal, domain.EnergyCrystal{Power: 6}, domain.VerdictValuable},
		{"crystal vs equal crystal", crystal, domain.EnergyCrystal{Power: 5}, domain.VerdictMundane},
		{"crystal vs rock", crystal, rock, domain.VerdictUnknown},
		{"rock vs crystal", rock, crystal, domain.VerdictUnknown},
		{"rock vs same color", rock, domain.InertRock{Color: "blue"}, domain.VerdictMundane},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := random.NewScripted()
			assert.Equal(t, tt.want, RiskTaking(rng, tt.owned, tt.found))
			assert.Zero(t, rng.Calls(), "coin must only be flipped for differing rocks")
		})
	}
}

func TestRiskTaking_AnyChartIsValuable(t *testing.T) {
	rng := random.NewScripted()
	found := domain.StarChart{Destination: "Perth", Risk: 99, Sector: 1, System: 1}

	for _, owned := range []domain.Artifact{chart, domain.StarChart{Risk: 0}, crystal, rock} {
		assert.Equal(t, domain.VerdictValuable, RiskTaking(rng, owned, found))
	}
}

func TestRiskTaking_DifferentRocksFollowCoin(t *testing.T) {
	red := domain.InertRock{Color: "red"}

	assert.Equal(t, domain.VerdictValuable, RiskTaking(random.Always(true), rock, red))
	assert.Equal(t, domain.VerdictIncompatible, RiskTaking(random.Always(false), rock, red))
}

func TestRiskTaking_DifferentRocksStatistical(t *testing.T) {
	rng := random.New(2024)
	seen := map[domain.Verdict]int{}

	for i := 0; i < 500; i++ {
		seen[RiskTaking(rng, rock, domain.InertRock{Color: "green"})]++
	}

	assert.Len(t, seen, 2)
	assert.Positive(t, seen[domain.VerdictValuable])
	assert.Positive(t, seen[domain.VerdictIncompatible])
}

func TestEvaluator_Dispatch(t *testing.T) {
	e := New(random.Always(true))

	assert.Equal(t, domain.VerdictHazardous, e.Evaluate(domain.PolicyRational, crystal, chart))
	assert.Equal(t, domain.VerdictValuable, e.Evaluate(domain.PolicyRiskTaking, crystal, chart))
	assert.Equal(t, domain.VerdictValuable, e.Evaluate(domain.PolicyRiskTaking, rock, domain.InertRock{Color: "red"}))
	assert.Equal(t, domain.VerdictUnknown, e.Evaluate(domain.Policy("greedy"), crystal, chart))
}
