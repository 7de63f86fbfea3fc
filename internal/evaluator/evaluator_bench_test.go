package evaluator

import (
	"testing"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/random"
)

// Compare runs with: go test -bench=. -count=10 ./internal/evaluator | benchstat -

var sink domain.Verdict

func BenchmarkEvaluate_Rational(b *testing.B) {
	e := New(random.New(1))
	found := domain.StarChart{Destination: "Sydney", Risk: 1}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = e.Evaluate(domain.PolicyRational, chart, found)
	}
}

func BenchmarkEvaluate_RiskTakingRocks(b *testing.B) {
	e := New(random.New(1))
	found := domain.InertRock{Color: "red"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = e.Evaluate(domain.PolicyRiskTaking, rock, found)
	}
}
