package metrics

import (
	"github.com/osse101/Scavenger_Go/internal/domain"
)

// InitVerdictSeries exports a zero verdict counter for every policy and
// verdict so rate queries see the series before the first encounter.
func InitVerdictSeries() {
	for _, policy := range []domain.Policy{domain.PolicyRational, domain.PolicyRiskTaking} {
		for _, verdict := range domain.AllVerdicts {
			VerdictsTotal.WithLabelValues(string(policy), string(verdict))
		}
	}
}

// RecordExplore counts a resolved find and its verdict
func RecordExplore(r domain.ExploreResult) {
	EncountersTotal.WithLabelValues(string(domain.EncounterExplore), string(r.Outcome)).Inc()
	VerdictsTotal.WithLabelValues(string(r.After.Policy), string(r.Verdict)).Inc()
}

// RecordTrade counts a trade and both sides' verdicts
func RecordTrade(r domain.TradeResult) {
	EncountersTotal.WithLabelValues(string(domain.EncounterTrade), string(r.Outcome)).Inc()
	VerdictsTotal.WithLabelValues(string(r.A.Policy), string(r.VerdictA)).Inc()
	VerdictsTotal.WithLabelValues(string(r.B.Policy), string(r.VerdictB)).Inc()
}

// RecordVerdict counts a standalone evaluation
func RecordVerdict(policy domain.Policy, verdict domain.Verdict) {
	VerdictsTotal.WithLabelValues(string(policy), string(verdict)).Inc()
}

// RecordReplay counts one replayed log line
func RecordReplay(err error) {
	status := StatusOK
	if err != nil {
		status = StatusMalformed
	}
	ReplayLinesTotal.WithLabelValues(status).Inc()
}

// RecordCacheLookup counts a scavenger cache hit or miss
func RecordCacheLookup(hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	CacheLookupsTotal.WithLabelValues(result).Inc()
}
