package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

func TestRecordExplore(t *testing.T) {
	counter := EncountersTotal.WithLabelValues("explore", "destroyed")
	verdicts := VerdictsTotal.WithLabelValues("rational", "hazardous")
	before := testutil.ToFloat64(counter)
	beforeVerdicts := testutil.ToFloat64(verdicts)

	s := domain.NewScavenger("Ada", domain.PolicyRational, domain.EnergyCrystal{Power: 1})
	RecordExplore(domain.ExploreResult{After: s, Verdict: domain.VerdictHazardous, Outcome: domain.OutcomeDestroyed})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, beforeVerdicts+1, testutil.ToFloat64(verdicts))
}

func TestRecordTrade(t *testing.T) {
	counter := EncountersTotal.WithLabelValues("trade", "declined")
	before := testutil.ToFloat64(counter)

	a := domain.NewScavenger("A", domain.PolicyRational, domain.EnergyCrystal{Power: 1})
	b := domain.NewScavenger("B", domain.PolicyRiskTaking, domain.EnergyCrystal{Power: 2})
	RecordTrade(domain.TradeResult{A: a, B: b, VerdictA: domain.VerdictValuable, VerdictB: domain.VerdictMundane, Outcome: domain.OutcomeDeclined})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordReplayAndCache(t *testing.T) {
	ok := ReplayLinesTotal.WithLabelValues(StatusOK)
	bad := ReplayLinesTotal.WithLabelValues(StatusMalformed)
	hit := CacheLookupsTotal.WithLabelValues(ResultHit)
	okBefore, badBefore, hitBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad), testutil.ToFloat64(hit)

	RecordReplay(nil)
	RecordReplay(errors.New("boom"))
	RecordCacheLookup(true)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(bad))
	assert.Equal(t, hitBefore+1, testutil.ToFloat64(hit))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/scavengers/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/scavengers/{name}", "404")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scavengers/ada", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestInitVerdictSeries(t *testing.T) {
	InitVerdictSeries()

	assert.GreaterOrEqual(t, testutil.CollectAndCount(VerdictsTotal), 2*len(domain.AllVerdicts))
}
