package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

func newFleetRouter(svc *MockFleetService) http.Handler {
	h := NewFleetHandler(svc)
	r := chi.NewRouter()
	r.Post("/scavengers", h.HandleRegister)
	r.Get("/scavengers", h.HandleList)
	r.Get("/scavengers/{name}", h.HandleGet)
	r.Post("/scavengers/{name}/explore", h.HandleExplore)
	r.Get("/scavengers/{name}/journal", h.HandleJournal)
	r.Post("/trade", h.HandleTrade)
	r.Post("/evaluate", h.HandleEvaluate)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func testScavenger(name string, held domain.Artifact) domain.Scavenger {
	s := domain.NewScavenger(name, domain.PolicyRational, held)
	s.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	return s
}

func TestHandleRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockFleetService{}
		vega := testScavenger("Vega", domain.EnergyCrystal{Power: 4})
		svc.On("Register", mock.Anything, "Vega", domain.PolicyRational, domain.EnergyCrystal{Power: 4}).
			Return(&vega, nil)

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers",
			`{"name":"Vega","policy":"rational","held":"EnergyCrystal:POWER=4"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp ScavengerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Vega", resp.Name)
		assert.Equal(t, "EnergyCrystal:POWER=4", resp.Held)
		svc.AssertExpectations(t)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Register", mock.Anything, "Vega", domain.PolicyRiskTaking, domain.InertRock{Color: "blue"}).
			Return(nil, fmt.Errorf("%w: Vega", domain.ErrScavengerExists))

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers",
			`{"name":"Vega","policy":"risk-taking","held":"InertRock:COLOR=blue"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgScavengerExistsErr)
	})

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"Missing name", `{"policy":"rational","held":"InertRock:COLOR=red"}`, "name"},
		{"Unknown policy", `{"name":"Vega","policy":"greedy","held":"InertRock:COLOR=red"}`, "policy"},
		{"Malformed artifact", `{"name":"Vega","policy":"rational","held":"EnergyCrystal:POWER=many"}`, "held"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockFleetService{}

			w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Fields, tt.wantField)
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Invalid JSON", func(t *testing.T) {
		svc := &MockFleetService{}

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleList(t *testing.T) {
	svc := &MockFleetService{}
	svc.On("List", mock.Anything).Return([]domain.Scavenger{
		testScavenger("Orin", domain.InertRock{Color: "blue"}),
		testScavenger("Vega", domain.EnergyCrystal{Power: 4}),
	}, nil)

	w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ScavengerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "InertRock:COLOR=blue", resp[0].Held)
	assert.Equal(t, "Vega", resp[1].Name)
}

func TestHandleGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := &MockFleetService{}
		chart := testScavenger("Tamsin", domain.StarChart{Destination: "Kepler Gate", Risk: 6, Sector: 3, System: 11})
		svc.On("Get", mock.Anything, "Tamsin").Return(&chart, nil)

		w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers/Tamsin", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "StarChart:Kepler Gate;RISK=6;SEC=3;SYS=11")
	})

	t.Run("Not found", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Get", mock.Anything, "Ghost").Return(nil, fmt.Errorf("%w: Ghost", domain.ErrScavengerNotFound))

		w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers/Ghost", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgScavengerNotFoundErr)
	})
}

func TestHandleExplore(t *testing.T) {
	t.Run("Swap", func(t *testing.T) {
		svc := &MockFleetService{}
		before := testScavenger("Vega", domain.EnergyCrystal{Power: 4})
		after := before.WithHeld(domain.EnergyCrystal{Power: 9})
		svc.On("Explore", mock.Anything, "Vega", domain.EnergyCrystal{Power: 9}).Return(&domain.ExploreResult{
			Before:     before,
			After:      after,
			Found:      domain.EnergyCrystal{Power: 9},
			LeftBehind: domain.EnergyCrystal{Power: 4},
			Verdict:    domain.VerdictValuable,
			Outcome:    domain.OutcomeSwapped,
		}, nil)

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers/Vega/explore", `{"found":"EnergyCrystal:POWER=9"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ExploreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "EnergyCrystal:POWER=9", resp.Scavenger.Held)
		assert.Equal(t, "EnergyCrystal:POWER=4", resp.LeftBehind)
		assert.Equal(t, domain.VerdictValuable, resp.Verdict)
		assert.Equal(t, domain.OutcomeSwapped, resp.Outcome)
	})

	t.Run("Malformed find", func(t *testing.T) {
		svc := &MockFleetService{}

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers/Vega/explore", `{"found":"Crystal:POWER=9"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Explore", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown scavenger", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Explore", mock.Anything, "Ghost", mock.Anything).Return(nil, domain.ErrScavengerNotFound)

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers/Ghost/explore", `{"found":"InertRock:COLOR=red"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Storage failure does not leak", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Explore", mock.Anything, "Vega", mock.Anything).
			Return(nil, fmt.Errorf("%w: connection reset by peer", domain.ErrDatabaseError))

		w := doRequest(t, newFleetRouter(svc), "POST", "/scavengers/Vega/explore", `{"found":"InertRock:COLOR=red"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleTrade(t *testing.T) {
	t.Run("Traded", func(t *testing.T) {
		svc := &MockFleetService{}
		a := testScavenger("Vega", domain.InertRock{Color: "blue"})
		b := testScavenger("Orin", domain.EnergyCrystal{Power: 4})
		svc.On("Trade", mock.Anything, "Vega", "Orin").Return(&domain.TradeResult{
			A:          a,
			B:          b,
			OfferedByA: domain.EnergyCrystal{Power: 4},
			OfferedByB: domain.InertRock{Color: "blue"},
			VerdictA:   domain.VerdictValuable,
			VerdictB:   domain.VerdictUnknown,
			Outcome:    domain.OutcomeTraded,
		}, nil)

		w := doRequest(t, newFleetRouter(svc), "POST", "/trade", `{"a":"Vega","b":"Orin"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp TradeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.OutcomeTraded, resp.Outcome)
		assert.Equal(t, "InertRock:COLOR=blue", resp.A.Held)
	})

	t.Run("Same scavenger twice", func(t *testing.T) {
		svc := &MockFleetService{}

		w := doRequest(t, newFleetRouter(svc), "POST", "/trade", `{"a":"Vega","b":"Vega"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Must differ from a", resp.Fields["b"])
	})

	t.Run("Self trade from service", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Trade", mock.Anything, "Vega", " Vega").Return(nil, domain.ErrSelfTrade)

		w := doRequest(t, newFleetRouter(svc), "POST", "/trade", `{"a":"Vega","b":" Vega"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSelfTradeErr)
	})
}

func TestHandleJournal(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Journal", mock.Anything, "Vega", 0).Return([]domain.JournalEntry{{
			ScavengerName: "Vega",
			Encounter:     domain.EncounterExplore,
			Policy:        domain.PolicyRational,
			Verdict:       domain.VerdictMundane,
			Outcome:       domain.OutcomeIgnored,
			Held:          "EnergyCrystal:POWER=4",
			Other:         "EnergyCrystal:POWER=4",
			LeftBehind:    "EnergyCrystal:POWER=4",
			CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}}, nil)

		w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers/Vega/journal", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp JournalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Entries, 1)
		assert.NotEmpty(t, resp.Text)
		svc.AssertExpectations(t)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		svc := &MockFleetService{}
		svc.On("Journal", mock.Anything, "Vega", 5).Return([]domain.JournalEntry{}, nil)

		w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers/Vega/journal?limit=5", "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	for _, limit := range []string{"-1", "ten"} {
		t.Run("Invalid limit "+limit, func(t *testing.T) {
			svc := &MockFleetService{}

			w := doRequest(t, newFleetRouter(svc), "GET", "/scavengers/Vega/journal?limit="+limit, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
		})
	}
}

func TestHandleEvaluate(t *testing.T) {
	svc := &MockFleetService{}
	svc.On("Evaluate", domain.PolicyRiskTaking, domain.InertRock{Color: "red"}, domain.EnergyCrystal{Power: 2}).
		Return(domain.VerdictValuable)

	w := doRequest(t, newFleetRouter(svc), "POST", "/evaluate",
		`{"policy":"risk_taking","owned":"InertRock:COLOR=red","found":"EnergyCrystal:POWER=2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PolicyRiskTaking, resp.Policy)
	assert.Equal(t, domain.VerdictValuable, resp.Verdict)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{nil, http.StatusInternalServerError},
		{domain.ErrScavengerNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrScavengerExists), http.StatusConflict},
		{domain.ErrMalformedInput, http.StatusBadRequest},
		{domain.ErrInvalidArtifact, http.StatusBadRequest},
		{domain.ErrInvalidPolicy, http.StatusBadRequest},
		{domain.ErrSelfTrade, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrDatabaseError, http.StatusInternalServerError},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.NotEmpty(t, msg)
	}
}
