package handler

import (
	"net/http"
	"time"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/encounter"
	"github.com/osse101/Scavenger_Go/internal/fleet"
)

// FleetHandler serves scavenger registration and encounters
type FleetHandler struct {
	service fleet.Service
}

// NewFleetHandler creates a new FleetHandler
func NewFleetHandler(service fleet.Service) *FleetHandler {
	return &FleetHandler{service: service}
}

// ScavengerResponse is a scavenger with its artifact in log text form
type ScavengerResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Policy    domain.Policy `json:"policy"`
	Held      string        `json:"held"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toScavengerResponse(s domain.Scavenger) ScavengerResponse {
	return ScavengerResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Policy:    s.Policy,
		Held:      codec.Describe(s.Held),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// RegisterRequest represents a scavenger registration
type RegisterRequest struct {
	Name   string `json:"name" validate:"required,max=64"`
	Policy string `json:"policy" validate:"required,policy"`
	Held   string `json:"held" validate:"required,artifact"`
}

// HandleRegister handles POST /api/v1/scavengers
// @Summary Register a scavenger
// @Description Create a scavenger with a policy and a starting artifact in log text form
// @Tags scavengers
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} ScavengerResponse
// @Failure 400 {object} ErrorResponse "Invalid policy or artifact"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Router /scavengers [post]
func (h *FleetHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionRegister); err != nil {
		return
	}

	policy, err := domain.ParsePolicy(req.Policy)
	if err != nil {
		respondServiceError(w, r, ActionRegister, err)
		return
	}
	held, err := codec.ParseArtifact(req.Held)
	if err != nil {
		respondServiceError(w, r, ActionRegister, err)
		return
	}

	s, err := h.service.Register(r.Context(), req.Name, policy, held)
	if err != nil {
		respondServiceError(w, r, ActionRegister, err)
		return
	}

	respondJSON(w, http.StatusCreated, toScavengerResponse(*s))
}

// HandleList handles GET /api/v1/scavengers
// @Summary List scavengers
// @Tags scavengers
// @Produce json
// @Success 200 {array} ScavengerResponse
// @Router /scavengers [get]
func (h *FleetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionList, err)
		return
	}

	out := make([]ScavengerResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toScavengerResponse(s))
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/v1/scavengers/{name}
// @Summary Get a scavenger
// @Tags scavengers
// @Produce json
// @Param name path string true "Scavenger name"
// @Success 200 {object} ScavengerResponse
// @Failure 404 {object} ErrorResponse "Scavenger not found"
// @Router /scavengers/{name} [get]
func (h *FleetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name, ok := scavengerNameParam(w, r)
	if !ok {
		return
	}

	s, err := h.service.Get(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ActionGet, err)
		return
	}

	respondJSON(w, http.StatusOK, toScavengerResponse(*s))
}

// ExploreRequest carries the artifact found during exploration
type ExploreRequest struct {
	Found string `json:"found" validate:"required,artifact"`
}

// ExploreResponse reports what the scavenger did with its find
type ExploreResponse struct {
	Scavenger  ScavengerResponse `json:"scavenger"`
	Found      string            `json:"found"`
	LeftBehind string            `json:"left_behind"`
	Verdict    domain.Verdict    `json:"verdict"`
	Outcome    domain.Outcome    `json:"outcome"`
}

// HandleExplore handles POST /api/v1/scavengers/{name}/explore
// @Summary Explore an asteroid
// @Description The scavenger judges the found artifact and keeps, swaps or loses its own
// @Tags encounters
// @Accept json
// @Produce json
// @Param name path string true "Scavenger name"
// @Param request body ExploreRequest true "Found artifact"
// @Success 200 {object} ExploreResponse
// @Failure 400 {object} ErrorResponse "Malformed artifact"
// @Failure 404 {object} ErrorResponse "Scavenger not found"
// @Router /scavengers/{name}/explore [post]
func (h *FleetHandler) HandleExplore(w http.ResponseWriter, r *http.Request) {
	name, ok := scavengerNameParam(w, r)
	if !ok {
		return
	}

	var req ExploreRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionExplore); err != nil {
		return
	}

	found, err := codec.ParseArtifact(req.Found)
	if err != nil {
		respondServiceError(w, r, ActionExplore, err)
		return
	}

	result, err := h.service.Explore(r.Context(), name, found)
	if err != nil {
		respondServiceError(w, r, ActionExplore, err)
		return
	}

	respondJSON(w, http.StatusOK, ExploreResponse{
		Scavenger:  toScavengerResponse(result.After),
		Found:      codec.Describe(result.Found),
		LeftBehind: codec.Describe(result.LeftBehind),
		Verdict:    result.Verdict,
		Outcome:    result.Outcome,
	})
}

// TradeRequest names the two scavengers meeting at a trading post
type TradeRequest struct {
	A string `json:"a" validate:"required,max=64"`
	B string `json:"b" validate:"required,max=64,nefield=A"`
}

// TradeResponse reports both sides of a trade
type TradeResponse struct {
	A        ScavengerResponse `json:"a"`
	B        ScavengerResponse `json:"b"`
	VerdictA domain.Verdict    `json:"verdict_a"`
	VerdictB domain.Verdict    `json:"verdict_b"`
	Outcome  domain.Outcome    `json:"outcome"`
}

// HandleTrade handles POST /api/v1/trade
// @Summary Trade held artifacts
// @Description Both scavengers swap only when each judges the other's artifact valuable
// @Tags encounters
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Scavenger names"
// @Success 200 {object} TradeResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Scavenger not found"
// @Router /trade [post]
func (h *FleetHandler) HandleTrade(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionTrade); err != nil {
		return
	}

	result, err := h.service.Trade(r.Context(), req.A, req.B)
	if err != nil {
		respondServiceError(w, r, ActionTrade, err)
		return
	}

	respondJSON(w, http.StatusOK, TradeResponse{
		A:        toScavengerResponse(result.A),
		B:        toScavengerResponse(result.B),
		VerdictA: result.VerdictA,
		VerdictB: result.VerdictB,
		Outcome:  result.Outcome,
	})
}

// JournalResponse lists journal entries newest first with a plain-text rendering
type JournalResponse struct {
	Entries []domain.JournalEntry `json:"entries"`
	Text    string                `json:"text"`
}

// HandleJournal handles GET /api/v1/scavengers/{name}/journal
// @Summary Recent encounters
// @Tags scavengers
// @Produce json
// @Param name path string true "Scavenger name"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /scavengers/{name}/journal [get]
func (h *FleetHandler) HandleJournal(w http.ResponseWriter, r *http.Request) {
	name, ok := scavengerNameParam(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	entries, err := h.service.Journal(r.Context(), name, limit)
	if err != nil {
		respondServiceError(w, r, ActionJournal, err)
		return
	}

	respondJSON(w, http.StatusOK, JournalResponse{
		Entries: entries,
		Text:    encounter.FormatJournal(entries),
	})
}

// EvaluateRequest asks how a policy would judge found against owned
type EvaluateRequest struct {
	Policy string `json:"policy" validate:"required,policy"`
	Owned  string `json:"owned" validate:"required,artifact"`
	Found  string `json:"found" validate:"required,artifact"`
}

// EvaluateResponse carries the verdict
type EvaluateResponse struct {
	Policy  domain.Policy  `json:"policy"`
	Verdict domain.Verdict `json:"verdict"`
}

// HandleEvaluate handles POST /api/v1/evaluate
// @Summary Judge a found artifact
// @Tags encounters
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Policy and artifacts"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} ErrorResponse "Invalid policy or artifact"
// @Router /evaluate [post]
func (h *FleetHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionEvaluate); err != nil {
		return
	}

	policy, err := domain.ParsePolicy(req.Policy)
	if err != nil {
		respondServiceError(w, r, ActionEvaluate, err)
		return
	}
	owned, err := codec.ParseArtifact(req.Owned)
	if err != nil {
		respondServiceError(w, r, ActionEvaluate, err)
		return
	}
	found, err := codec.ParseArtifact(req.Found)
	if err != nil {
		respondServiceError(w, r, ActionEvaluate, err)
		return
	}

	respondJSON(w, http.StatusOK, EvaluateResponse{
		Policy:  policy,
		Verdict: h.service.Evaluate(policy, owned, found),
	})
}
