package handler

import (
	"net/http"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/metrics"
)

// ReplayHandler resolves encounter log lines
type ReplayHandler struct {
	replayer *codec.Replayer
}

// NewReplayHandler creates a new ReplayHandler
func NewReplayHandler(replayer *codec.Replayer) *ReplayHandler {
	return &ReplayHandler{replayer: replayer}
}

// ReplayRequest holds one "<ENCOUNTER> | <owned> | <other>" log line
type ReplayRequest struct {
	Line string `json:"line" validate:"required"`
}

// ReplayResponse is the artifact held after the encounter
type ReplayResponse struct {
	Held string `json:"held"`
}

// HandleReplay handles POST /api/v1/replay
// @Summary Replay an encounter log line
// @Description Returns the artifact held after an ASTEROID or TRADING_POST line
// @Tags encounters
// @Accept json
// @Produce json
// @Param request body ReplayRequest true "Log line"
// @Success 200 {object} ReplayResponse
// @Failure 400 {object} ErrorResponse "Malformed log line"
// @Router /replay [post]
func (h *ReplayHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	var req ReplayRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionReplay); err != nil {
		return
	}

	held, err := h.replayer.ParseLogEntry(req.Line)
	metrics.RecordReplay(err)
	if err != nil {
		respondServiceError(w, r, ActionReplay, err)
		return
	}

	respondJSON(w, http.StatusOK, ReplayResponse{Held: codec.Describe(held)})
}
