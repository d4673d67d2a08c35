package handlers

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kickai/agentmatch/routing"
)

// RouteRecorder receives routing metrics. The metrics Collector
// satisfies it; a nil recorder disables recording.
type RouteRecorder interface {
	RecordRouteDecision(method, role string, duration time.Duration)
	RecordStandin(wantedRole, standinRole string)
}

// RouteRequest is the body of POST /api/v1/route.
type RouteRequest struct {
	Text string `json:"text"`
}

// RouteHandler resolves incoming message text to an agent.
type RouteHandler struct {
	router   *routing.Router
	recorder RouteRecorder
	logger   *zap.Logger
}

// NewRouteHandler creates a RouteHandler. recorder may be nil.
func NewRouteHandler(router *routing.Router, recorder RouteRecorder, logger *zap.Logger) *RouteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RouteHandler{
		router:   router,
		recorder: recorder,
		logger:   logger.With(zap.String("component", "route_handler")),
	}
}

// HandleRoute serves POST /api/v1/route.
func (h *RouteHandler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body: "+err.Error(), h.logger)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "text must not be empty", h.logger)
		return
	}

	start := time.Now()
	decision, err := h.router.Route(r.Context(), req.Text)
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "routing failed: "+err.Error(), h.logger)
		return
	}

	if h.recorder != nil {
		h.recorder.RecordRouteDecision(string(decision.Method), string(decision.Role), time.Since(start))
		if decision.Standin && decision.Rule != nil && decision.Rule.Role != "" {
			h.recorder.RecordStandin(string(decision.Rule.Role), string(decision.Role))
		}
	}

	h.logger.Debug("routed message",
		zap.String("role", string(decision.Role)),
		zap.String("method", string(decision.Method)),
		zap.Bool("standin", decision.Standin),
	)

	WriteSuccess(w, decision)
}
