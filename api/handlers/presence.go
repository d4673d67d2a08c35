package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
	"github.com/kickai/agentmatch/presence"
)

// PresenceRecorder receives presence metrics. The metrics Collector
// satisfies it; a nil recorder disables recording.
type PresenceRecorder interface {
	RecordHeartbeat(role string)
}

// HeartbeatRequest is the body of POST /api/v1/agents/{role}/heartbeat.
// Load is optional; TTL defaults to the store's heartbeat TTL.
type HeartbeatRequest struct {
	Load *float64 `json:"load,omitempty"`
	TTL  string   `json:"ttl,omitempty"`
}

// PresenceHandler serves agent heartbeat and presence queries.
type PresenceHandler struct {
	store    presence.Store
	manager  *capability.Manager
	recorder PresenceRecorder
	ttl      time.Duration
	logger   *zap.Logger
}

// NewPresenceHandler creates a PresenceHandler. recorder may be nil; a
// non-positive ttl falls back to presence.DefaultHeartbeatTTL.
func NewPresenceHandler(store presence.Store, manager *capability.Manager, recorder PresenceRecorder, ttl time.Duration, logger *zap.Logger) *PresenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = presence.DefaultHeartbeatTTL
	}
	return &PresenceHandler{
		store:    store,
		manager:  manager,
		recorder: recorder,
		ttl:      ttl,
		logger:   logger.With(zap.String("component", "presence_handler")),
	}
}

// knownRole reports whether role appears in the capability matrix.
func (h *PresenceHandler) knownRole(role capability.AgentRole) bool {
	for _, r := range h.manager.Roles() {
		if r == role {
			return true
		}
	}
	return false
}

// HandleHeartbeat serves POST /api/v1/agents/{role}/heartbeat.
func (h *PresenceHandler) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	role := capability.AgentRole(r.PathValue("role"))
	if !h.knownRole(role) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "unknown agent role: "+string(role), h.logger)
		return
	}

	var req HeartbeatRequest
	if r.ContentLength > 0 {
		if err := DecodeJSON(r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid request body: "+err.Error(), h.logger)
			return
		}
	}

	ttl := h.ttl
	if req.TTL != "" {
		d, err := time.ParseDuration(req.TTL)
		if err != nil || d <= 0 {
			WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "ttl must be a positive duration", h.logger)
			return
		}
		ttl = d
	}
	if req.Load != nil && (*req.Load < 0 || *req.Load > 1) {
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "load must be in [0, 1]", h.logger)
		return
	}

	if err := h.store.Heartbeat(r.Context(), role, ttl); err != nil {
		WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "heartbeat failed: "+err.Error(), h.logger)
		return
	}
	if req.Load != nil {
		if err := h.store.SetLoad(r.Context(), role, *req.Load); err != nil {
			WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "set load failed: "+err.Error(), h.logger)
			return
		}
	}
	if h.recorder != nil {
		h.recorder.RecordHeartbeat(string(role))
	}

	status, err := h.store.Get(r.Context(), role)
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "read presence failed: "+err.Error(), h.logger)
		return
	}
	WriteSuccess(w, status)
}

// HandleStatus serves GET /api/v1/agents/{role}/presence. Offline
// agents get a null status rather than an error.
func (h *PresenceHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	role := capability.AgentRole(r.PathValue("role"))
	if !h.knownRole(role) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "unknown agent role: "+string(role), h.logger)
		return
	}

	status, err := h.store.Get(r.Context(), role)
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "read presence failed: "+err.Error(), h.logger)
		return
	}
	WriteSuccess(w, status)
}

// HandleOnline serves GET /api/v1/agents/online.
func (h *PresenceHandler) HandleOnline(w http.ResponseWriter, r *http.Request) {
	online, err := h.store.Online(r.Context())
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, CodeBackendUnavailable, "list online failed: "+err.Error(), h.logger)
		return
	}
	WriteSuccess(w, online)
}
