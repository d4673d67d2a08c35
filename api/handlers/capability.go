package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
)

// LookupRecorder receives capability lookup metrics. The metrics
// Collector satisfies it; a nil recorder disables recording.
type LookupRecorder interface {
	RecordCapabilityLookup(operation string, found bool)
	RecordBestAgentMiss(capability string)
}

// CapabilityHandler serves the capability catalog and agent matching
// queries.
type CapabilityHandler struct {
	manager  *capability.Manager
	recorder LookupRecorder
	logger   *zap.Logger
}

// NewCapabilityHandler creates a CapabilityHandler. recorder may be
// nil.
func NewCapabilityHandler(manager *capability.Manager, recorder LookupRecorder, logger *zap.Logger) *CapabilityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CapabilityHandler{
		manager:  manager,
		recorder: recorder,
		logger:   logger.With(zap.String("component", "capability_handler")),
	}
}

func (h *CapabilityHandler) record(operation string, found bool) {
	if h.recorder != nil {
		h.recorder.RecordCapabilityLookup(operation, found)
	}
}

// HandleList serves GET /api/v1/capabilities with optional level and
// category filters.
func (h *CapabilityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if lv := q.Get("level"); lv != "" {
		level := capability.Level(lv)
		if !level.Valid() {
			WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "unknown level: "+lv, h.logger)
			return
		}
		WriteSuccess(w, h.manager.CapabilitiesByLevel(level))
		return
	}
	if cat := q.Get("category"); cat != "" {
		WriteSuccess(w, h.manager.CapabilitiesByCategory(capability.Category(cat)))
		return
	}
	WriteSuccess(w, h.manager.Definitions())
}

// HandleGet serves GET /api/v1/capabilities/{type}.
func (h *CapabilityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ct := capability.Type(r.PathValue("type"))
	def, ok := h.manager.Definition(ct)
	h.record("definition", ok)
	if !ok {
		WriteError(w, http.StatusNotFound, CodeNotFound, "unknown capability: "+string(ct), h.logger)
		return
	}
	WriteSuccess(w, def)
}

// HandleHierarchy serves GET /api/v1/capabilities/{type}/hierarchy.
func (h *CapabilityHandler) HandleHierarchy(w http.ResponseWriter, r *http.Request) {
	ct := capability.Type(r.PathValue("type"))
	_, ok := h.manager.Definition(ct)
	h.record("hierarchy", ok)
	WriteSuccess(w, h.manager.Hierarchy(ct))
}

// HandleRelated serves GET /api/v1/capabilities/{type}/related.
func (h *CapabilityHandler) HandleRelated(w http.ResponseWriter, r *http.Request) {
	ct := capability.Type(r.PathValue("type"))
	related := h.manager.RelatedCapabilities(ct)
	h.record("related", len(related) > 0)
	WriteSuccess(w, related)
}

// HandleAgents serves GET /api/v1/capabilities/{type}/agents with an
// optional min_proficiency query parameter.
func (h *CapabilityHandler) HandleAgents(w http.ResponseWriter, r *http.Request) {
	ct := capability.Type(r.PathValue("type"))

	minProficiency := 0.0
	if raw := r.URL.Query().Get("min_proficiency"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			WriteError(w, http.StatusBadRequest, CodeInvalidRequest, "min_proficiency must be a number in [0, 1]", h.logger)
			return
		}
		minProficiency = v
	}

	agents := h.manager.AgentsWithCapability(ct, minProficiency)
	h.record("agents_with_capability", len(agents) > 0)
	WriteSuccess(w, agents)
}

// HandleBestAgent serves GET /api/v1/capabilities/{type}/best-agent.
func (h *CapabilityHandler) HandleBestAgent(w http.ResponseWriter, r *http.Request) {
	ct := capability.Type(r.PathValue("type"))

	role, ok := h.manager.BestAgentFor(ct)
	h.record("best_agent", ok)
	if !ok {
		if h.recorder != nil {
			h.recorder.RecordBestAgentMiss(string(ct))
		}
		WriteError(w, http.StatusNotFound, CodeNoQualifiedAgent, "no agent with positive proficiency for "+string(ct), h.logger)
		return
	}
	WriteSuccess(w, map[string]capability.AgentRole{"role": role})
}

// HandleSummary serves GET /api/v1/capabilities/summary.
func (h *CapabilityHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.manager.Summarize())
}

// HandleRoles serves GET /api/v1/agents.
func (h *CapabilityHandler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.manager.Roles())
}

// HandleRoleCapabilities serves GET /api/v1/agents/{role}/capabilities.
// Unknown roles get an empty list.
func (h *CapabilityHandler) HandleRoleCapabilities(w http.ResponseWriter, r *http.Request) {
	role := capability.AgentRole(r.PathValue("role"))
	profiles := h.manager.AgentCapabilities(role)
	h.record("agent_capabilities", len(profiles) > 0)
	WriteSuccess(w, profiles)
}
