package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kickai/agentmatch/capability"
)

func newCapabilityHandler(t *testing.T) *CapabilityHandler {
	t.Helper()
	manager, err := capability.NewDefaultManager(zap.NewNop())
	require.NoError(t, err)
	return NewCapabilityHandler(manager, nil, zap.NewNop())
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleGet_Known(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/player_onboarding", nil)
	req.SetPathValue("type", "player_onboarding")
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	def := resp.Data.(map[string]interface{})
	assert.Equal(t, "player_onboarding", def["capability"])
}

func TestHandleGet_Unknown(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/nope", nil)
	req.SetPathValue("type", "nope")
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
}

func TestHandleList_All(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	defs := resp.Data.([]interface{})
	assert.Greater(t, len(defs), 50)
}

func TestHandleList_ByLevel(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities?level=specialized", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	for _, raw := range resp.Data.([]interface{}) {
		def := raw.(map[string]interface{})
		assert.Equal(t, "specialized", def["level"])
	}
}

func TestHandleList_BadLevel(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities?level=legendary", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleList_ByCategory(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities?category=financial", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.NotEmpty(t, resp.Data)
}

func TestHandleHierarchy(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/message_processing/hierarchy", nil)
	req.SetPathValue("type", "message_processing")
	rec := httptest.NewRecorder()
	h.HandleHierarchy(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	hier := resp.Data.(map[string]interface{})

	children := hier["children"].([]interface{})
	require.Len(t, children, 1)
	assert.Equal(t, "message_composition", children[0])
}

func TestHandleAgents_MinProficiency(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/player_onboarding/agents?min_proficiency=0.9", nil)
	req.SetPathValue("type", "player_onboarding")
	rec := httptest.NewRecorder()
	h.HandleAgents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	agents := resp.Data.([]interface{})
	assert.NotEmpty(t, agents)
}

func TestHandleAgents_BadProficiency(t *testing.T) {
	h := newCapabilityHandler(t)

	for _, raw := range []string{"abc", "-0.1", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/player_onboarding/agents?min_proficiency="+raw, nil)
		req.SetPathValue("type", "player_onboarding")
		rec := httptest.NewRecorder()
		h.HandleAgents(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}
}

func TestHandleBestAgent(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/player_onboarding/best-agent", nil)
	req.SetPathValue("type", "player_onboarding")
	rec := httptest.NewRecorder()
	h.HandleBestAgent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "player_coordinator", data["role"])
}

func TestHandleBestAgent_Unknown(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/nope/best-agent", nil)
	req.SetPathValue("type", "nope")
	rec := httptest.NewRecorder()
	h.HandleBestAgent(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, CodeNoQualifiedAgent, resp.Error.Code)
}

func TestHandleSummary(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capabilities/summary", nil)
	rec := httptest.NewRecorder()
	h.HandleSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	summary := resp.Data.(map[string]interface{})
	assert.NotZero(t, summary["total_capabilities"])
}

func TestHandleRoleCapabilities_UnknownRole(t *testing.T) {
	h := newCapabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents/ghost/capabilities", nil)
	req.SetPathValue("role", "ghost")
	rec := httptest.NewRecorder()
	h.HandleRoleCapabilities(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}
