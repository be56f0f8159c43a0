package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/solagora/agentmarket/internal/domain"
	"github.com/solagora/agentmarket/internal/service"
	"github.com/solagora/agentmarket/internal/store"
)

type AgentHandler struct {
	svc *service.AgentService
}

func NewAgentHandler(svc *service.AgentService) *AgentHandler {
	return &AgentHandler{svc: svc}
}

type createAgentRequest struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Capabilities  []string       `json:"capabilities"`
	Pricing       domain.Pricing `json:"pricing"`
	Endpoint      string         `json:"endpoint"`
	CreatorWallet string         `json:"creatorWallet"`
}

type listAgentsResponse struct {
	Agents []domain.Agent `json:"agents"`
}

type createAgentResponse struct {
	Agent *domain.Agent `json:"agent"`
}

// List serves GET /api/agents?page=<n>&limit=<n>.
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	agents, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list agents")
		return
	}

	writeJSON(w, http.StatusOK, listAgentsResponse{Agents: agents})
}

// Create serves POST /api/agents.
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agent, err := h.svc.Register(r.Context(), service.RegisterInput{
		Name:          req.Name,
		Description:   req.Description,
		Capabilities:  req.Capabilities,
		Pricing:       req.Pricing,
		Endpoint:      req.Endpoint,
		CreatorWallet: req.CreatorWallet,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrWalletRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusConflict, "agent already exists")
		default:
			writeError(w, http.StatusInternalServerError, "failed to register agent")
		}
		return
	}

	writeJSON(w, http.StatusCreated, createAgentResponse{Agent: agent})
}
