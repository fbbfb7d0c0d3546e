// backend/src/handlers/session_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/models"
	"github.com/username/feecompare/backend/src/services"
	"github.com/username/feecompare/backend/src/utils"
)

type SessionHandler struct {
	comparisonService services.ComparisonService
}

func NewSessionHandler(service services.ComparisonService) *SessionHandler {
	return &SessionHandler{comparisonService: service}
}

// sessionID extracts the session ID route parameter.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrSessionNotFound) {
		status = http.StatusNotFound
	}
	utils.SendJSONError(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

type createSessionRequest struct {
	IDPSAccounts  int `json:"idps_accounts"`
	SuperAccounts int `json:"super_accounts"`
}

func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.SendJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
			return
		}
	}

	state := h.comparisonService.CreateSession(req.IDPSAccounts, req.SuperAccounts)
	logger.FromContext(r.Context()).Info("Handled CreateSession", "sessionID", state.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(state)
}

func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.comparisonService.GetSession(sessionID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, state)
}

type setAccountCountsRequest struct {
	IDPSAccounts  int `json:"idps_accounts"`
	SuperAccounts int `json:"super_accounts"`
}

func (h *SessionHandler) HandleSetAccountCounts(w http.ResponseWriter, r *http.Request) {
	var req setAccountCountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	state, err := h.comparisonService.SetAccountCounts(sessionID(r), req.IDPSAccounts, req.SuperAccounts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, state)
}

type updateBalanceRequest struct {
	Class string `json:"class"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

func (h *SessionHandler) HandleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req updateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	state, err := h.comparisonService.UpdateBalance(sessionID(r), req.Class, req.Index, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, state)
}

type setCurrentPlatformsRequest struct {
	Platforms []string `json:"platforms"`
}

func (h *SessionHandler) HandleSetCurrentPlatforms(w http.ResponseWriter, r *http.Request) {
	var req setCurrentPlatformsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	state, err := h.comparisonService.SetCurrentPlatforms(sessionID(r), req.Platforms)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	logger.FromContext(r.Context()).Info("Current platforms saved", "sessionID", state.ID, "count", len(state.CurrentPlatforms))
	writeJSON(w, state)
}

type setPreferenceRequest struct {
	Mode       string `json:"mode"`
	CustomText string `json:"custom_text"`
}

func (h *SessionHandler) HandleSetPreference(w http.ResponseWriter, r *http.Request) {
	var req setPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	state, err := h.comparisonService.SetPreference(sessionID(r), models.PreferenceMode(req.Mode), req.CustomText)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, state)
}
