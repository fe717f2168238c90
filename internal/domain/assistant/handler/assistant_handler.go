// Package handler exposes the assistant dispatch pipeline over HTTP JSON.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
	"github.com/FACorreiaa/echo-assistant/internal/domain/session"
	"github.com/FACorreiaa/echo-assistant/pkg/ai"
)

// AssistantHandler serves the dispatch endpoints.
type AssistantHandler struct {
	svc      *assistant.Service
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAssistantHandler constructs the handler.
func NewAssistantHandler(svc *assistant.Service, sessions *session.Manager, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, sessions: sessions, logger: logger}
}

// Register mounts the assistant routes on the mux.
func (h *AssistantHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/assistant/dispatch", h.handleDispatch)
	mux.HandleFunc("POST /v1/assistant/mic-test", h.handleMicTest)
	mux.HandleFunc("POST /v1/assistant/confirmation", h.handleConfirmation)
}

type dispatchRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Utterance string `json:"utterance"`
	Path      string `json:"path,omitempty"`
}

type dispatchResponse struct {
	Outcome  assistant.Outcome  `json:"outcome"`
	Language assistant.Language `json:"language"`
}

func (h *AssistantHandler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "user_id must be a UUID")
		return
	}

	sess := h.sessions.Get(req.SessionID)
	if req.Path != "" {
		sess.SetCurrentPath(req.Path)
	}

	outcome, err := h.svc.HandleUtterance(r.Context(), userID, sess, req.Utterance, sess.History())
	if err != nil {
		// The outcome is still an ai-fallback classification; the shell can
		// retry the completion itself or apologize.
		h.logger.Error("dispatch turn failed", slog.Any("err", err))
		writeError(w, http.StatusBadGateway, "assistant is unavailable, try again")
		return
	}

	sess.AppendHistory(ai.RoleUser, req.Utterance)
	if outcome.Response != "" {
		sess.AppendHistory(ai.RoleAssistant, outcome.Response)
	}

	writeJSON(w, http.StatusOK, dispatchResponse{Outcome: outcome, Language: sess.Language()})
}

type micTestRequest struct {
	SessionID string `json:"session_id"`
	Active    bool   `json:"active"`
}

func (h *AssistantHandler) handleMicTest(w http.ResponseWriter, r *http.Request) {
	var req micTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	h.sessions.Get(req.SessionID).SetMicTest(req.Active)
	writeJSON(w, http.StatusOK, map[string]bool{"mic_test": req.Active})
}

type confirmationRequest struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
}

func (h *AssistantHandler) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	var req confirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	h.sessions.Get(req.SessionID).RequestConfirmation(req.Prompt)
	writeJSON(w, http.StatusOK, map[string]bool{"awaiting": true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Status is already on the wire; an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
