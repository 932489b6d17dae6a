package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"timekeeper/pkg/session"
	"timekeeper/pkg/timer"
)

const (
	typeError      string = "error"
	typeMessage    string = "message"
	muxVarTimerID  string = "timer_id"
	queryArgActive string = "active"
)

type StartForm struct {
	Description string `json:"description"`
}

type TimerHandler struct {
	Service timer.ServiceTimer
	Logger  *slog.Logger
}

func NewTimerHandler(service timer.ServiceTimer, logger *slog.Logger) *TimerHandler {
	return &TimerHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *TimerHandler) ListTimers(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	isActive := true
	if arg := r.URL.Query().Get(queryArgActive); arg != "" {
		parsed, err := strconv.ParseBool(arg)
		if err != nil {
			writeError(w, http.StatusBadRequest, typeError, "invalid active flag")
			return
		}
		isActive = parsed
	}

	timers, err := h.Service.List(sess.UserID, isActive)
	if err != nil {
		h.Logger.Error("list timers", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Logger, timers)
}

func (h *TimerHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	var req StartForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	created, err := h.Service.Start(sess.UserID, req.Description)
	if err != nil {
		if errors.Is(err, timer.ErrMissingDescription) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		h.Logger.Error("start timer", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		h.Logger.Error("failed to write JSON response", slog.Any("err", err))
		return
	}
	h.Logger.Info("timer started", "user", sess.UserID, "timer", created.ID)
}

func (h *TimerHandler) StopTimer(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	vars := mux.Vars(r)

	timerID, ok := vars[muxVarTimerID]
	if !ok || timerID == "" {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid timer id")
		return
	}

	stopped, err := h.Service.Stop(sess.UserID, timerID)
	if err != nil {
		switch {
		case errors.Is(err, timer.ErrForbidden):
			writeError(w, http.StatusForbidden, typeMessage, "forbidden")
		case errors.Is(err, timer.ErrAlreadyStopped):
			writeError(w, http.StatusConflict, typeMessage, err.Error())
		default:
			h.Logger.Error("stop timer", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if ok := writeJSON(w, h.Logger, stopped); ok {
		h.Logger.Info("timer stopped", "user", sess.UserID, "timer", stopped.ID)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, body any) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
