package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"timekeeper/pkg/session"
	"timekeeper/pkg/user"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service  user.ServiceInterface
	Sessions session.Repository
	Logger   *slog.Logger
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

func NewUserHandler(service user.ServiceInterface, sessions session.Repository, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Sessions: sessions,
		Logger:   logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	newUser, sessionID, err := h.Service.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		case errors.Is(err, user.ErrUserExists):
			if ok := WriteResp(w, h.Logger, map[string]any{
				"errors": []FieldError{
					{
						Location: "body",
						Param:    "username",
						Value:    req.Username,
						Msg:      "already exists",
					},
				},
			}, http.StatusConflict); ok {
				h.Logger.Error("register", "error", err.Error(), "username", req.Username)
			}
		default:
			h.Logger.Error("register", "error", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	session.SetCookie(w, sessionID)
	if ok := WriteResp(w, h.Logger, map[string]any{"user": newUser}, http.StatusCreated); ok {
		h.Logger.Info("register", "user", newUser.ID)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	loggedIn, sessionID, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			writeError(w, http.StatusNotFound, typeMessage, "user not found")
		case errors.Is(err, user.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, typeMessage, "invalid password")
		default:
			h.Logger.Error("login", "error", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	session.SetCookie(w, sessionID)
	if ok := WriteResp(w, h.Logger, map[string]any{"user": loggedIn}, http.StatusOK); ok {
		h.Logger.Info("login", "user", loggedIn.ID)
	}
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return
	}

	if err := h.Sessions.Revoke(cookie.Value); err != nil {
		h.Logger.Error("logout", "error", err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session.ClearCookie(w)
	WriteResp(w, h.Logger, map[string]any{"message": "logged out"}, http.StatusOK)
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
