package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/keepnote/keepnote-api/internal/api/shared"
	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/service"
	"github.com/keepnote/keepnote-api/internal/service/auth"
	"github.com/keepnote/keepnote-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.UserID, req.Password, req.FirstName, req.LastName, req.Mobile)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Register(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, "User ID already taken")
			return
		}
		h.logger.Error("registration failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// Login handles POST /api/auth/login. The failure modes (unknown user,
// wrong credential) collapse into one 401 so the response does not reveal
// which IDs exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ok, err := h.userService.Validate(r.Context(), req.UserID, req.Password)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		h.logger.Error("login failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("token generation failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log in")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: req.UserID,
	})
}
