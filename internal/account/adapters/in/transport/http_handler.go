package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"chargestation/internal/account/application/ports/in"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler exposes the registration and login endpoints.
type HTTPHandler struct {
	registerUC in.RegisterUseCase
	loginUC    in.LoginUseCase
	log        *logger.Logger
}

func NewHTTPHandler(registerUC in.RegisterUseCase, loginUC in.LoginUseCase, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		log:        log,
	}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","service":"auth"}`))
}

// RegisterRequest is the HTTP DTO for POST /auth/register.
type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	Username     string `json:"username"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
	Role         string `json:"role"`
}

func (h *HTTPHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(logger.Entry{
			Action:  "parse_register_request_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		respondEnvelope(w, http.StatusBadRequest, "Invalid request format", true)
		return
	}

	err := h.registerUC.Execute(r.Context(), in.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Username:     req.Username,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
		Role:         req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respondEnvelope(w, http.StatusBadRequest, "Username or email address is already taken.", true)
		case errors.Is(err, domain.ErrMissingField),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrInvalidRole),
			errors.Is(err, domain.ErrInvalidDateOfBirth),
			errors.Is(err, domain.ErrPasswordTooShort):
			respondEnvelope(w, http.StatusBadRequest, err.Error(), true)
		default:
			respondEnvelope(w, http.StatusInternalServerError,
				fmt.Sprintf("Error has occurred while registering the account: %v", err), true)
		}
		return
	}

	respondEnvelope(w, http.StatusCreated, "Account successfully registered.", false)
}

// LoginRequest is the HTTP DTO for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *HTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(logger.Entry{
			Action:  "parse_login_request_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		respondEnvelope(w, http.StatusBadRequest, "Invalid request format", true)
		return
	}

	output, err := h.loginUC.Execute(r.Context(), in.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondEnvelope(w, http.StatusUnauthorized, "Invalid username or password.", true)
		case errors.Is(err, domain.ErrAccountBlocked):
			respondEnvelope(w, http.StatusForbidden, "Account is blocked.", true)
		default:
			respondEnvelope(w, http.StatusInternalServerError,
				fmt.Sprintf("Error has occurred while logging in: %v", err), true)
		}
		return
	}

	respondEnvelope(w, http.StatusOK, output, false)
}
