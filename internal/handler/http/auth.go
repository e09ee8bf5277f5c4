package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/service"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/internal/utils"
	"github.com/solvetrack/solvetrack/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrInvalidEmail):
			log.Err(err).Msg("invalid registration data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailAlreadyTaken):
			log.Err(err).Msg("email already taken")
			writeError(w, service.ErrEmailAlreadyTaken.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registered)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("invalid login data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			// unknown email and wrong password share the same response
			log.Err(err).Msg("wrong credentials")
			writeError(w, service.ErrWrongCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", account.AccountID).Msg("account successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Unregister(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("invalid unsubscribe data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong credentials for unsubscribe")
			writeError(w, service.ErrWrongCredentials.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrNoAccountWasFound):
			log.Err(err).Msg("account already removed")
			writeError(w, "error while unsubscribing", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during unsubscribe")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Unsubscribed Successfully!"}, http.StatusOK)
}
