package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/service"
	"github.com/solvetrack/solvetrack/internal/utils"
	"github.com/solvetrack/solvetrack/models"
)

// upload records a free-text solution for the authenticated account.
// The attributed email always comes from the resolved account; the body
// only supplies the confirm email, solution text, and question ID.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Error().Msg("no account in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.SolutionService.Submit(ctx, account, req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			log.Err(err).Int64("id", account.AccountID).Msg("missing solution fields")
			writeError(w, service.ErrMissingFields.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("id", account.AccountID).Msg("solution submission failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Solution Submitted Successfully!"}, http.StatusOK)
}
