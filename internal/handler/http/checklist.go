package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/internal/utils"
	"github.com/solvetrack/solvetrack/models"
)

// profile returns the authenticated account's own checklist. The account
// comes from the request context, so one account can never read another's
// list.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		log.Error().Msg("no account in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Checked: account.Checked, Message: "true"}, http.StatusOK)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	h.updateChecklist(w, r, checklistMark)
}

func (h *Handler) uncheck(w http.ResponseWriter, r *http.Request) {
	h.updateChecklist(w, r, checklistUnmark)
}

type checklistAction int

const (
	checklistMark checklistAction = iota
	checklistUnmark
)

func (h *Handler) updateChecklist(w http.ResponseWriter, r *http.Request, action checklistAction) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Error().Msg("no account in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	var result []string
	var err error
	var message, failure string

	switch action {
	case checklistMark:
		result, err = h.services.ChecklistService.MarkComplete(ctx, account, req.CheckedQues)
		message, failure = "Question Marked Completed!", "error while checking"
	case checklistUnmark:
		result, err = h.services.ChecklistService.MarkIncomplete(ctx, account, req.CheckedQues)
		message, failure = "Question Unmarked!", "error while unchecking"
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoAccountWasFound):
			log.Err(err).Int64("id", account.AccountID).Msg("checklist update hit missing account")
			writeError(w, failure, http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("id", account.AccountID).Msg("checklist update failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ChecklistResponse{Message: message, Result: result}, http.StatusOK)
}
