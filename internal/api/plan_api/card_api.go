package plan_api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/api/middlewares"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/auth_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/plan_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/validation"
)

type CardHandler struct {
	Service *plan_services.CardService
	Auth    *auth_services.AuthService
}

func NewCardHandler(s *plan_services.CardService, a *auth_services.AuthService) *CardHandler {
	return &CardHandler{Service: s, Auth: a}
}

func (h *CardHandler) CardRoutes(r *mux.Router) {
	perm := auth_services.PermGetCards
	r.Handle("/v1/cards",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.createCard)),
	).Methods("POST")
	r.Handle("/v1/cards",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getCards)),
	).Methods("GET")
	r.Handle("/v1/cards/{cardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getCard)),
	).Methods("GET")
	r.Handle("/v1/cards/{cardId}/contents",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getCardContents)),
	).Methods("GET")
	r.Handle("/v1/cards/{cardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.updateCard)),
	).Methods("PATCH")
	r.Handle("/v1/cards/{cardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.deleteCard)),
	).Methods("DELETE")
}

func (h *CardHandler) createCard(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateCardRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	card, err := h.Service.CreateCard(r.Context(), req.Model())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *CardHandler) getCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, err := validation.ParseListOptions(q)
	if err != nil {
		handleError(w, err)
		return
	}

	filter := store.Filter{}
	board, ok, err := validation.ParseOptionalObjectID(q.Get("boardId"), "boardId")
	if err != nil {
		handleError(w, err)
		return
	}
	if ok {
		filter["board"] = board
	}

	page, err := h.Service.QueryCards(r.Context(), filter, opts)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CardHandler) getCard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["cardId"], "cardId")
	if err != nil {
		handleError(w, err)
		return
	}

	card, err := h.Service.GetCardByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if card == nil {
		handleError(w, plan_repository.ErrCardNotFound)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// getCardContents returns the checklists and to-do lists of one card in a
// single response.
func (h *CardHandler) getCardContents(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["cardId"], "cardId")
	if err != nil {
		handleError(w, err)
		return
	}

	contents, err := h.Service.GetCardContents(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contents)
}

func (h *CardHandler) updateCard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["cardId"], "cardId")
	if err != nil {
		handleError(w, err)
		return
	}

	var req validation.UpdateCardRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	card, err := h.Service.UpdateCardByID(r.Context(), id, req.Update())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *CardHandler) deleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["cardId"], "cardId")
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.Service.DeleteCardByID(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
