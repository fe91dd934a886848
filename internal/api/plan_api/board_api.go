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

type BoardHandler struct {
	Service *plan_services.BoardService
	Auth    *auth_services.AuthService
}

func NewBoardHandler(s *plan_services.BoardService, a *auth_services.AuthService) *BoardHandler {
	return &BoardHandler{Service: s, Auth: a}
}

func (h *BoardHandler) BoardRoutes(r *mux.Router) {
	perm := auth_services.PermGetBoards
	r.Handle("/v1/boards",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.createBoard)),
	).Methods("POST")
	r.Handle("/v1/boards",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getBoards)),
	).Methods("GET")
	r.Handle("/v1/boards/{boardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getBoard)),
	).Methods("GET")
	r.Handle("/v1/boards/{boardId}/cards",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getCards)),
	).Methods("GET")
	r.Handle("/v1/boards/{boardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.updateBoard)),
	).Methods("PATCH")
	r.Handle("/v1/boards/{boardId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.deleteBoard)),
	).Methods("DELETE")
}

func (h *BoardHandler) createBoard(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateBoardRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	board, err := h.Service.CreateBoard(r.Context(), req.Model())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, board)
}

func (h *BoardHandler) getBoards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, err := validation.ParseListOptions(q)
	if err != nil {
		handleError(w, err)
		return
	}

	filter := store.Filter{}
	owner, ok, err := validation.ParseOptionalObjectID(q.Get("owner"), "owner")
	if err != nil {
		handleError(w, err)
		return
	}
	if ok {
		filter["owner"] = owner
	}

	page, err := h.Service.QueryBoards(r.Context(), filter, opts)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *BoardHandler) getBoard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["boardId"], "boardId")
	if err != nil {
		handleError(w, err)
		return
	}

	board, err := h.Service.GetBoardByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if board == nil {
		handleError(w, plan_repository.ErrBoardNotFound)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) getCards(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["boardId"], "boardId")
	if err != nil {
		handleError(w, err)
		return
	}

	cards, err := h.Service.GetAllCardsInBoard(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *BoardHandler) updateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["boardId"], "boardId")
	if err != nil {
		handleError(w, err)
		return
	}

	var req validation.UpdateBoardRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	board, err := h.Service.UpdateBoardByID(r.Context(), id, req.Update())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *BoardHandler) deleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["boardId"], "boardId")
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.Service.DeleteBoardByID(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
