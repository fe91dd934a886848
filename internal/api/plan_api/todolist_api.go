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

type ToDoListHandler struct {
	Service *plan_services.ToDoListService
	Auth    *auth_services.AuthService
}

func NewToDoListHandler(s *plan_services.ToDoListService, a *auth_services.AuthService) *ToDoListHandler {
	return &ToDoListHandler{Service: s, Auth: a}
}

func (h *ToDoListHandler) ToDoListRoutes(r *mux.Router) {
	perm := auth_services.PermGetToDoLists
	r.Handle("/v1/todolists",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.createToDoList)),
	).Methods("POST")
	r.Handle("/v1/todolists",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getToDoLists)),
	).Methods("GET")
	r.Handle("/v1/todolists/{todolistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getToDoList)),
	).Methods("GET")
	r.Handle("/v1/todolists/{todolistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.updateToDoList)),
	).Methods("PATCH")
	r.Handle("/v1/todolists/{todolistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.deleteToDoList)),
	).Methods("DELETE")
}

func (h *ToDoListHandler) createToDoList(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateToDoListRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	toDoList, err := h.Service.CreateToDoList(r.Context(), req.Model())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDoList)
}

func (h *ToDoListHandler) getToDoLists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, err := validation.ParseListOptions(q)
	if err != nil {
		handleError(w, err)
		return
	}

	filter := store.Filter{}
	card, ok, err := validation.ParseOptionalObjectID(q.Get("cardId"), "cardId")
	if err != nil {
		handleError(w, err)
		return
	}
	if ok {
		filter["cardId"] = card
	}

	page, err := h.Service.QueryToDoLists(r.Context(), filter, opts)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ToDoListHandler) getToDoList(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["todolistId"], "todolistId")
	if err != nil {
		handleError(w, err)
		return
	}

	toDoList, err := h.Service.GetToDoListByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if toDoList == nil {
		handleError(w, plan_repository.ErrToDoListNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toDoList)
}

func (h *ToDoListHandler) updateToDoList(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["todolistId"], "todolistId")
	if err != nil {
		handleError(w, err)
		return
	}

	var req validation.UpdateToDoListRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	toDoList, err := h.Service.UpdateToDoListByID(r.Context(), id, req.Update())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDoList)
}

func (h *ToDoListHandler) deleteToDoList(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["todolistId"], "todolistId")
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.Service.DeleteToDoListByID(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
