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

type ChecklistHandler struct {
	Service *plan_services.ChecklistService
	Auth    *auth_services.AuthService
}

func NewChecklistHandler(s *plan_services.ChecklistService, a *auth_services.AuthService) *ChecklistHandler {
	return &ChecklistHandler{Service: s, Auth: a}
}

func (h *ChecklistHandler) ChecklistRoutes(r *mux.Router) {
	perm := auth_services.PermGetChecklists
	r.Handle("/v1/checklists",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.createChecklist)),
	).Methods("POST")
	r.Handle("/v1/checklists",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getChecklists)),
	).Methods("GET")
	r.Handle("/v1/checklists/{checklistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.getChecklist)),
	).Methods("GET")
	r.Handle("/v1/checklists/{checklistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.updateChecklist)),
	).Methods("PATCH")
	r.Handle("/v1/checklists/{checklistId}",
		middlewares.Authorize(h.Auth, perm, http.HandlerFunc(h.deleteChecklist)),
	).Methods("DELETE")
}

func (h *ChecklistHandler) createChecklist(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateChecklistRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	checklist, err := h.Service.CreateChecklist(r.Context(), req.Model())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checklist)
}

func (h *ChecklistHandler) getChecklists(w http.ResponseWriter, r *http.Request) {
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
		filter["card"] = card
	}

	page, err := h.Service.QueryChecklists(r.Context(), filter, opts)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ChecklistHandler) getChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["checklistId"], "checklistId")
	if err != nil {
		handleError(w, err)
		return
	}

	checklist, err := h.Service.GetChecklistByID(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if checklist == nil {
		handleError(w, plan_repository.ErrChecklistNotFound)
		return
	}
	writeJSON(w, http.StatusOK, checklist)
}

func (h *ChecklistHandler) updateChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["checklistId"], "checklistId")
	if err != nil {
		handleError(w, err)
		return
	}

	var req validation.UpdateChecklistRequest
	if err := validation.DecodeBody(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	checklist, err := h.Service.UpdateChecklistByID(r.Context(), id, req.Update())
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checklist)
}

func (h *ChecklistHandler) deleteChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseObjectID(mux.Vars(r)["checklistId"], "checklistId")
	if err != nil {
		handleError(w, err)
		return
	}

	if _, err := h.Service.DeleteChecklistByID(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
