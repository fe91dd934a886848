package validation

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
)

type CreateCardRequest struct {
	Name    string   `json:"name" validate:"required"`
	Owner   string   `json:"owner" validate:"required,objectid"`
	BoardID string   `json:"boardId" validate:"required,objectid"`
	Note    string   `json:"note"`
	Links   []string `json:"links" validate:"omitempty,dive,url"`
}

func (r *CreateCardRequest) Validate() error {
	return Struct(r)
}

func (r *CreateCardRequest) Model() *plan_model.Card {
	owner, _ := primitive.ObjectIDFromHex(r.Owner)
	board, _ := primitive.ObjectIDFromHex(r.BoardID)
	return &plan_model.Card{
		Name:  r.Name,
		Owner: owner,
		Board: board,
		Note:  r.Note,
		Links: r.Links,
	}
}

type UpdateCardRequest struct {
	Name  *string   `json:"name" validate:"omitempty,min=1"`
	Note  *string   `json:"note"`
	Links *[]string `json:"links" validate:"omitempty,dive,url"`
}

func (r *UpdateCardRequest) Validate() error {
	if r.Name == nil && r.Note == nil && r.Links == nil {
		return Errors{"at least one field must be provided"}
	}
	return Struct(r)
}

func (r *UpdateCardRequest) Update() plan_model.CardUpdate {
	return plan_model.CardUpdate{Name: r.Name, Note: r.Note, Links: r.Links}
}
