package validation

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
)

type CreateChecklistRequest struct {
	Name           string `json:"name" validate:"required"`
	Owner          string `json:"owner" validate:"required,objectid"`
	BoardID        string `json:"boardId" validate:"required,objectid"`
	CardID         string `json:"cardId" validate:"required,objectid"`
	Global         bool   `json:"global"`
	Rating         string `json:"rating" validate:"omitempty,oneof='very poor' poor average good 'very good'"`
	ColumnPosition int    `json:"columnPosition" validate:"gte=0"`
}

func (r *CreateChecklistRequest) Validate() error {
	return Struct(r)
}

func (r *CreateChecklistRequest) Model() *plan_model.Checklist {
	owner, _ := primitive.ObjectIDFromHex(r.Owner)
	board, _ := primitive.ObjectIDFromHex(r.BoardID)
	card, _ := primitive.ObjectIDFromHex(r.CardID)
	return &plan_model.Checklist{
		Name:           r.Name,
		Owner:          owner,
		Board:          board,
		Card:           card,
		Global:         r.Global,
		Rating:         r.Rating,
		ColumnPosition: r.ColumnPosition,
	}
}

type UpdateChecklistRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Global         *bool   `json:"global"`
	Rating         *string `json:"rating" validate:"omitempty,oneof='very poor' poor average good 'very good'"`
	ColumnPosition *int    `json:"columnPosition" validate:"omitempty,gte=0"`
}

func (r *UpdateChecklistRequest) Validate() error {
	if r.Name == nil && r.Global == nil && r.Rating == nil && r.ColumnPosition == nil {
		return Errors{"at least one field must be provided"}
	}
	return Struct(r)
}

func (r *UpdateChecklistRequest) Update() plan_model.ChecklistUpdate {
	return plan_model.ChecklistUpdate{
		Name:           r.Name,
		Global:         r.Global,
		Rating:         r.Rating,
		ColumnPosition: r.ColumnPosition,
	}
}
