package validation

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
)

type CreateToDoListRequest struct {
	Name     string `json:"name" validate:"required"`
	CardID   string `json:"cardId" validate:"required,objectid"`
	FreeText string `json:"freeText"`
	Status   string `json:"status" validate:"omitempty,oneof='Not started' 'In progress' Completed Cancelled"`
}

func (r *CreateToDoListRequest) Validate() error {
	return Struct(r)
}

func (r *CreateToDoListRequest) Model() *plan_model.ToDoList {
	card, _ := primitive.ObjectIDFromHex(r.CardID)
	return &plan_model.ToDoList{
		Name:     r.Name,
		CardID:   card,
		FreeText: r.FreeText,
		Status:   r.Status,
	}
}

type UpdateToDoListRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	FreeText *string `json:"freeText"`
	Status   *string `json:"status" validate:"omitempty,oneof='Not started' 'In progress' Completed Cancelled"`
}

func (r *UpdateToDoListRequest) Validate() error {
	if r.Name == nil && r.FreeText == nil && r.Status == nil {
		return Errors{"at least one field must be provided"}
	}
	return Struct(r)
}

func (r *UpdateToDoListRequest) Update() plan_model.ToDoListUpdate {
	return plan_model.ToDoListUpdate{Name: r.Name, FreeText: r.FreeText, Status: r.Status}
}
