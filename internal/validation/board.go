package validation

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
)

type CreateBoardRequest struct {
	Name  string `json:"name" validate:"required"`
	Owner string `json:"owner" validate:"required,objectid"`
}

func (r *CreateBoardRequest) Validate() error {
	return Struct(r)
}

func (r *CreateBoardRequest) Model() *plan_model.Board {
	owner, _ := primitive.ObjectIDFromHex(r.Owner)
	return &plan_model.Board{Name: r.Name, Owner: owner}
}

type UpdateBoardRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Owner *string `json:"owner" validate:"omitempty,objectid"`
}

func (r *UpdateBoardRequest) Validate() error {
	if r.Name == nil && r.Owner == nil {
		return Errors{"at least one field must be provided"}
	}
	return Struct(r)
}

func (r *UpdateBoardRequest) Update() plan_model.BoardUpdate {
	update := plan_model.BoardUpdate{Name: r.Name}
	if r.Owner != nil {
		owner, _ := primitive.ObjectIDFromHex(*r.Owner)
		update.Owner = &owner
	}
	return update
}
