package plan_services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

type ChecklistService struct {
	Repo *plan_repository.ChecklistRepo
}

func NewChecklistService(r *plan_repository.ChecklistRepo) *ChecklistService {
	return &ChecklistService{Repo: r}
}

func (s *ChecklistService) CreateChecklist(ctx context.Context, checklist *plan_model.Checklist) (*plan_model.Checklist, error) {
	return s.Repo.Create(ctx, checklist)
}

func (s *ChecklistService) QueryChecklists(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Checklist], error) {
	return s.Repo.Query(ctx, filter, opts)
}

func (s *ChecklistService) GetChecklistByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Checklist, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ChecklistService) UpdateChecklistByID(ctx context.Context, id primitive.ObjectID, update plan_model.ChecklistUpdate) (*plan_model.Checklist, error) {
	return s.Repo.UpdateByID(ctx, id, update)
}

func (s *ChecklistService) DeleteChecklistByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Checklist, error) {
	return s.Repo.DeleteByID(ctx, id)
}
