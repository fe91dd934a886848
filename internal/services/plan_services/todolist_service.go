package plan_services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

type ToDoListService struct {
	Repo *plan_repository.ToDoListRepo
}

func NewToDoListService(r *plan_repository.ToDoListRepo) *ToDoListService {
	return &ToDoListService{Repo: r}
}

func (s *ToDoListService) CreateToDoList(ctx context.Context, toDoList *plan_model.ToDoList) (*plan_model.ToDoList, error) {
	return s.Repo.Create(ctx, toDoList)
}

func (s *ToDoListService) QueryToDoLists(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.ToDoList], error) {
	return s.Repo.Query(ctx, filter, opts)
}

func (s *ToDoListService) GetToDoListByID(ctx context.Context, id primitive.ObjectID) (*plan_model.ToDoList, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ToDoListService) UpdateToDoListByID(ctx context.Context, id primitive.ObjectID, update plan_model.ToDoListUpdate) (*plan_model.ToDoList, error) {
	return s.Repo.UpdateByID(ctx, id, update)
}

func (s *ToDoListService) DeleteToDoListByID(ctx context.Context, id primitive.ObjectID) (*plan_model.ToDoList, error) {
	return s.Repo.DeleteByID(ctx, id)
}
