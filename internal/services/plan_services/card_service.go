package plan_services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

type CardService struct {
	Repo       *plan_repository.CardRepo
	Checklists *plan_repository.ChecklistRepo
	ToDoLists  *plan_repository.ToDoListRepo
}

func NewCardService(r *plan_repository.CardRepo, checklists *plan_repository.ChecklistRepo, toDoLists *plan_repository.ToDoListRepo) *CardService {
	return &CardService{Repo: r, Checklists: checklists, ToDoLists: toDoLists}
}

func (s *CardService) CreateCard(ctx context.Context, card *plan_model.Card) (*plan_model.Card, error) {
	return s.Repo.Create(ctx, card)
}

func (s *CardService) QueryCards(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Card], error) {
	return s.Repo.Query(ctx, filter, opts)
}

func (s *CardService) GetCardByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Card, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetCardContents returns the checklists and to-do lists belonging to one
// card, after confirming the card exists.
func (s *CardService) GetCardContents(ctx context.Context, cardID primitive.ObjectID) (*plan_model.CardContents, error) {
	card, err := s.Repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, plan_repository.ErrCardNotFound
	}

	checklists, err := s.Checklists.AllInCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	toDoLists, err := s.ToDoLists.AllInCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return &plan_model.CardContents{Checklists: checklists, ToDoLists: toDoLists}, nil
}

func (s *CardService) UpdateCardByID(ctx context.Context, id primitive.ObjectID, update plan_model.CardUpdate) (*plan_model.Card, error) {
	return s.Repo.UpdateByID(ctx, id, update)
}

func (s *CardService) DeleteCardByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Card, error) {
	return s.Repo.DeleteByID(ctx, id)
}
