package plan_services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

type BoardService struct {
	Repo  *plan_repository.BoardRepo
	Cards *plan_repository.CardRepo
}

func NewBoardService(r *plan_repository.BoardRepo, cards *plan_repository.CardRepo) *BoardService {
	return &BoardService{Repo: r, Cards: cards}
}

func (s *BoardService) CreateBoard(ctx context.Context, board *plan_model.Board) (*plan_model.Board, error) {
	return s.Repo.Create(ctx, board)
}

func (s *BoardService) QueryBoards(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Board], error) {
	return s.Repo.Query(ctx, filter, opts)
}

func (s *BoardService) GetBoardByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Board, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetAllCardsInBoard fans out to the card repository after confirming the
// board exists.
func (s *BoardService) GetAllCardsInBoard(ctx context.Context, boardID primitive.ObjectID) ([]plan_model.Card, error) {
	board, err := s.Repo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, plan_repository.ErrBoardNotFound
	}
	return s.Cards.AllInBoard(ctx, boardID)
}

func (s *BoardService) UpdateBoardByID(ctx context.Context, id primitive.ObjectID, update plan_model.BoardUpdate) (*plan_model.Board, error) {
	return s.Repo.UpdateByID(ctx, id, update)
}

func (s *BoardService) DeleteBoardByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Board, error) {
	return s.Repo.DeleteByID(ctx, id)
}
