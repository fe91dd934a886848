package plan_repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrBoardNameTaken = errors.New("a board by this name already exists")
)

type BoardRepo struct {
	Col store.Collection
}

func NewBoardRepo(db store.Database) *BoardRepo {
	return &BoardRepo{Col: db.Collection("boards")}
}

// isNameTaken reports whether another board owned by the same user already
// uses name. exclude skips the board being updated. The check is
// read-then-decide: two concurrent creates can both pass it.
func (r *BoardRepo) isNameTaken(ctx context.Context, name string, owner, exclude primitive.ObjectID) (bool, error) {
	var existing plan_model.Board
	err := r.Col.FindOne(ctx, store.Filter{"name": name, "owner": owner}, &existing)
	if errors.Is(err, store.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exclude, nil
}

func (r *BoardRepo) Create(ctx context.Context, board *plan_model.Board) (*plan_model.Board, error) {
	taken, err := r.isNameTaken(ctx, board.Name, board.Owner, primitive.NilObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board name: %w", err)
	}
	if taken {
		return nil, ErrBoardNameTaken
	}

	id, err := r.Col.InsertOne(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	var created plan_model.Board
	if err := r.Col.FindByID(ctx, id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *BoardRepo) Query(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Board], error) {
	opts = opts.Clamp()
	var boards []plan_model.Board
	total, err := r.Col.Find(ctx, filter, opts, &boards)
	if err != nil {
		return nil, err
	}
	return plan_model.PageOf(boards, opts.Page, opts.Limit, total), nil
}

// GetByID returns nil without an error when the board does not exist;
// callers decide whether that is a 404.
func (r *BoardRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Board, error) {
	var board plan_model.Board
	err := r.Col.FindByID(ctx, id, &board)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepo) GetByName(ctx context.Context, name string) (*plan_model.Board, error) {
	var board plan_model.Board
	err := r.Col.FindOne(ctx, store.Filter{"name": name}, &board)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update plan_model.BoardUpdate) (*plan_model.Board, error) {
	board, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	set := map[string]any{}
	if update.Owner != nil {
		set["owner"] = *update.Owner
	}
	if update.Name != nil {
		owner := board.Owner
		if update.Owner != nil {
			owner = *update.Owner
		}
		taken, err := r.isNameTaken(ctx, *update.Name, owner, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check board name: %w", err)
		}
		if taken {
			return nil, ErrBoardNameTaken
		}
		set["name"] = *update.Name
	}
	if len(set) == 0 {
		return board, nil
	}

	if err := r.Col.UpdateByID(ctx, id, set); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	var updated plan_model.Board
	if err := r.Col.FindByID(ctx, id, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes the board and returns its pre-delete snapshot.
// Cards keep referencing the deleted board; there is no cascade.
func (r *BoardRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Board, error) {
	board, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	if err := r.Col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}
