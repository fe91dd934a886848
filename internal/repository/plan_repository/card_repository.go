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
	ErrCardNotFound  = errors.New("card not found")
	ErrCardNameTaken = errors.New("a card by this name already exists")
)

type CardRepo struct {
	Col store.Collection
}

func NewCardRepo(db store.Database) *CardRepo {
	return &CardRepo{Col: db.Collection("cards")}
}

func (r *CardRepo) isNameTaken(ctx context.Context, name string, board, exclude primitive.ObjectID) (bool, error) {
	var existing plan_model.Card
	err := r.Col.FindOne(ctx, store.Filter{"name": name, "board": board}, &existing)
	if errors.Is(err, store.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exclude, nil
}

func (r *CardRepo) Create(ctx context.Context, card *plan_model.Card) (*plan_model.Card, error) {
	taken, err := r.isNameTaken(ctx, card.Name, card.Board, primitive.NilObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check card name: %w", err)
	}
	if taken {
		return nil, ErrCardNameTaken
	}

	id, err := r.Col.InsertOne(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	var created plan_model.Card
	if err := r.Col.FindByID(ctx, id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CardRepo) Query(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Card], error) {
	opts = opts.Clamp()
	var cards []plan_model.Card
	total, err := r.Col.Find(ctx, filter, opts, &cards)
	if err != nil {
		return nil, err
	}
	return plan_model.PageOf(cards, opts.Page, opts.Limit, total), nil
}

func (r *CardRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Card, error) {
	var card plan_model.Card
	err := r.Col.FindByID(ctx, id, &card)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepo) GetByName(ctx context.Context, name string) (*plan_model.Card, error) {
	var card plan_model.Card
	err := r.Col.FindOne(ctx, store.Filter{"name": name}, &card)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// AllInBoard returns every card referencing the given board, unpaginated.
func (r *CardRepo) AllInBoard(ctx context.Context, boardID primitive.ObjectID) ([]plan_model.Card, error) {
	var cards []plan_model.Card
	if err := r.Col.FindAll(ctx, store.Filter{"board": boardID}, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []plan_model.Card{}
	}
	return cards, nil
}

func (r *CardRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update plan_model.CardUpdate) (*plan_model.Card, error) {
	card, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	set := map[string]any{}
	if update.Name != nil {
		taken, err := r.isNameTaken(ctx, *update.Name, card.Board, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check card name: %w", err)
		}
		if taken {
			return nil, ErrCardNameTaken
		}
		set["name"] = *update.Name
	}
	if update.Note != nil {
		set["note"] = *update.Note
	}
	if update.Links != nil {
		set["links"] = *update.Links
	}
	if len(set) == 0 {
		return card, nil
	}

	if err := r.Col.UpdateByID(ctx, id, set); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	var updated plan_model.Card
	if err := r.Col.FindByID(ctx, id, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *CardRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Card, error) {
	card, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	if err := r.Col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}
