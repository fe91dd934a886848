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
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrChecklistNameTaken = errors.New("a checklist by this name already exists")
)

type ChecklistRepo struct {
	Col store.Collection
}

func NewChecklistRepo(db store.Database) *ChecklistRepo {
	return &ChecklistRepo{Col: db.Collection("checklists")}
}

func (r *ChecklistRepo) isNameTaken(ctx context.Context, name string, card, exclude primitive.ObjectID) (bool, error) {
	var existing plan_model.Checklist
	err := r.Col.FindOne(ctx, store.Filter{"name": name, "card": card}, &existing)
	if errors.Is(err, store.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exclude, nil
}

func (r *ChecklistRepo) Create(ctx context.Context, checklist *plan_model.Checklist) (*plan_model.Checklist, error) {
	taken, err := r.isNameTaken(ctx, checklist.Name, checklist.Card, primitive.NilObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check checklist name: %w", err)
	}
	if taken {
		return nil, ErrChecklistNameTaken
	}

	id, err := r.Col.InsertOne(ctx, checklist)
	if err != nil {
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}

	var created plan_model.Checklist
	if err := r.Col.FindByID(ctx, id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ChecklistRepo) Query(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.Checklist], error) {
	opts = opts.Clamp()
	var checklists []plan_model.Checklist
	total, err := r.Col.Find(ctx, filter, opts, &checklists)
	if err != nil {
		return nil, err
	}
	return plan_model.PageOf(checklists, opts.Page, opts.Limit, total), nil
}

func (r *ChecklistRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Checklist, error) {
	var checklist plan_model.Checklist
	err := r.Col.FindByID(ctx, id, &checklist)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (r *ChecklistRepo) GetByName(ctx context.Context, name string) (*plan_model.Checklist, error) {
	var checklist plan_model.Checklist
	err := r.Col.FindOne(ctx, store.Filter{"name": name}, &checklist)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// AllInCard returns every checklist referencing the given card, unpaginated.
func (r *ChecklistRepo) AllInCard(ctx context.Context, cardID primitive.ObjectID) ([]plan_model.Checklist, error) {
	var checklists []plan_model.Checklist
	if err := r.Col.FindAll(ctx, store.Filter{"card": cardID}, &checklists); err != nil {
		return nil, err
	}
	if checklists == nil {
		checklists = []plan_model.Checklist{}
	}
	return checklists, nil
}

func (r *ChecklistRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update plan_model.ChecklistUpdate) (*plan_model.Checklist, error) {
	checklist, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, ErrChecklistNotFound
	}

	set := map[string]any{}
	if update.Name != nil {
		taken, err := r.isNameTaken(ctx, *update.Name, checklist.Card, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check checklist name: %w", err)
		}
		if taken {
			return nil, ErrChecklistNameTaken
		}
		set["name"] = *update.Name
	}
	if update.Global != nil {
		set["global"] = *update.Global
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.ColumnPosition != nil {
		set["columnPosition"] = *update.ColumnPosition
	}
	if len(set) == 0 {
		return checklist, nil
	}

	if err := r.Col.UpdateByID(ctx, id, set); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrChecklistNotFound
		}
		return nil, err
	}

	var updated plan_model.Checklist
	if err := r.Col.FindByID(ctx, id, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ChecklistRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*plan_model.Checklist, error) {
	checklist, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, ErrChecklistNotFound
	}
	if err := r.Col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrChecklistNotFound
		}
		return nil, err
	}
	return checklist, nil
}
