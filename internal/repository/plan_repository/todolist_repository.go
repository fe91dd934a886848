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
	ErrToDoListNotFound  = errors.New("toDoList not found")
	ErrToDoListNameTaken = errors.New("a toDoList by this name already exists")
)

type ToDoListRepo struct {
	Col store.Collection
}

func NewToDoListRepo(db store.Database) *ToDoListRepo {
	return &ToDoListRepo{Col: db.Collection("todolists")}
}

func (r *ToDoListRepo) isNameTaken(ctx context.Context, name string, card, exclude primitive.ObjectID) (bool, error) {
	var existing plan_model.ToDoList
	err := r.Col.FindOne(ctx, store.Filter{"name": name, "cardId": card}, &existing)
	if errors.Is(err, store.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exclude, nil
}

func (r *ToDoListRepo) Create(ctx context.Context, toDoList *plan_model.ToDoList) (*plan_model.ToDoList, error) {
	taken, err := r.isNameTaken(ctx, toDoList.Name, toDoList.CardID, primitive.NilObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check toDoList name: %w", err)
	}
	if taken {
		return nil, ErrToDoListNameTaken
	}

	if toDoList.Status == "" {
		toDoList.Status = plan_model.StatusNotStarted
	}

	id, err := r.Col.InsertOne(ctx, toDoList)
	if err != nil {
		return nil, fmt.Errorf("failed to create toDoList: %w", err)
	}

	var created plan_model.ToDoList
	if err := r.Col.FindByID(ctx, id, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ToDoListRepo) Query(ctx context.Context, filter store.Filter, opts store.FindOptions) (*plan_model.Page[plan_model.ToDoList], error) {
	opts = opts.Clamp()
	var toDoLists []plan_model.ToDoList
	total, err := r.Col.Find(ctx, filter, opts, &toDoLists)
	if err != nil {
		return nil, err
	}
	return plan_model.PageOf(toDoLists, opts.Page, opts.Limit, total), nil
}

func (r *ToDoListRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*plan_model.ToDoList, error) {
	var toDoList plan_model.ToDoList
	err := r.Col.FindByID(ctx, id, &toDoList)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &toDoList, nil
}

func (r *ToDoListRepo) GetByName(ctx context.Context, name string) (*plan_model.ToDoList, error) {
	var toDoList plan_model.ToDoList
	err := r.Col.FindOne(ctx, store.Filter{"name": name}, &toDoList)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &toDoList, nil
}

// AllInCard returns every to-do list referencing the given card, unpaginated.
func (r *ToDoListRepo) AllInCard(ctx context.Context, cardID primitive.ObjectID) ([]plan_model.ToDoList, error) {
	var toDoLists []plan_model.ToDoList
	if err := r.Col.FindAll(ctx, store.Filter{"cardId": cardID}, &toDoLists); err != nil {
		return nil, err
	}
	if toDoLists == nil {
		toDoLists = []plan_model.ToDoList{}
	}
	return toDoLists, nil
}

func (r *ToDoListRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update plan_model.ToDoListUpdate) (*plan_model.ToDoList, error) {
	toDoList, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if toDoList == nil {
		return nil, ErrToDoListNotFound
	}

	set := map[string]any{}
	if update.Name != nil {
		taken, err := r.isNameTaken(ctx, *update.Name, toDoList.CardID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check toDoList name: %w", err)
		}
		if taken {
			return nil, ErrToDoListNameTaken
		}
		set["name"] = *update.Name
	}
	if update.FreeText != nil {
		set["freeText"] = *update.FreeText
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if len(set) == 0 {
		return toDoList, nil
	}

	if err := r.Col.UpdateByID(ctx, id, set); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrToDoListNotFound
		}
		return nil, err
	}

	var updated plan_model.ToDoList
	if err := r.Col.FindByID(ctx, id, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ToDoListRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*plan_model.ToDoList, error) {
	toDoList, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if toDoList == nil {
		return nil, ErrToDoListNotFound
	}
	if err := r.Col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			return nil, ErrToDoListNotFound
		}
		return nil, err
	}
	return toDoList, nil
}
