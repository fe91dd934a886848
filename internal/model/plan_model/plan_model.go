package plan_model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checklist ratings.
const (
	RatingVeryPoor = "very poor"
	RatingPoor     = "poor"
	RatingAverage  = "average"
	RatingGood     = "good"
	RatingVeryGood = "very good"
)

// ToDoList statuses.
const (
	StatusNotStarted = "Not started"
	StatusInProgress = "In progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

type Board struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Owner     primitive.ObjectID `bson:"owner,omitempty" json:"owner"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type Card struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	Links     []string           `bson:"links,omitempty" json:"links,omitempty"`
	Board     primitive.ObjectID `bson:"board" json:"board"`
	Owner     primitive.ObjectID `bson:"owner,omitempty" json:"owner"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type Checklist struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Card           primitive.ObjectID `bson:"card" json:"card"`
	Board          primitive.ObjectID `bson:"board" json:"board"`
	Owner          primitive.ObjectID `bson:"owner" json:"owner"`
	Global         bool               `bson:"global" json:"global"`
	Rating         string             `bson:"rating,omitempty" json:"rating,omitempty"`
	ColumnPosition int                `bson:"columnPosition" json:"columnPosition"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// ToDoList keeps its parent ref under cardId, matching the stored documents.
type ToDoList struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CardID    primitive.ObjectID `bson:"cardId" json:"cardId"`
	FreeText  string             `bson:"freeText,omitempty" json:"freeText,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CardContents is the composite read for one card.
type CardContents struct {
	Checklists []Checklist `json:"checklists"`
	ToDoLists  []ToDoList  `json:"toDoLists"`
}

// Update structs carry only the fields supplied by a PATCH body;
// nil means "leave untouched".

type BoardUpdate struct {
	Name  *string
	Owner *primitive.ObjectID
}

type CardUpdate struct {
	Name  *string
	Note  *string
	Links *[]string
}

type ChecklistUpdate struct {
	Name           *string
	Global         *bool
	Rating         *string
	ColumnPosition *int
}

type ToDoListUpdate struct {
	Name     *string
	FreeText *string
	Status   *string
}

// Page is the pagination envelope returned by every list operation.
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int64 `json:"page"`
	Limit        int64 `json:"limit"`
	TotalPages   int64 `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

func PageOf[T any](results []T, page, limit, total int64) *Page[T] {
	if results == nil {
		results = []T{}
	}
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Page[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}
