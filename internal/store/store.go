package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoDocuments is returned when a lookup matches nothing.
var ErrNoDocuments = errors.New("store: no documents found")

// Filter is an exact-match filter over whitelisted document fields.
type Filter map[string]any

// FindOptions control ordering and pagination of Find.
// SortBy takes the form "field:asc" or "field:desc"; empty keeps the
// collection's natural (insertion) order.
type FindOptions struct {
	SortBy string
	Limit  int64
	Page   int64
}

// maxListValue bounds Limit and Page so the page offset (page-1)*limit
// stays within int64.
const maxListValue = 1 << 31

// Clamp applies the list defaults: limit 10, page 1, both at least 1 and
// at most maxListValue.
func (o FindOptions) Clamp() FindOptions {
	if o.Limit < 1 {
		o.Limit = 10
	}
	if o.Limit > maxListValue {
		o.Limit = maxListValue
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Page > maxListValue {
		o.Page = maxListValue
	}
	return o
}

// ParseSort splits a "field:asc|desc" sort expression. Anything other
// than an explicit "desc" direction sorts ascending.
func ParseSort(sortBy string) (field string, desc bool) {
	field, dir, found := strings.Cut(sortBy, ":")
	if !found {
		return field, false
	}
	return field, dir == "desc"
}

// Collection is one durable document collection. Implementations maintain
// createdAt/updatedAt on every insert and update.
type Collection interface {
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID, out any) error
	FindOne(ctx context.Context, filter Filter, out any) error
	// Find decodes one page of matches into out (a pointer to a slice)
	// and returns the total number of matches across all pages.
	Find(ctx context.Context, filter Filter, opts FindOptions, out any) (int64, error)
	// FindAll decodes every match into out without pagination.
	FindAll(ctx context.Context, filter Filter, out any) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// Database hands out named collections.
type Database interface {
	Collection(name string) Collection
}
