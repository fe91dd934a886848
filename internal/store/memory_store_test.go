package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Owner     primitive.ObjectID `bson:"owner,omitempty"`
	Rank      int                `bson:"rank"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func TestMemoryInsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	id, err := col.InsertOne(ctx, &testDoc{Name: "alpha", Rank: 3})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	var got testDoc
	require.NoError(t, col.FindByID(ctx, id, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, 3, got.Rank)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestMemoryFindOneNoMatch(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	var got testDoc
	err := col.FindOne(ctx, Filter{"name": "missing"}, &got)
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestMemoryFindFilterSortPaginate(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	names := []string{"carrot", "apple", "banana", "date", "elder"}
	for i, name := range names {
		_, err := col.InsertOne(ctx, &testDoc{Name: name, Owner: owner, Rank: i})
		require.NoError(t, err)
	}
	_, err := col.InsertOne(ctx, &testDoc{Name: "stranger", Owner: other})
	require.NoError(t, err)

	var docs []testDoc
	total, err := col.Find(ctx, Filter{"owner": owner}, FindOptions{SortBy: "name:asc", Limit: 2, Page: 2}, &docs)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, docs, 2)
	assert.Equal(t, "carrot", docs[0].Name)
	assert.Equal(t, "date", docs[1].Name)

	total, err = col.Find(ctx, Filter{"owner": owner}, FindOptions{SortBy: "name:desc", Limit: 10, Page: 1}, &docs)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, docs, 5)
	assert.Equal(t, "elder", docs[0].Name)

	// past the last page
	total, err = col.Find(ctx, Filter{"owner": owner}, FindOptions{Limit: 10, Page: 3}, &docs)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, docs)
}

func TestMemoryFindNaturalOrder(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	for _, name := range []string{"first", "second", "third"} {
		_, err := col.InsertOne(ctx, &testDoc{Name: name})
		require.NoError(t, err)
	}

	var docs []testDoc
	_, err := col.Find(ctx, Filter{}, FindOptions{Limit: 10, Page: 1}, &docs)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "first", docs[0].Name)
	assert.Equal(t, "third", docs[2].Name)
}

func TestMemoryFindHugePageValues(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	_, err := col.InsertOne(ctx, &testDoc{Name: "only"})
	require.NoError(t, err)

	// limit*page would overflow a naive int64 offset
	var docs []testDoc
	total, err := col.Find(ctx, Filter{}, FindOptions{Limit: 1 << 62, Page: 4}, &docs)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, docs)

	total, err = col.Find(ctx, Filter{}, FindOptions{Limit: 10, Page: 1 << 62}, &docs)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, docs)
}

func TestMemoryConcurrentFindAndUpdate(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	var ids []primitive.ObjectID
	for i := 0; i < 10; i++ {
		id, err := col.InsertOne(ctx, &testDoc{Name: fmt.Sprintf("doc-%02d", i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			var docs []testDoc
			_, err := col.Find(ctx, Filter{}, FindOptions{SortBy: "name:desc", Limit: 5, Page: 1}, &docs)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			err := col.UpdateByID(ctx, ids[i%len(ids)], map[string]any{"name": fmt.Sprintf("renamed-%03d", i)})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}

func TestMemoryUpdateByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	id, err := col.InsertOne(ctx, &testDoc{Name: "before", Rank: 1})
	require.NoError(t, err)

	require.NoError(t, col.UpdateByID(ctx, id, map[string]any{"name": "after"}))

	var got testDoc
	require.NoError(t, col.FindByID(ctx, id, &got))
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, 1, got.Rank)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	err = col.UpdateByID(ctx, primitive.NewObjectID(), map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestMemoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	col := NewMemoryDatabase().Collection("docs")

	id, err := col.InsertOne(ctx, &testDoc{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, col.DeleteByID(ctx, id))

	var got testDoc
	assert.ErrorIs(t, col.FindByID(ctx, id, &got), ErrNoDocuments)
	assert.ErrorIs(t, col.DeleteByID(ctx, id), ErrNoDocuments)
}

func TestParseSort(t *testing.T) {
	field, desc := ParseSort("name:desc")
	assert.Equal(t, "name", field)
	assert.True(t, desc)

	field, desc = ParseSort("name:asc")
	assert.Equal(t, "name", field)
	assert.False(t, desc)

	field, desc = ParseSort("name")
	assert.Equal(t, "name", field)
	assert.False(t, desc)
}

func TestFindOptionsClamp(t *testing.T) {
	opts := FindOptions{Limit: 0, Page: -3}.Clamp()
	assert.Equal(t, int64(10), opts.Limit)
	assert.Equal(t, int64(1), opts.Page)

	opts = FindOptions{Limit: 25, Page: 2}.Clamp()
	assert.Equal(t, int64(25), opts.Limit)
	assert.Equal(t, int64(2), opts.Page)

	opts = FindOptions{Limit: 1 << 62, Page: 1 << 40}.Clamp()
	assert.Equal(t, int64(1<<31), opts.Limit)
	assert.Equal(t, int64(1<<31), opts.Page)
}
