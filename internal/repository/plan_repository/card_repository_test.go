package plan_repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/model/plan_model"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

func TestCardNameUniquePerBoard(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepo(store.NewMemoryDatabase())
	board := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	_, err := repo.Create(ctx, &plan_model.Card{Name: "10yr yield", Board: board, Owner: owner})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &plan_model.Card{Name: "10yr yield", Board: board, Owner: owner})
	assert.ErrorIs(t, err, ErrCardNameTaken)

	_, err = repo.Create(ctx, &plan_model.Card{Name: "10yr yield", Board: primitive.NewObjectID(), Owner: owner})
	assert.NoError(t, err)
}

func TestCardAllInBoard(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepo(store.NewMemoryDatabase())
	board := primitive.NewObjectID()

	for _, name := range []string{"10yr yield", "Credit spreads"} {
		_, err := repo.Create(ctx, &plan_model.Card{Name: name, Board: board, Owner: primitive.NewObjectID()})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &plan_model.Card{Name: "elsewhere", Board: primitive.NewObjectID(), Owner: primitive.NewObjectID()})
	require.NoError(t, err)

	cards, err := repo.AllInBoard(ctx, board)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	empty, err := repo.AllInBoard(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCardUpdateLinksAndNote(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepo(store.NewMemoryDatabase())

	created, err := repo.Create(ctx, &plan_model.Card{
		Name:  "10yr yield",
		Board: primitive.NewObjectID(),
		Owner: primitive.NewObjectID(),
		Note:  "watch the auction calendar",
	})
	require.NoError(t, err)

	links := []string{"https://example.com/a", "https://example.com/b"}
	updated, err := repo.UpdateByID(ctx, created.ID, plan_model.CardUpdate{Links: &links})
	require.NoError(t, err)
	assert.Equal(t, links, updated.Links)
	assert.Equal(t, "10yr yield", updated.Name)
	assert.Equal(t, "watch the auction calendar", updated.Note)
}
