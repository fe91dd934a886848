package plan_api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCardValidation(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, allPerms...)

	// missing boardId
	rec := doRequest(t, router, http.MethodPost, "/v1/cards", header, map[string]any{
		"name":  "10yr yield",
		"owner": testUserID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed link
	rec = doRequest(t, router, http.MethodPost, "/v1/cards", header, map[string]any{
		"name":    "10yr yield",
		"owner":   testUserID,
		"boardId": primitive.NewObjectID().Hex(),
		"links":   []string{"not a url"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndGetCard(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, allPerms...)

	board := createBoard(t, router, header, "Treasury Bonds", testUserID)
	boardID := board["id"].(string)

	rec := doRequest(t, router, http.MethodPost, "/v1/cards", header, map[string]any{
		"name":    "10yr yield",
		"owner":   testUserID,
		"boardId": boardID,
		"note":    "watch the auction calendar",
		"links":   []string{"https://example.com/yields"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var card map[string]any
	decodeJSON(t, rec, &card)
	assert.Equal(t, "10yr yield", card["name"])
	assert.Equal(t, boardID, card["board"])
	assert.Equal(t, "watch the auction calendar", card["note"])

	rec = doRequest(t, router, http.MethodGet, "/v1/cards/"+card["id"].(string), header, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCardsFilteredByBoard(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, allPerms...)

	board := createBoard(t, router, header, "Treasury Bonds", testUserID)
	boardID := board["id"].(string)
	createCard(t, router, header, "10yr yield", testUserID, boardID)
	createCard(t, router, header, "Credit spreads", testUserID, primitive.NewObjectID().Hex())

	rec := doRequest(t, router, http.MethodGet, "/v1/cards?boardId="+boardID, header, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var page struct {
		Results      []map[string]any `json:"results"`
		TotalResults int64            `json:"totalResults"`
	}
	decodeJSON(t, rec, &page)
	assert.Equal(t, int64(1), page.TotalResults)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "10yr yield", page.Results[0]["name"])
}

func TestGetCardContents(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, allPerms...)

	board := createBoard(t, router, header, "Treasury Bonds", testUserID)
	boardID := board["id"].(string)
	card := createCard(t, router, header, "10yr yield", testUserID, boardID)
	cardID := card["id"].(string)

	rec := doRequest(t, router, http.MethodPost, "/v1/checklists", header, map[string]any{
		"name":    "Macro checks",
		"owner":   testUserID,
		"boardId": boardID,
		"cardId":  cardID,
		"rating":  "very good",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":   "Further reading",
		"cardId": cardID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/v1/cards/"+cardID+"/contents", header, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var contents struct {
		Checklists []map[string]any `json:"checklists"`
		ToDoLists  []map[string]any `json:"toDoLists"`
	}
	decodeJSON(t, rec, &contents)
	require.Len(t, contents.Checklists, 1)
	require.Len(t, contents.ToDoLists, 1)
	assert.Equal(t, "Macro checks", contents.Checklists[0]["name"])
	assert.Equal(t, "Further reading", contents.ToDoLists[0]["name"])

	rec = doRequest(t, router, http.MethodGet, "/v1/cards/"+primitive.NewObjectID().Hex()+"/contents", header, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchCardLinks(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, allPerms...)

	card := createCard(t, router, header, "10yr yield", testUserID, primitive.NewObjectID().Hex())
	id := card["id"].(string)

	rec := doRequest(t, router, http.MethodPatch, "/v1/cards/"+id, header, map[string]any{
		"links": []string{"https://example.com/a", "https://example.com/b"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got map[string]any
	decodeJSON(t, rec, &got)
	assert.Equal(t, "10yr yield", got["name"])
	assert.Len(t, got["links"], 2)
}
