package plan_api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/auth_services"
)

func TestCreateToDoListDefaultsStatus(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, auth_services.PermGetToDoLists)

	rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":   "Further reading",
		"cardId": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var toDoList map[string]any
	decodeJSON(t, rec, &toDoList)
	assert.Equal(t, "Further reading", toDoList["name"])
	assert.Equal(t, "Not started", toDoList["status"])
}

func TestCreateToDoListRejectsBadStatus(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, auth_services.PermGetToDoLists)

	rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":   "Further reading",
		"cardId": primitive.NewObjectID().Hex(),
		"status": "Done",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchToDoListStatus(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, auth_services.PermGetToDoLists)

	rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":     "Further reading",
		"cardId":   primitive.NewObjectID().Hex(),
		"freeText": "understand concept of ROE after split",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var toDoList map[string]any
	decodeJSON(t, rec, &toDoList)
	id := toDoList["id"].(string)

	rec = doRequest(t, router, http.MethodPatch, "/v1/todolists/"+id, header, map[string]any{
		"status": "Completed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/v1/todolists/"+id, header, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	decodeJSON(t, rec, &got)
	assert.Equal(t, "Completed", got["status"])
	assert.Equal(t, "Further reading", got["name"])
	assert.Equal(t, "understand concept of ROE after split", got["freeText"])
}

func TestGetToDoListsByCard(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, auth_services.PermGetToDoLists)
	cardID := primitive.NewObjectID().Hex()

	for _, name := range []string{"one", "two"} {
		rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
			"name":   name,
			"cardId": cardID,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":   "elsewhere",
		"cardId": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/v1/todolists?cardId="+cardID, header, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page struct {
		Results      []map[string]any `json:"results"`
		TotalResults int64            `json:"totalResults"`
	}
	decodeJSON(t, rec, &page)
	assert.Equal(t, int64(2), page.TotalResults)
	assert.Len(t, page.Results, 2)
}

func TestDeleteToDoList(t *testing.T) {
	router, auth := newTestAPI(t)
	header := bearer(t, auth, auth_services.PermGetToDoLists)

	rec := doRequest(t, router, http.MethodPost, "/v1/todolists", header, map[string]any{
		"name":   "Further reading",
		"cardId": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var toDoList map[string]any
	decodeJSON(t, rec, &toDoList)
	id := toDoList["id"].(string)

	rec = doRequest(t, router, http.MethodDelete, "/v1/todolists/"+id, header, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/v1/todolists/"+id, header, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
