package plan_api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/repository/plan_repository"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/auth_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/services/plan_services"
	"github.com/nathanielzacharias/InvestorChecklistTool-BE/internal/store"
)

const testUserID = "5ebac534954b54139806c112"

var allPerms = []string{
	auth_services.PermGetBoards,
	auth_services.PermGetCards,
	auth_services.PermGetChecklists,
	auth_services.PermGetToDoLists,
}

// newTestAPI wires the full handler stack over an in-memory store.
func newTestAPI(t *testing.T) (*mux.Router, *auth_services.AuthService) {
	t.Helper()

	db := store.NewMemoryDatabase()
	auth := auth_services.NewAuthService("test-secret")

	boardRepo := plan_repository.NewBoardRepo(db)
	cardRepo := plan_repository.NewCardRepo(db)
	checklistRepo := plan_repository.NewChecklistRepo(db)
	toDoListRepo := plan_repository.NewToDoListRepo(db)

	r := mux.NewRouter()
	NewBoardHandler(plan_services.NewBoardService(boardRepo, cardRepo), auth).BoardRoutes(r)
	NewCardHandler(plan_services.NewCardService(cardRepo, checklistRepo, toDoListRepo), auth).CardRoutes(r)
	NewChecklistHandler(plan_services.NewChecklistService(checklistRepo), auth).ChecklistRoutes(r)
	NewToDoListHandler(plan_services.NewToDoListService(toDoListRepo), auth).ToDoListRoutes(r)
	return r, auth
}

func bearer(t *testing.T, auth *auth_services.AuthService, permissions ...string) string {
	t.Helper()
	token, err := auth.NewAccessToken(testUserID, permissions, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, router *mux.Router, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func createBoard(t *testing.T, router *mux.Router, authHeader, name, owner string) map[string]any {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/v1/boards", authHeader, map[string]any{
		"name":  name,
		"owner": owner,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var board map[string]any
	decodeJSON(t, rec, &board)
	return board
}

func createCard(t *testing.T, router *mux.Router, authHeader, name, owner, boardID string) map[string]any {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/v1/cards", authHeader, map[string]any{
		"name":    name,
		"owner":   owner,
		"boardId": boardID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var card map[string]any
	decodeJSON(t, rec, &card)
	return card
}
