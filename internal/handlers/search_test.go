package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/florv/home-helper/internal/dto"
	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/services"
)

func TestSearchHandler_Dispatch_External(t *testing.T) {
	env := setupHandlerTestEnv(t)
	createUser(t, env, "alice", "password1")
	cookies := login(t, env, "alice", "password1")

	w := do(env, http.MethodPost, "/search", `{"search_type":"google","search_value":"home helper"}`, cookies)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "https://www.google.com/search?q=home+helper", w.Header().Get("Location"))
}

func TestSearchHandler_Dispatch_Site(t *testing.T) {
	env := setupHandlerTestEnv(t)
	alice := createUser(t, env, "alice", "password1")
	cookies := login(t, env, "alice", "password1")

	_, err := env.noteService.SaveNote(alice.ID, services.SaveNoteInput{Title: "Groceries", Body: "milk, eggs"})
	require.NoError(t, err)

	w := do(env, http.MethodPost, "/search", `{"search_type":"site","search_value":"milk"}`, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/search/results?query=milk", w.Header().Get("Location"))

	// Follow the redirect to the results page.
	w2 := do(env, http.MethodGet, w.Header().Get("Location"), "", cookies)
	require.Equal(t, http.StatusOK, w2.Code)

	var resp struct {
		Query   string                `json:"query"`
		Results []dto.NoteListItemDTO `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	require.Equal(t, "milk", resp.Query)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "Groceries", resp.Results[0].Title)
}

func TestSearchHandler_Dispatch_UnknownType(t *testing.T) {
	env := setupHandlerTestEnv(t)
	createUser(t, env, "alice", "password1")
	cookies := login(t, env, "alice", "password1")

	w := do(env, http.MethodPost, "/search", `{"search_type":"bing","search_value":"milk"}`, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandler_History(t *testing.T) {
	env := setupHandlerTestEnv(t)
	alice := createUser(t, env, "alice", "password1")
	cookies := login(t, env, "alice", "password1")

	for i := 0; i < 3; i++ {
		require.NoError(t, env.searchService.RecordSearch(alice.ID, models.SearchTypeSite, "milk"))
	}

	w := do(env, http.MethodGet, "/search/history", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		History []dto.SearchHistoryDTO `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.History, 1)
	require.Equal(t, int64(3), resp.History[0].TimesSearched)
	require.Equal(t, "milk", resp.History[0].SearchValue)
}

func TestSearchHandler_Results_RequiresQuery(t *testing.T) {
	env := setupHandlerTestEnv(t)
	createUser(t, env, "alice", "password1")
	cookies := login(t, env, "alice", "password1")

	w := do(env, http.MethodGet, "/search/results", "", cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
