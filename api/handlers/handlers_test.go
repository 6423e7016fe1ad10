package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/planet-app/user-services/api/middleware"
	"github.com/planet-app/user-services/db"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full route table against a fresh database file, so
// handler tests exercise the same path as a live server.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	t.Setenv("DATABASE", filepath.Join(t.TempDir(), "test.db"))

	logger := zerolog.Nop()
	userDB, err := db.NewUserDB(&logger)
	require.NoError(t, err)
	require.NoError(t, userDB.Migrate())
	t.Cleanup(func() { userDB.Close() })

	r := mux.NewRouter()
	r.Use(middleware.WithLogger)

	r.HandleFunc("/users", CreateUser(userDB)).Methods(http.MethodPost)
	r.HandleFunc("/users/{userid}", GetUser(userDB)).Methods(http.MethodGet)
	r.HandleFunc("/users/{userid}", UpdateUser(userDB)).Methods(http.MethodPut)
	r.HandleFunc("/users/{userid}", DeleteUser(userDB)).Methods(http.MethodDelete)

	r.HandleFunc("/groups", CreateGroup(userDB)).Methods(http.MethodPost)
	r.HandleFunc("/groups/{name}", GetGroupMembers(userDB)).Methods(http.MethodGet)
	r.HandleFunc("/groups/{name}", UpdateGroupMembers(userDB)).Methods(http.MethodPut)
	r.HandleFunc("/groups/{name}", DeleteGroup(userDB)).Methods(http.MethodDelete)

	return r
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, r *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}
