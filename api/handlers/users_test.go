package handlers

import (
	"net/http"
	"testing"

	"github.com/planet-app/user-services/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateUser_ThenGet(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "christine",
		"last_name":  "donovan",
		"userid":     "cdonovan",
		"groups":     []string{"photoclub", "bikeclub"},
	}

	rec := doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.User
	decodeBody(t, rec, &created)
	assert.Equal(t, "cdonovan", created.UserID)

	rec = doJSON(t, r, http.MethodGet, "/users/cdonovan", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetched models.User
	decodeBody(t, rec, &fetched)
	assert.Equal(t, "christine", fetched.FirstName)
	assert.Equal(t, "donovan", fetched.LastName)
	assert.ElementsMatch(t, []string{"photoclub", "bikeclub"}, fetched.Groups)
}

func TestCreateUser_Conflict(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "a",
		"last_name":  "b",
		"userid":     "taken",
		"groups":     []string{},
	}

	rec := doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	payload["first_name"] = "intruder"
	rec = doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")

	// Original record unchanged
	rec = doJSON(t, r, http.MethodGet, "/users/taken", nil)
	var fetched models.User
	decodeBody(t, rec, &fetched)
	assert.Equal(t, "a", fetched.FirstName)
}

func TestCreateUser_ValidationFailures(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		payload interface{}
	}{
		{"bogus schema", map[string]interface{}{"bogus": "schema"}},
		{"empty first_name", map[string]interface{}{
			"first_name": "", "last_name": "b", "userid": "u", "groups": []string{},
		}},
		{"null userid", map[string]interface{}{
			"first_name": "a", "last_name": "b", "userid": nil, "groups": []string{},
		}},
		{"groups not a list of strings", map[string]interface{}{
			"first_name": "a", "last_name": "b", "userid": "u", "groups": []int{1, 2},
		}},
		{"empty group name", map[string]interface{}{
			"first_name": "a", "last_name": "b", "userid": "u", "groups": []string{""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/users", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// No partial writes from any of the rejected payloads
	rec := doJSON(t, r, http.MethodGet, "/users/u", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUser_DuplicateGroupsCollapsed(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "a",
		"last_name":  "b",
		"userid":     "u",
		"groups":     []string{"club", "club", "other"},
	}

	rec := doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/users/u", nil)
	var fetched models.User
	decodeBody(t, rec, &fetched)
	assert.Equal(t, []string{"club", "other"}, fetched.Groups)
}

func TestGetUser_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/users/doesnt_exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestUpdateUser(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "a", "last_name": "b", "userid": "old", "groups": []string{"club"},
	}
	rec := doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	updated := map[string]interface{}{
		"first_name": "a2", "last_name": "b", "userid": "new", "groups": []string{"club"},
	}
	rec = doJSON(t, r, http.MethodPut, "/users/old", updated)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/users/old", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/users/new", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetched models.User
	decodeBody(t, rec, &fetched)
	assert.Equal(t, "a2", fetched.FirstName)
	assert.Equal(t, []string{"club"}, fetched.Groups)
}

func TestUpdateUser_NotFound(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "a", "last_name": "b", "userid": "ghost", "groups": []string{},
	}
	rec := doJSON(t, r, http.MethodPut, "/users/ghost", payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUser_UserIDTaken(t *testing.T) {
	r := newTestRouter(t)

	for _, userid := range []string{"u1", "u2"} {
		payload := map[string]interface{}{
			"first_name": "a", "last_name": "b", "userid": userid, "groups": []string{},
		}
		rec := doJSON(t, r, http.MethodPost, "/users", payload)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	steal := map[string]interface{}{
		"first_name": "a", "last_name": "b", "userid": "u2", "groups": []string{},
	}
	rec := doJSON(t, r, http.MethodPut, "/users/u1", steal)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"first_name": "a", "last_name": "b", "userid": "gone", "groups": []string{},
	}
	rec := doJSON(t, r, http.MethodPost, "/users", payload)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/users/gone", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/users/gone", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
