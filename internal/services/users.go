package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planet-app/user-services/db"
	"github.com/planet-app/user-services/internal/validation"
	"github.com/planet-app/user-services/models"
	"github.com/rs/zerolog"
)

// CreateUserService creates a user and adds them to the requested groups.
// Any groups which don't exist are created as part of the same write.
func CreateUserService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload models.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("input validation failed"))
		return
	}

	user, err := validation.ValidateUser(payload)
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := userDB.CreateUser(&user); err != nil {
		if errors.Is(err, db.ErrUserExists) {
			HandleErrResponse(w, http.StatusConflict,
				fmt.Errorf("user %s already exists", user.UserID))
			return
		}
		logger.Error().Err(err).Msg("error creating user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusCreated, nil, user)
}

// GetUserService returns the matching user record, including its group names.
func GetUserService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	userid := mux.Vars(r)["userid"]

	user, err := userDB.GetUser(userid)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("user %s not found", userid))
			return
		}
		logger.Error().Err(err).Msg("error retrieving user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, user)
}

// UpdateUserService rewrites an existing user record, including its group
// memberships, from the provided payload.
func UpdateUserService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	userid := mux.Vars(r)["userid"]

	var payload models.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("input validation failed"))
		return
	}

	user, err := validation.ValidateUser(payload)
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := userDB.UpdateUser(userid, &user); err != nil {
		switch {
		case errors.Is(err, db.ErrUserNotFound):
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("user %s not found", userid))
		case errors.Is(err, db.ErrUserExists):
			HandleErrResponse(w, http.StatusConflict,
				fmt.Errorf("update failed: userid %s is already taken", user.UserID))
		default:
			logger.Error().Err(err).Msg("error updating user")
			HandleErrResponse(w, http.StatusInternalServerError, err)
		}
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, user)
}

// DeleteUserService deletes a user record and its memberships.
func DeleteUserService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	userid := mux.Vars(r)["userid"]

	if err := userDB.DeleteUser(userid); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("user %s doesn't exist and cannot be deleted", userid))
			return
		}
		logger.Error().Err(err).Msg("error deleting user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, models.Response{Success: 1})
}
