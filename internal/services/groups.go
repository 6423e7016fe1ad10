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

// CreateGroupService explicitly creates a new empty group.
func CreateGroupService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload models.GroupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("input validation failed"))
		return
	}

	name, err := validation.ValidateGroup(payload)
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := userDB.CreateGroup(name); err != nil {
		if errors.Is(err, db.ErrGroupExists) {
			HandleErrResponse(w, http.StatusConflict,
				fmt.Errorf("group %s already exists", name))
			return
		}
		logger.Error().Err(err).Msg("error creating group")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusCreated, nil, models.Response{Success: 1})
}

// GetGroupMembersService returns the userids of all members of the group.
func GetGroupMembersService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	name := mux.Vars(r)["name"]

	members, err := userDB.GetGroupMembers(name)
	if err != nil {
		if errors.Is(err, db.ErrGroupNotFound) {
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("group %s not found", name))
			return
		}
		logger.Error().Err(err).Msg("error retrieving group members")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, members)
}

// UpdateGroupMembersService replaces a group's membership from a provided
// list of userids. It only succeeds if all listed users already exist.
func UpdateGroupMembersService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	name := mux.Vars(r)["name"]

	var payload []*string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Debug().Err(err).Msg("invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, errors.New("input validation failed"))
		return
	}

	members, err := validation.ValidateMembers(payload)
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := userDB.UpdateGroupMembers(name, members); err != nil {
		var notFound *db.MembersNotFoundError
		switch {
		case errors.Is(err, db.ErrGroupNotFound):
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("group %s not found", name))
		case errors.As(err, &notFound):
			HandleErrResponse(w, http.StatusNotFound, notFound)
		default:
			logger.Error().Err(err).Msg("error updating group members")
			HandleErrResponse(w, http.StatusInternalServerError, err)
		}
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, models.Response{Success: 1})
}

// DeleteGroupService deletes a group and its membership rows.
func DeleteGroupService(userDB *db.UserDB, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	name := mux.Vars(r)["name"]

	if err := userDB.DeleteGroup(name); err != nil {
		if errors.Is(err, db.ErrGroupNotFound) {
			HandleErrResponse(w, http.StatusNotFound,
				fmt.Errorf("group %s doesn't exist and cannot be deleted", name))
			return
		}
		logger.Error().Err(err).Msg("error deleting group")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, models.Response{Success: 1})
}
