package handlers

import (
	"net/http"

	"github.com/planet-app/user-services/db"
	services "github.com/planet-app/user-services/internal/services"
)

func CreateGroup(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateGroupService(userDB, w, r)
	}
}

func GetGroupMembers(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGroupMembersService(userDB, w, r)
	}
}

func UpdateGroupMembers(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateGroupMembersService(userDB, w, r)
	}
}

func DeleteGroup(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteGroupService(userDB, w, r)
	}
}
