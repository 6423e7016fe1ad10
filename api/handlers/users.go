package handlers

import (
	"net/http"

	"github.com/planet-app/user-services/db"
	services "github.com/planet-app/user-services/internal/services"
)

func CreateUser(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUserService(userDB, w, r)
	}
}

func GetUser(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserService(userDB, w, r)
	}
}

func UpdateUser(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateUserService(userDB, w, r)
	}
}

func DeleteUser(userDB *db.UserDB) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteUserService(userDB, w, r)
	}
}
