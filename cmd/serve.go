package cmd

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/planet-app/user-services/api/handlers"
	"github.com/planet-app/user-services/api/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, set up logging and open the database
		commonSetUp()
		defer userDB.Close()

		// Create routes
		r := mux.NewRouter()

		api := r.PathPrefix("/").Subrouter()
		if appCfg.BasePath != "" {
			api = r.PathPrefix(appCfg.BasePath).Subrouter()
		}

		// Apply the middleware to the API routes
		api.Use(middleware.WithLogger)

		// User routes
		api.HandleFunc("/users", handlers.CreateUser(userDB)).Methods(http.MethodPost)
		api.HandleFunc("/users/{userid}", handlers.GetUser(userDB)).Methods(http.MethodGet)
		api.HandleFunc("/users/{userid}", handlers.UpdateUser(userDB)).Methods(http.MethodPut)
		api.HandleFunc("/users/{userid}", handlers.DeleteUser(userDB)).Methods(http.MethodDelete)

		// Group routes
		api.HandleFunc("/groups", handlers.CreateGroup(userDB)).Methods(http.MethodPost)
		api.HandleFunc("/groups/{name}", handlers.GetGroupMembers(userDB)).Methods(http.MethodGet)
		api.HandleFunc("/groups/{name}", handlers.UpdateGroupMembers(userDB)).Methods(http.MethodPut)
		api.HandleFunc("/groups/{name}", handlers.DeleteGroup(userDB)).Methods(http.MethodDelete)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port), r); err != nil {
			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
