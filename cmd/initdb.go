package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize tables and run database migrations",
	Long:  `This job ensures the users, groups and membership tables exist by running the embedded goose migrations. Run it once before starting the server.`,
	Run: func(cmd *cobra.Command, args []string) {

		commonSetUp()
		defer userDB.Close()

		log.Info().Msg("Running migrations...")
		if err := userDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		log.Info().Msg("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
