package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/planet-app/user-services/db"
	"github.com/planet-app/user-services/internal/appconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg *appconfig.Config
	userDB *db.UserDB
)

var rootCmd = &cobra.Command{
	Use:   "user-services",
	Short: "User Services",
	Long:  `User Services is a small record-management service exposing users and their group memberships over HTTP.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to an optional YAML config file")
}

// commonSetUp configures logging, loads the optional config file and opens
// the database. A database path from the config file wins over the DATABASE
// environment default.
func commonSetUp() {
	setLogging(logLevel)

	// Pick up a local .env file if one exists
	_ = godotenv.Load()

	appCfg = &appconfig.Config{}
	if configPath != "" {
		var err error
		appCfg, err = appconfig.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		if appCfg.Database.Path != "" {
			if err := os.Setenv("DATABASE", appCfg.Database.Path); err != nil {
				log.Fatal().Err(err).Msg("failed to set DATABASE from config")
			}
		}
	}

	logger := log.Logger
	var err error
	userDB, err = db.NewUserDB(&logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
