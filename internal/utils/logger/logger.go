// Package logger provides a global logger for the application
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	case "prod":
		logLevel = zerolog.InfoLevel
	default:
		logLevel = zerolog.InfoLevel
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to info level and above")
	}

	// LOG_LEVEL wins over the environment default when set
	if lvl := strings.ToLower(os.Getenv("LOG_LEVEL")); lvl != "" {
		if parsed, err := zerolog.ParseLevel(lvl); err == nil {
			logLevel = parsed
		} else {
			log.Warn().Str("LOG_LEVEL", lvl).Msg("Invalid LOG_LEVEL, keeping environment default")
		}
	}

	zerolog.SetGlobalLevel(logLevel)

	log.Info().
		Str("environment", environment).
		Str("level", logLevel.String()).
		Msg("Logging configured")
}

// Init initializes the global zerolog logger from the environment.
// Call it once inside whichever main() function is your entrypoint.
func Init() {
	initLogger()
}
