package config

import (
	"time"

	"github.com/omnisig/go-txbuilder/internal/util"
)

// EchoServer configures the HTTP layer.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	GracefulShutdownTimeout        time.Duration
}

// Logger configures the zerolog setup.
type Logger struct {
	Level              string
	PrettyPrintConsole bool
}

// Server is the central service configuration, resolved from ENV.
type Server struct {
	Echo   EchoServer
	Logger Logger
}

// DefaultServiceConfigFromEnv returns the server config as resolved from the
// environment, with sane defaults for local development.
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Echo: EchoServer{
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			GracefulShutdownTimeout:        time.Duration(util.GetEnvAsInt("SERVER_ECHO_GRACEFUL_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Logger: Logger{
			Level:              util.GetEnv("SERVER_LOGGER_LEVEL", "info"),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
	}
}
