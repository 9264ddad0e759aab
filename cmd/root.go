package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/omnisig/go-txbuilder/cmd/build"
	"github.com/omnisig/go-txbuilder/cmd/env"
	"github.com/omnisig/go-txbuilder/cmd/probe"
	"github.com/omnisig/go-txbuilder/cmd/server"
	"github.com/omnisig/go-txbuilder/internal/config"
	"github.com/omnisig/go-txbuilder/internal/util"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A stateless multi-chain transaction builder written in Go.
Requires configuration through ENV.`, config.ModuleName),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg := config.DefaultServiceConfigFromEnv()

		zerolog.SetGlobalLevel(util.LogLevelFromString(cfg.Logger.Level))
		if cfg.Logger.PrettyPrintConsole {
			log.Logger = log.Output(zerolog.NewConsoleWriter())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		build.New(),
		env.New(),
		probe.New(),
		server.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
