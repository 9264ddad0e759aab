package probe

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/omnisig/go-txbuilder/internal/config"
	"github.com/omnisig/go-txbuilder/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func newLiveness() *cobra.Command {
	return &cobra.Command{
		Use:   "liveness",
		Short: "Checks the running server's liveness endpoint",
		Run: func(_ *cobra.Command, _ []string) {
			probeManagementEndpoint("/-/healthy")
		},
	}
}

func newReadiness() *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Checks the running server's readiness endpoint",
		Run: func(_ *cobra.Command, _ []string) {
			probeManagementEndpoint("/-/ready")
		},
	}
}

func probeManagementEndpoint(path string) {
	cfg := config.DefaultServiceConfigFromEnv()

	addr := cfg.Echo.ListenAddress
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Get(fmt.Sprintf("http://%s%s", addr, path))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Probe failed")
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		log.Fatal().Err(errors.Errorf("unexpected status %d", res.StatusCode)).Str("body", string(body)).Msg("Probe failed")
	}

	fmt.Println(strings.TrimSpace(string(body)))
}
