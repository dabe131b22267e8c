package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/channel-user-client/internal/client"
	"github.com/MKhiriev/channel-user-client/internal/config"
	"github.com/MKhiriev/channel-user-client/internal/logger"
	"github.com/MKhiriev/channel-user-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("userctl")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := config.Args(os.Args[1:])

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx, args)
	stop()

	if err != nil {
		log.Error().Err(err).Int("exit_code", client.ExitCode(err)).Msg("command failed")
	}
	os.Exit(client.ExitCode(err))
}
