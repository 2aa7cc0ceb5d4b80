// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-messenger/internal/client"
	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/internal/tui"
	"github.com/MKhiriev/go-messenger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("messenger").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("messenger", cfg.App.LogFile)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewClientServices(ctx, service.Options{
		Repo:             storages.Records,
		Logger:           log.WithComponent("service"),
		ReadReceiptDelay: cfg.Workers.ReadReceiptDelay,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui := tui.New(services, buildInfo(), log.WithComponent("tui"))

	app, err := client.NewApp(ctx, cfg, services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
