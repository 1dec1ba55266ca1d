package main

import (
	"Explorer/database"
	"Explorer/internal/seed"
	"Explorer/internal/server"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	seedDemo := flag.Bool("seed", false, "replace all folders and files with the demo tree and exit")
	flag.Parse()

	explorer, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(explorer.DB)
	logger := explorer.LogService.Log

	if *seedDemo {
		seeder := seed.NewSeeder(explorer.FolderRepository, explorer.FileRepository, logger)
		if err := seeder.Run(context.Background()); err != nil {
			logger.WithError(err).Error("seed failed")
			os.Exit(1)
		}
		return
	}

	if err := explorer.JanitorService.StartCleanCycle(); err != nil {
		logger.WithError(err).Warn("janitor disabled")
	}
	defer explorer.JanitorService.StopClean()

	app := server.NewApp(explorer)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	port := explorer.Configuration.Server.Port
	logger.WithFields(logrus.Fields{
		"port":     port,
		"database": explorer.Configuration.Database.Driver,
		"storage":  explorer.Configuration.Storage.Driver,
	}).Info("starting explorer")
	if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		logger.WithError(err).Error("failed to start server")
	}
}
