package main

import (
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger settings come from config, so fall back to logrus defaults here.
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":    cfg.LogLevel,
		"environment":  cfg.Environment,
		"retry_period": cfg.RetryPeriod.String(),
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, cfg.HTTPTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	sender := telegram.NewTelebotAdapter(bot)

	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	notifier := app.NewNotifier(sender, cfg.TelegramChatID, logrus.NewEntry(log))
	statusService := app.NewStatusService(apiClient, notifier, logrus.NewEntry(log))

	pollScheduler := scheduler.NewPollScheduler(statusService, logrus.NewEntry(log), cfg.RetryPeriod)
	pollScheduler.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down...")
	pollScheduler.Stop()
	mainLogger.Info("Shut down gracefully.")
}
