package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/classifier"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/config"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/notify"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/repository"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Log.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting GoldenHour AI server...")

	if cfg.Database.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
			logger.Fatal("Failed to create data directory", zap.Error(err))
		}
	}

	db, err := repository.NewDB(cfg.Database.Type, cfg.Database.Path, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.MigrateDB(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions := repository.NewSessionRepository(db, logger)
	go sessions.RunJanitor(ctx, cfg.Session.TTL, cfg.Session.PurgeInterval)

	notifiers := []notify.Notifier{notify.NewLogNotifier(logger)}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
		}
		notifiers = append(notifiers, tg)
	}
	if cfg.Kafka.Enabled {
		kn := notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Timeout, logger)
		defer kn.Close()
		notifiers = append(notifiers, kn)
	}

	srv, err := server.NewServer(cfg, server.Deps{
		Sessions:   sessions,
		Users:      repository.NewUserRepository(db, logger),
		Notifier:   notify.NewMulti(logger, notifiers...),
		Classifier: classifier.New(classifier.DefaultSource()),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("GoldenHour AI is running",
		zap.String("port", cfg.Server.Port),
		zap.String("database", cfg.Database.Type),
		zap.Int("notifiers", len(notifiers)))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
