package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/Totarae/EazyBank/internal/database"
	"github.com/Totarae/EazyBank/internal/grpc/health"
	"github.com/Totarae/EazyBank/internal/handlers"
	"github.com/Totarae/EazyBank/internal/logger"
	"github.com/Totarae/EazyBank/internal/repositories"
	"github.com/Totarae/EazyBank/internal/router"
	"github.com/Totarae/EazyBank/internal/server"
	"github.com/Totarae/EazyBank/internal/service"
	"github.com/Totarae/EazyBank/internal/storage"
	"go.uber.org/zap"
)

func main() {
	bootstrap, _ := zap.NewProduction()

	cfg, err := config.NewConfig("loans", os.Args[1:], bootstrap)
	if err != nil {
		bootstrap.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log := logger.ForService(logger.New(cfg.LogLevel, cfg.LogFormat), cfg.Service)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		repo   service.LoanRepository
		pinger health.Pinger
	)
	switch cfg.Mode {
	case config.ModeDatabase:
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close()

		repo = repositories.NewLoanRepository(db.Pool)
		pinger = db
	default:
		repo = storage.NewLoanStore(cfg.FileStoragePath, log)
	}

	h := handlers.NewLoansHandler(service.NewLoansService(repo, log), log)
	admin := handlers.NewAdminHandler(cfg.BuildVersion, cfg.Contact)

	r := router.NewRouter(cfg.Service, log, h.Register, admin.Register)

	if err := server.Run(ctx, cfg, r, pinger, log); err != nil {
		log.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}
