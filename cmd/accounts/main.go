package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Totarae/EazyBank/internal/client"
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

	// Инициализация конфигурации
	cfg, err := config.NewConfig("accounts", os.Args[1:], bootstrap)
	if err != nil {
		bootstrap.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log := logger.ForService(logger.New(cfg.LogLevel, cfg.LogFormat), cfg.Service)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		customers service.CustomerRepository
		accounts  service.AccountRepository
		pinger    health.Pinger
	)
	switch cfg.Mode {
	case config.ModeDatabase:
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close()

		customers = repositories.NewCustomerRepository(db.Pool)
		accounts = repositories.NewAccountRepository(db.Pool)
		pinger = db
	default:
		customers = storage.NewCustomerStore(storage.TablePath(cfg.FileStoragePath, "customers"), log)
		accounts = storage.NewAccountStore(storage.TablePath(cfg.FileStoragePath, "accounts"), log)
	}

	orchestrator := service.NewCustomerService(customers, accounts,
		client.NewLoansClient(cfg.LoansURL, cfg.DownstreamTimeout, log),
		client.NewCardsClient(cfg.CardsURL, cfg.DownstreamTimeout, log),
		log)
	h := handlers.NewAccountsHandler(service.NewAccountsService(customers, accounts, log), orchestrator, log)
	admin := handlers.NewAdminHandler(cfg.BuildVersion, cfg.Contact)

	r := router.NewRouter(cfg.Service, log, h.Register, admin.Register)

	if err := server.Run(ctx, cfg, r, pinger, log); err != nil {
		log.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}
