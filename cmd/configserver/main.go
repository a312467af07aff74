package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/Totarae/EazyBank/internal/configserver"
	"github.com/Totarae/EazyBank/internal/handlers"
	"github.com/Totarae/EazyBank/internal/logger"
	"github.com/Totarae/EazyBank/internal/router"
	"github.com/Totarae/EazyBank/internal/server"
	"go.uber.org/zap"
)

func main() {
	bootstrap, _ := zap.NewProduction()

	cfg, err := config.NewConfig("configserver", os.Args[1:], bootstrap)
	if err != nil {
		bootstrap.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log := logger.ForService(logger.New(cfg.LogLevel, cfg.LogFormat), cfg.Service)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	admin := handlers.NewAdminHandler(cfg.BuildVersion, cfg.Contact)
	r := router.NewRouter(cfg.Service, log, admin.Register)
	handlers.NewConfigServerHandler(configserver.NewRepository(cfg.ConfigDir, log), log).Register(r)

	log.Info("Каталог конфигураций", zap.String("dir", cfg.ConfigDir))
	if err := server.Run(ctx, cfg, r, nil, log); err != nil {
		log.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}
