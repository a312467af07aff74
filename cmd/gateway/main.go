package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/Totarae/EazyBank/internal/gateway"
	"github.com/Totarae/EazyBank/internal/logger"
	"github.com/Totarae/EazyBank/internal/router"
	"github.com/Totarae/EazyBank/internal/server"
	"go.uber.org/zap"
)

func main() {
	bootstrap, _ := zap.NewProduction()

	cfg, err := config.NewConfig("gateway", os.Args[1:], bootstrap)
	if err != nil {
		bootstrap.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log := logger.ForService(logger.New(cfg.LogLevel, cfg.LogFormat), cfg.Service)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routes, err := gateway.DefaultRoutes(cfg.AccountsURL, cfg.LoansURL, cfg.CardsURL)
	if err != nil {
		log.Fatal("Ошибка таблицы маршрутов", zap.Error(err))
	}
	for _, rt := range routes {
		log.Info("Маршрут", zap.String("prefix", rt.Prefix), zap.String("target", rt.Target.String()))
	}

	r := router.NewGatewayRouter(log, gateway.New(routes, cfg.DownstreamTimeout, log))

	if err := server.Run(ctx, cfg, r, nil, log); err != nil {
		log.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}
