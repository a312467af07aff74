// Package server запускает HTTP(S)-сервер сервиса и, если задан адрес,
// gRPC health рядом с ним; останавливает оба по отмене контекста.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/Totarae/EazyBank/internal/grpc/health"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	pingInterval    = 15 * time.Second
)

// Run обслуживает handler до отмены ctx. pinger передаётся в gRPC health (может быть nil).
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, pinger health.Pinger, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPCAddress, err)
		}
		hs := health.NewServer(cfg.Service, pinger, pingInterval, logger)
		go func() {
			if err := hs.Serve(ctx, lis); err != nil {
				errCh <- fmt.Errorf("gRPC: %w", err)
			}
		}()
	}

	go func() {
		var err error
		if cfg.EnableHTTPS {
			logger.Info("Сервер запущен (HTTPS)", zap.String("address", cfg.ServerAddress))
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Остановка сервера")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
