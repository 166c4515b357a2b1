package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasklist/internal/infrastructure/app"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	application, err := app.Init()
	if err != nil {
		fmt.Printf("app init error: %v\n", err)
		return
	}
	defer application.Close()

	go func() {
		application.Log.Info("http server started", zap.String("addr", application.HTTPServer.Addr))
		if err := application.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			application.Log.Error("http server stopped", zap.Error(err))
		}
	}()

	application.Log.Info("server is starting", zap.String("env", application.Config.Logger.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	s := <-quit
	application.Log.Info("shutting down server", zap.String("signal", s.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.HTTPServer.Shutdown(ctx); err != nil {
		application.Log.Error("graceful shutdown failed", zap.Error(err))
	}
	application.Log.Info("server stopped")
}
