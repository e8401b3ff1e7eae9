package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"momentum_pos/config"
	"momentum_pos/internal/app"
	"momentum_pos/internal/database"
	"momentum_pos/internal/logger"
	"momentum_pos/internal/utility"
)

func main() {
	if err := logger.Init(nil); err != nil {
		panic("Khởi tạo logger thất bại: " + err.Error())
	}
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Đọc cấu hình thất bại")
	}

	client, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("Kết nối MongoDB thất bại")
	}

	a, err := app.New(cfg, client)
	if err != nil {
		log.WithError(err).Fatal("Khởi tạo app thất bại")
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := a.EnsureIndexes(indexCtx); err != nil {
		cancelIndex()
		log.WithError(err).Fatal("Tạo index MongoDB thất bại")
	}
	cancelIndex()

	// Server websocket realtime chạy riêng cổng với API
	realtimeMux := http.NewServeMux()
	realtimeMux.Handle("/realtime", a.Hub)
	realtimeServer := &http.Server{
		Addr:    cfg.RealtimeAddress,
		Handler: realtimeMux,
	}
	go utility.GoProtect(func() {
		log.WithFields(map[string]interface{}{"address": cfg.RealtimeAddress}).Info("Realtime server listening")
		if err := realtimeServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Realtime server dừng với lỗi")
		}
	})

	fapp := InitFiberApp(a)

	// Tắt êm khi nhận SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info("Nhận tín hiệu dừng, đang tắt server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = realtimeServer.Shutdown(shutdownCtx)
		_ = fapp.ShutdownWithContext(shutdownCtx)
		a.Close(shutdownCtx)
	}()

	log.WithFields(map[string]interface{}{"address": cfg.Address}).Info("API server listening")
	if err := fapp.Listen(cfg.Address); err != nil {
		log.WithError(err).Fatal("Fiber server dừng với lỗi")
	}
	log.Info("Server đã dừng")
}
