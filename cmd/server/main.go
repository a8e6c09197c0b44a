package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/rental_shop/internal/config"
	"github.com/Skotchmaster/rental_shop/internal/db"
	"github.com/Skotchmaster/rental_shop/internal/events"
	"github.com/Skotchmaster/rental_shop/internal/filestore"
	"github.com/Skotchmaster/rental_shop/internal/httpserver"
	"github.com/Skotchmaster/rental_shop/internal/logging"
	loggingmw "github.com/Skotchmaster/rental_shop/internal/middleware/logging"
	"github.com/Skotchmaster/rental_shop/internal/repo"
	"github.com/Skotchmaster/rental_shop/internal/search"
	"github.com/Skotchmaster/rental_shop/internal/service"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFile).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err == nil {
		err = db.Migrate(ctx, gdb)
	}
	if err == nil {
		err = db.SeedRoles(ctx, gdb)
	}
	cancel()
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	files, err := filestore.New(cfg.ImageDir)
	if err != nil {
		log.Fatalf("filestore: %v", err)
	}

	publisher := events.FromBrokers(cfg.KafkaBrokers)

	r := repo.New(gdb)
	productSvc := &service.ProductService{Repo: r, Files: files, Events: publisher}
	if cfg.ESURL != "" {
		esCtx, esCancel := context.WithTimeout(context.Background(), 10*time.Second)
		idx, err := search.New(esCtx, search.Config{
			URL:      cfg.ESURL,
			User:     cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		esCancel()
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		productSvc.Index = idx
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dB", cfg.MaxUploadBytes)))
	e.Pre(echomw.RemoveTrailingSlash())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: productSvc},
		UserHandler: &httpserver.UserHTTP{Svc: &service.UserService{
			Repo:      r,
			Events:    publisher,
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
		}},
		RoleHandler:    &httpserver.RoleHTTP{Svc: &service.RoleService{Repo: r, Events: publisher}},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Events: publisher}},
		PaymentHandler: &httpserver.PaymentHTTP{Svc: &service.PaymentService{Repo: r, Events: publisher}},
		JWTSecret:      cfg.JWTSecret,
		ImageDir:       cfg.ImageDir,
		DB:             gdb,
		SearchEnabled:  productSvc.Index != nil,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("close publisher", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("close db", "error", err)
	}

	logger.Info("stopped")
}
