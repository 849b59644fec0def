package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Fahiz07/Travel-Tracker/internal/config"
	apphttp "github.com/Fahiz07/Travel-Tracker/internal/http"
	"github.com/Fahiz07/Travel-Tracker/internal/repository/sqlite"
	"github.com/Fahiz07/Travel-Tracker/internal/service"
	"github.com/Fahiz07/Travel-Tracker/internal/session"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	secret := strings.TrimSpace(cfg.Session.Secret)
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			logger.Fatalf("generate session secret: %v", err)
		}
		logger.Warn("session secret not configured, sessions will reset on restart")
	}

	sessions, err := session.NewManager(secret, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	if err != nil {
		logger.Fatalf("session manager: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	stateRepo := sqlite.NewStateRepository(db)
	visitRepo := sqlite.NewVisitRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := stateRepo.Init(ctx); err != nil {
		logger.Fatalf("init state repository: %v", err)
	}
	if err := visitRepo.Init(ctx); err != nil {
		logger.Fatalf("init visit repository: %v", err)
	}

	travel := service.NewTravelService(userRepo, stateRepo, visitRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(apphttp.RequestLogger(logger))
	router.LoadHTMLGlob(cfg.Web.TemplateGlob)
	router.Static("/static", cfg.Web.StaticDir)

	handler := apphttp.NewHandler(travel, sessions, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
