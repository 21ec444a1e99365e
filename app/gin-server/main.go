package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/admissions/config"
	"github.com/yoockh/admissions/internal/api/handlers"
	"github.com/yoockh/admissions/internal/api/middleware"
	"github.com/yoockh/admissions/internal/api/routes"
	"github.com/yoockh/admissions/internal/cache"
	"github.com/yoockh/admissions/internal/logger"
	mongorepo "github.com/yoockh/admissions/internal/repositories/mongo"
	pgrepo "github.com/yoockh/admissions/internal/repositories/postgres"
	"github.com/yoockh/admissions/internal/services"
	"github.com/yoockh/admissions/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("database init error")
	}
	log.WithField("driver", cfg.DBDriver).Info("database connected")

	var urlCache cache.Cache
	rdb, err := config.NewRedis(ctx, cfg)
	switch {
	case err != nil:
		log.WithError(err).Warn("redis unavailable, signed urls will not be cached")
	case rdb != nil:
		defer rdb.Close()
		urlCache = cache.NewRedisCache(rdb, "admissions:")
		log.Info("redis connected")
	}

	var events mongorepo.EventRepository
	mc, mdb, err := config.NewMongo(ctx, cfg)
	switch {
	case err != nil:
		log.WithError(err).Warn("mongodb unavailable, intake audit trail disabled")
	case mdb != nil:
		defer mc.Disconnect(context.Background())
		if err := config.EnsureMongoIndexes(ctx, mdb); err != nil {
			log.WithError(err).Warn("mongodb index setup failed")
		}
		events = mongorepo.NewEventRepo(mdb)
		log.Info("mongodb connected")
	}

	gcs, err := storage.NewGCSStore(ctx, storage.GCSOptions{
		CredentialsFile: cfg.GCSCredentialsFile,
		PublicBaseURL:   cfg.StoragePublicBaseURL,
	})
	if err != nil {
		log.WithError(err).Fatal("object storage init error")
	}
	defer gcs.Close()

	audit := services.NewAuditService(events, log)
	appSvc := services.NewApplicationService(pgrepo.NewApplicationRepo(db), audit)
	fileSvc := services.NewFileService(pgrepo.NewApplicationFileRepo(db), audit)
	urlSvc := services.NewURLService(gcs, urlCache, log)
	uploadSvc := services.NewUploadService(gcs, cfg.UploadBucket)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, routes.Deps{
		Applications: handlers.NewApplicationHandler(appSvc, audit),
		Files:        handlers.NewFileHandler(fileSvc),
		Storage:      handlers.NewStorageHandler(urlSvc, uploadSvc),
		JWT: middleware.JWTConfig{
			Secret:   cfg.JWTSecret,
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server error")
		}
	}()

	<-ctx.Done()
	shutdown(srv, log)
}

func shutdown(srv *http.Server, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}
	log.Info("http server stopped")
}
