package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ecogood/internal/config"
	"ecogood/internal/domain/model"
	"ecogood/internal/handler"
	"ecogood/internal/infra/blob"
	"ecogood/internal/infra/db"
	infrarepo "ecogood/internal/infra/repository"
	"ecogood/internal/server"
	"ecogood/internal/usecase"
)

func main() {
	// A missing .env is fine outside dev.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.ShoppingCart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.BlogPost{},
		&model.AuditLog{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	blobStore, err := blob.NewS3BlobStore(cfg, logger)
	if err != nil {
		logger.Fatal("blob store init failed", zap.Error(err))
	}

	productRepo := infrarepo.NewProductGormRepository(gormDB)
	cartRepo := infrarepo.NewCartGormRepository(gormDB)
	cartItemRepo := infrarepo.NewCartItemGormRepository(gormDB)
	postRepo := infrarepo.NewBlogPostGormRepository(gormDB)
	userRepo := infrarepo.NewUserGormRepository(gormDB)
	auditRepo := infrarepo.NewAuditLogGormRepository(gormDB)
	txManager := infrarepo.NewTxManagerGorm(gormDB)

	productUC := usecase.NewProductUsecase(productRepo, auditRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, blobStore, logger)
	syncUC := usecase.NewAdminSyncUsecase(txManager, productRepo, postRepo, blobStore, auditRepo, logger)
	blogUC := usecase.NewBlogUsecase(postRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo)

	srv := server.New(cfg, logger, server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(orderUC),
		Admin:        handler.NewAdminHandler(orderUC, syncUC),
		Blog:         handler.NewBlogHandler(blogUC),
		Auth:         handler.NewAuthHandler(authUC),
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Info("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	if cfg.GoEnv == "dev" {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}

	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
