package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/augustolallana/api-omega/configs"
	"github.com/augustolallana/api-omega/internal/adapter/cache"
	"github.com/augustolallana/api-omega/internal/adapter/http"
	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/logging"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	base := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// init database
	db, err := repo.Open(cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, nil, err
	}
	if cfg.Postgres.AutoMigrate {
		if err := repo.Migrate(db); err != nil {
			return nil, nil, err
		}
	}

	base.Info("api-omega: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// infra
	store := repo.NewStore(db)
	idem := cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)

	// usecases
	tree := usecase.NewCategoryTree(store)
	cartUC := usecase.NewCart(store)
	checkoutUC := usecase.NewCheckout(store, idem)

	// handlers + middleware + router
	h := http.Handlers{
		Auth:           http.NewAuthHandler(cfg, repo.NewUserRepo(db)),
		Categories:     http.NewCategoryHandler(tree, repo.NewCategoryRepo(db)),
		Products:       http.NewProductHandler(repo.NewProductRepo(db)),
		Brands:         http.NewBrandHandler(repo.NewBrandRepo(db)),
		Tags:           http.NewTagHandler(repo.NewTagRepo(db)),
		Promotions:     http.NewPromotionHandler(repo.NewPromotionRepo(db)),
		Images:         http.NewImageHandler(repo.NewImageRepo(db)),
		Cart:           http.NewCartHandler(cartUC),
		Orders:         http.NewOrderHandler(checkoutUC, repo.NewOrderRepo(db)),
		Addresses:      http.NewAddressHandler(repo.NewAddressRepo(db)),
		PaymentMethods: http.NewPaymentMethodHandler(repo.NewPaymentMethodRepo(db)),
	}
	authz := middleware.NewAuthz(cfg)
	router := http.NewRouter(h, authz, logging.New("http"))

	cleanup := func() {
		_ = sqlDB.Close()
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}
