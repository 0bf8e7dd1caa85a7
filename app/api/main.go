package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/database/mongoclient"
	"github.com/shery8595/fhe-auction-sub000/base/database/redisclient"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/base/metrics"
	bValidator "github.com/shery8595/fhe-auction-sub000/base/validator"
	"github.com/shery8595/fhe-auction-sub000/domain"
	mmiddleware "github.com/shery8595/fhe-auction-sub000/middleware"
	"github.com/shery8595/fhe-auction-sub000/service/attestation"
	"github.com/shery8595/fhe-auction-sub000/service/comparator"
	"github.com/shery8595/fhe-auction-sub000/service/custody"
	"github.com/shery8595/fhe-auction-sub000/service/query"
	"github.com/shery8595/fhe-auction-sub000/service/redis"
	auction_delivery "github.com/shery8595/fhe-auction-sub000/stores/auction/delivery/http"
	auction_repository "github.com/shery8595/fhe-auction-sub000/stores/auction/repository"
	auction_usecase "github.com/shery8595/fhe-auction-sub000/stores/auction/usecase"
	request_delivery "github.com/shery8595/fhe-auction-sub000/stores/auctionrequest/delivery/http"
	request_repository "github.com/shery8595/fhe-auction-sub000/stores/auctionrequest/repository"
	request_usecase "github.com/shery8595/fhe-auction-sub000/stores/auctionrequest/usecase"
	auth_delivery "github.com/shery8595/fhe-auction-sub000/stores/auth/delivery/http"
	auth_middleware "github.com/shery8595/fhe-auction-sub000/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/shery8595/fhe-auction-sub000/stores/auth/usecase"
	hc_delivery "github.com/shery8595/fhe-auction-sub000/stores/healthcheck/delivery/http"
	hc_repo "github.com/shery8595/fhe-auction-sub000/stores/healthcheck/repository"
	hc_usecase "github.com/shery8595/fhe-auction-sub000/stores/healthcheck/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	httpTimeout := viper.GetDuration("http.timeout")
	custodyClient := custody.NewClient(&custody.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("custody.endpoint"),
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("custody.apikey"),
	})
	comparatorClient := comparator.NewClient(&comparator.ClientCfg{
		HttpClient: http.Client{},
		Endpoint:   viper.GetString("comparator.endpoint"),
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("comparator.apikey"),
	})

	trustedSigners := []domain.Address{}
	for _, s := range viper.GetStringSlice("comparator.trustedSigners") {
		trustedSigners = append(trustedSigners, domain.Address(s))
	}
	verifier := attestation.NewVerifier(&attestation.VerifierCfg{
		TrustedSigners: trustedSigners,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)
	eventRepo := auction_repository.NewEventRepo(q)
	requestRepo := request_repository.NewRequestRepo(q)
	registeredRepo := request_repository.NewRegisteredRepo(q)

	hc := hc_usecase.New(hcRepo)
	emitter := auction_usecase.NewEmitter(eventRepo)
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		BidRepo:     bidRepo,
		EventRepo:   eventRepo,
		Custody:     custodyClient,
		Comparator:  comparatorClient,
		Verifier:    verifier,
		Emitter:     emitter,
	})
	requestUC := request_usecase.New(&request_usecase.RequestUseCaseCfg{
		RequestRepo:    requestRepo,
		RegisteredRepo: registeredRepo,
		AuctionUC:      auctionUC,
		Custody:        custodyClient,
	})
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		Redis:              redisCache,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, auctionUC, authMiddleware)
	request_delivery.New(e, requestUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
