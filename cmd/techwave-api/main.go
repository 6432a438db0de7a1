package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/techwavehq/techwave-api/internal/auth"
	"github.com/techwavehq/techwave-api/internal/config"
	"github.com/techwavehq/techwave-api/internal/handler"
	"github.com/techwavehq/techwave-api/internal/middleware"
	"github.com/techwavehq/techwave-api/internal/payment"
	"github.com/techwavehq/techwave-api/internal/repository"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := client.Ping(startupCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.Mongo.Database)

	// Repositories; index creation happens here.
	userRepo := repository.NewUserMongoRepository(startupCtx, &logger, db)
	productRepo := repository.NewProductMongoRepository(db)
	upVoteRepo := repository.NewVoteMongoRepository(startupCtx, &logger, db, "upvotes")
	downVoteRepo := repository.NewVoteMongoRepository(startupCtx, &logger, db, "downvotes")
	featureRepo := repository.NewFeatureMongoRepository(db)
	reviewRepo := repository.NewReviewMongoRepository(db)
	reportRepo := repository.NewReportMongoRepository(db)
	couponRepo := repository.NewCouponMongoRepository(db)
	paymentRepo := repository.NewPaymentMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer, cfg.Token.AccessTokenSecret)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)

	authUsecase := usecase.NewAuthUsecase(jwtAuth, &cfg.Token)
	userUsecase := usecase.NewUserUsecase(userRepo)
	productUsecase := usecase.NewProductUsecase(productRepo)
	voteUsecase := usecase.NewVoteUsecase(upVoteRepo, downVoteRepo)
	featureUsecase := usecase.NewFeatureUsecase(featureRepo)
	reviewUsecase := usecase.NewReviewUsecase(reviewRepo)
	reportUsecase := usecase.NewReportUsecase(reportRepo)
	couponUsecase := usecase.NewCouponUsecase(couponRepo)
	paymentUsecase := usecase.NewPaymentUsecase(gateway, paymentRepo, cfg.Stripe.Currency)
	statsUsecase := usecase.NewStatsUsecase(userRepo, productRepo, reviewRepo)

	validator := handler.NewPayloadValidator()
	authenticator := middleware.NewAuthenticator(jwtAuth, userRepo, &logger)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:         &logger,
		Authenticator:  authenticator,
		AllowedOrigins: cfg.AllowedOrigins,

		Auth:     handler.NewAuthHandler(authUsecase, validator, &logger),
		Users:    handler.NewUserHandler(userUsecase, validator, &logger),
		Products: handler.NewProductHandler(productUsecase, &logger),
		Votes:    handler.NewVoteHandler(voteUsecase, &logger),
		Features: handler.NewFeatureHandler(featureUsecase, &logger),
		Reviews:  handler.NewReviewHandler(reviewUsecase, &logger),
		Reports:  handler.NewReportHandler(reportUsecase, &logger),
		Coupons:  handler.NewCouponHandler(couponUsecase, &logger),
		Payments: handler.NewPaymentHandler(paymentUsecase, validator, &logger),
		Stats:    handler.NewStatsHandler(statsUsecase, &logger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("techwave-api listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
