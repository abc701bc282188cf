package cmd

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	portalhttp "nexye/internal/adapters/in/http"
	"nexye/internal/adapters/out/mail"
	"nexye/internal/adapters/out/postal"
	"nexye/internal/adapters/out/postgres/orderrepo"
	redisadapter "nexye/internal/adapters/out/redis"
	"nexye/internal/adapters/out/shiprocket"
	"nexye/internal/core/application/usecases/commands"
	"nexye/internal/core/application/usecases/queries"
	"nexye/internal/core/domain/services"
	"nexye/internal/jobs"
	"nexye/internal/pkg/session"
)

// CompositionRoot wires the adapters to the use cases. All outbound
// dependencies are constructed once and shared.
type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	tokenCache *shiprocket.TokenCache
	gateway    *shiprocket.Gateway
	resolver   *postal.Resolver
	orders     *orderrepo.GormOrderRepository
	otpStore   *redisadapter.OTPStore
	mailer     *mail.LoggingMailer
	sessions   *session.Manager
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *goredis.Client) CompositionRoot {
	logger := slog.Default()

	client := shiprocket.NewClient(shiprocket.Config{
		BaseURL:  configs.ShiprocketBaseURL,
		Email:    configs.ShiprocketEmail,
		Password: configs.ShiprocketPassword,
	})
	tokenCache := shiprocket.NewTokenCache(
		shiprocket.NewFileTokenStore(configs.TokenFile), client.Login)

	return CompositionRoot{
		gormDB: gormDB,
		logger: logger,

		tokenCache: tokenCache,
		gateway:    shiprocket.NewGateway(client, tokenCache),
		resolver: postal.NewResolver([]postal.Provider{
			postal.NewPostalPincodeProvider(""),
			postal.NewZippopotamProvider(""),
		}, logger),
		orders:   orderrepo.NewGormOrderRepository(gormDB),
		otpStore: redisadapter.NewOTPStore(redisClient),
		mailer:   mail.NewLoggingMailer(logger),
		sessions: session.NewManager(configs.SessionSecret),
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.resolver, c.tokenCache, c.gateway, c.orders, c.logger)
}

func (c *CompositionRoot) CreateSendOtpCommandHandler() commands.SendOtpCommandHandler {
	return commands.NewSendOtpCommandHandler(c.otpStore, c.mailer)
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	return commands.NewVerifyOtpCommandHandler(c.otpStore, c.sessions)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPriceQueryHandler() queries.GetPriceQueryHandler {
	return queries.NewGetPriceQueryHandler(services.NewPriceCalculator())
}

func (c *CompositionRoot) CreateListPickupLocationsQueryHandler() queries.ListPickupLocationsQueryHandler {
	return queries.NewListPickupLocationsQueryHandler(c.gateway)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *portalhttp.Server {
	return portalhttp.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateSendOtpCommandHandler(),
		c.CreateVerifyOtpCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetPriceQueryHandler(),
		c.CreateListPickupLocationsQueryHandler(),
		c.sessions,
	)
}

// CreateTokenWarmupJob assembles the background token refresher.
func (c *CompositionRoot) CreateTokenWarmupJob() *jobs.TokenWarmupJob {
	return jobs.NewTokenWarmupJob(c.tokenCache, c.logger)
}
