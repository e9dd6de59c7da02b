package bootstrap

import (
	"context"
	"log"

	"pet-house-be/internal/config"
	"pet-house-be/internal/controller"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/mailer"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/memory"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/internal/service"
	"pet-house-be/pkg/activity"
	"pet-house-be/pkg/adoption"
	"pet-house-be/pkg/admin/user"
	"pet-house-be/pkg/cache"
	"pet-house-be/pkg/donation/history"
	"pet-house-be/pkg/donation/progress"
	"pet-house-be/pkg/donation/refund"
	"pet-house-be/pkg/events"
	pktNats "pet-house-be/pkg/nats"
	"pet-house-be/pkg/payment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController      controller.IAuthController
	AdminController     controller.IAdminController
	PetController       controller.IPetController
	AdoptionController  controller.IAdoptionController
	CampaignController  controller.ICampaignController
	DonationController  controller.IDonationController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService      service.IConsumerService
	ActivityAuditService *service.ActivityAuditService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.Payment.FrontendURL,
		sysLogger,
	)

	// 2. In-process bus for pet image cleanup
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS is optional: without it activity events are dropped and the audit trail is off.
	var bus events.Bus
	natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		bus = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	var auditSubscriber service.EventSubscriber
	natsSub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		auditSubscriber = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Cache.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	roleCache := memory.NewRoleCache(cfg.Auth.RoleCacheTTL)
	historyCache := cache.NewRedisHistoryCache(rdb, cfg.Cache.HistoryTTL, sysLogger)

	gateway := payment.NewMidtransGateway(
		cfg.Payment.MidtransServerKey,
		cfg.Payment.MidtransIsProduction,
		cfg.Payment.FrontendURL,
		sysLogger,
	)

	// 4. Domain Components
	activityPublisher := activity.NewBusPublisher(bus, sysLogger)
	progressAggregator := progress.NewAggregator(sysLogger)
	historyBuilder := history.NewBuilder(sysLogger, historyCache)
	refundProcessor := refund.NewProcessor(sysLogger, gateway, activityPublisher, historyBuilder)
	adoptionResolver := adoption.NewResolver(sysLogger, activityPublisher, emailService)
	userManager := user.NewManager(sysLogger, roleCache)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Events.PetCleanupTopic, pubSub)
	c.ConsumerService = service.NewImageCleanupService(
		pubSub,
		cfg.Events.PetCleanupTopic,
		nil,
		cfg.Events.ImageCleanupHTTPS,
		sysLogger,
	)
	c.ActivityAuditService = service.NewActivityAuditService(auditSubscriber, sysLogger)

	authService := service.NewAuthService(uowFactory, roleCache, activityPublisher, sysLogger, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	adminService := service.NewAdminService(uowFactory, sysLogger, userManager, progressAggregator, historyBuilder)
	petService := service.NewPetService(uowFactory, publisherService, sysLogger)
	adoptionService := service.NewAdoptionService(uowFactory, adoptionResolver, sysLogger)
	campaignService := service.NewCampaignService(uowFactory, progressAggregator, sysLogger)
	donationService := service.NewDonationService(uowFactory, gateway, refundProcessor, historyBuilder, activityPublisher, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, historyBuilder)

	// 6. Controllers
	auth := serverutils.NewAuthMiddleware(cfg.Auth.JwtSecret, cfg.Auth.CookieName, authService)

	c.AuthController = controller.NewAuthController(authService, auth, cfg.Auth)
	c.AdminController = controller.NewAdminController(adminService, auth)
	c.PetController = controller.NewPetController(petService, auth)
	c.AdoptionController = controller.NewAdoptionController(adoptionService, auth)
	c.CampaignController = controller.NewCampaignController(campaignService, auth)
	c.DonationController = controller.NewDonationController(donationService, auth)
	c.DashboardController = controller.NewDashboardController(dashboardService, auth)

	return c
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
