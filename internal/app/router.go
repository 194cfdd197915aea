package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salonbooking/internal/config"
	"salonbooking/internal/domain/appointment"
	"salonbooking/internal/domain/auth"
	"salonbooking/internal/domain/business"
	"salonbooking/internal/domain/catalog"
	"salonbooking/internal/domain/customer"
	"salonbooking/internal/domain/notification"
	"salonbooking/internal/metrics"
	"salonbooking/internal/middleware"
	"salonbooking/internal/pkg/jwt"
	"salonbooking/internal/pkg/response"
)

// Channels are the optional outbound notification integrations.
type Channels struct {
	Email  notification.EmailSender
	SMS    notification.SMSSender
	Events notification.EventPublisher
}

type RouterOptions struct {
	Channels  Channels
	RateLimit gin.HandlerFunc
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

// Router is the assembled HTTP surface plus the pieces the process
// lifecycle needs to start and stop.
type Router struct {
	Engine        *gin.Engine
	Metrics       *metrics.Metrics
	Hub           *notification.Hub
	Notifications *notification.Repository
}

func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger, opts RouterOptions) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	businessRepo := business.NewRepository(db)
	customerRepo := customer.NewRepository(db)
	serviceRepo := catalog.NewServiceRepository(db)
	stylistRepo := catalog.NewStylistRepository(db)
	appointmentRepo := appointment.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	hub := notification.NewHub()
	dispatchOpts := []notification.DispatcherOption{
		notification.WithBroadcaster(hub),
		notification.WithMetrics(m),
		notification.WithTimeout(cfg.NotifyTimeout),
	}
	if opts.Channels.Email != nil {
		dispatchOpts = append(dispatchOpts, notification.WithEmail(opts.Channels.Email))
	}
	if opts.Channels.SMS != nil {
		dispatchOpts = append(dispatchOpts, notification.WithSMS(opts.Channels.SMS))
	}
	if opts.Channels.Events != nil {
		dispatchOpts = append(dispatchOpts, notification.WithEvents(opts.Channels.Events))
	}
	dispatcher := notification.NewDispatcher(
		notificationRepo,
		notification.NewTemplates(cfg.Location),
		log.Named("notify"),
		dispatchOpts...,
	)

	businessService := business.NewService(businessRepo, serviceRepo, log.Named("business"))
	catalogService := catalog.NewService(serviceRepo, stylistRepo, businessRepo)
	authService := auth.NewService(businessService, customerRepo, tokens, log.Named("auth"))

	validator := appointment.NewBookingValidator(businessRepo, customerRepo, serviceRepo, stylistRepo, cfg.Location)
	apptOpts := []appointment.Option{appointment.WithMetrics(m)}
	if opts.Now != nil {
		apptOpts = append(apptOpts, appointment.WithClock(opts.Now))
	}
	appointmentService := appointment.NewService(appointmentRepo, validator, dispatcher, log.Named("appointments"), cfg.Location, apptOpts...)
	notificationService := notification.NewService(notificationRepo, appointmentRepo, dispatcher, log.Named("inbox"))

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log.Named("http")),
		m.Middleware(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Identify(tokens))
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	{
		api.Any("/health", health)

		business.NewHandler(businessService, cfg.PublicBaseURL).RegisterRoutes(api)
		catalog.NewHandler(catalogService).RegisterRoutes(api)
		auth.NewHandler(authService).RegisterRoutes(api)
		appointment.NewHandler(appointmentService).RegisterRoutes(api)
		notification.NewHandler(notificationService, hub, tokens, cfg.CORSAllowedOrigins).RegisterRoutes(api)
	}

	return &Router{
		Engine:        r,
		Metrics:       m,
		Hub:           hub,
		Notifications: notificationRepo,
	}
}

func health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"message":   "API is working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"method":    c.Request.Method,
	})
}
