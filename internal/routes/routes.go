package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendabarber/booking-api/internal/audit"
	"github.com/agendabarber/booking-api/internal/cache"
	"github.com/agendabarber/booking-api/internal/config"
	"github.com/agendabarber/booking-api/internal/handlers"
	infraRepo "github.com/agendabarber/booking-api/internal/infra/repository"
	"github.com/agendabarber/booking-api/internal/metrics"
	"github.com/agendabarber/booking-api/internal/middleware"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/payments"
	"github.com/agendabarber/booking-api/internal/reminder"
	ucAppointment "github.com/agendabarber/booking-api/internal/usecase/appointment"
	ucPayment "github.com/agendabarber/booking-api/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Cache de disponibilidade — nil quando REDIS_ADDR está vazio.
	availabilityCache := cache.NewAvailability(cfg.RedisAddr)

	var sender notification.Sender = notification.LogSender{}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		sender = notification.NewWhatsAppSender(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioWhatsAppNumber,
		)
	}
	notifier := notification.NewDispatcher(sender)

	// Provider de pagamento — nil desliga o webhook (503).
	var provider payments.Provider
	if cfg.MPAccessToken != "" {
		if mp, err := payments.NewMercadoPago(cfg.MPAccessToken); err == nil {
			provider = mp
		}
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(repo, availabilityCache)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		repo,
		auditDispatcher,
		availabilityCache,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		repo,
		auditDispatcher,
		notifier,
		availabilityCache,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		repo,
		auditDispatcher,
		availabilityCache,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(repo)

	applyPaymentUC := ucPayment.NewApplyPaymentEvent(
		repo,
		auditDispatcher,
		notifier,
		availabilityCache,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db, repo)
	scheduleHandler := handlers.NewScheduleHandler(repo)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		rescheduleUC,
		listAppointmentsByDateUC,
	)

	webhookHandler := handlers.NewWebhookHandler(provider, applyPaymentUC)

	// ======================================================
	// ⏰ LEMBRETES
	// ======================================================
	if cfg.RemindersEnabled {
		reminder.New(repo, notifier).Start()
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.ListPublic)

			publicAPI.GET("/availability", availabilityHandler.Get)
			publicAPI.GET("/availability/check", availabilityHandler.CheckSlot)

			publicAPI.POST("/customers", customerHandler.Resolve)

			publicAPI.POST("/appointments", appointmentHandler.Create)
			publicAPI.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		}

		// ------------------------------
		// 💳 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/payment", webhookHandler.HandlePayment)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/customers", customerHandler.List)

			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
		}
	}
}
