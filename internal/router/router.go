package router

import (
	"time"

	"absign/config"
	"absign/internal/domain"
	"absign/internal/handler"
	"absign/internal/middleware"
	"absign/internal/repository"
	"absign/internal/service"
	"absign/pkg/cloudinary"
	"absign/pkg/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, provider payment.Provider, mail service.MailTransport, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.Origins) == 1 && cfg.CORS.Origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Repositories
	txRepo := repository.NewTransactionRepository(db)
	eventRepo := repository.NewWebhookEventRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	contentRepo := repository.NewContentRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	emailSvc := service.NewEmailService(mail, cfg.Mail.NotificationEmail)
	checkoutSvc := service.NewCheckoutService(provider, txRepo, eventRepo, emailSvc, cfg.Store.Currency)
	authSvc := service.NewAuthService(cfg, adminRepo)

	// Handlers
	paymentHandler := handler.NewPaymentHandler(checkoutSvc, txRepo)
	webhookHandler := handler.NewStripeWebhookHandler(checkoutSvc)
	orderHandler := handler.NewOrderHandler(orderRepo, emailSvc)
	contactHandler := handler.NewContactHandler(contactRepo, emailSvc)
	reviewHandler := handler.NewReviewHandler(reviewRepo)
	newsletterHandler := handler.NewNewsletterHandler(newsletterRepo)
	contentHandler := handler.NewContentHandler(contentRepo)
	statusHandler := handler.NewStatusHandler(statusRepo)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	adminMw := []gin.HandlerFunc{
		middleware.AuthRequired(&cfg.JWT),
		middleware.RequireRole(domain.RoleAdmin),
	}

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Hello World"})
		})

		payments := api.Group("/payments")
		{
			payments.POST("/create-checkout-session", paymentHandler.CreateCheckoutSession)
			payments.GET("/checkout-status/:session_id", paymentHandler.GetCheckoutStatus)
			payments.POST("/webhook", webhookHandler.Handle)
			payments.GET("/order/:session_id", paymentHandler.GetOrder)
		}

		api.POST("/orders/notify", orderHandler.Notify)
		api.GET("/orders/:order_id", orderHandler.Get)

		api.POST("/contact", contactHandler.Submit)

		api.POST("/reviews", reviewHandler.Create)
		api.GET("/reviews/:product_id", reviewHandler.ListByProduct)

		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

		api.GET("/content", contentHandler.List)
		api.GET("/content/:section_id", contentHandler.Get)
		api.POST("/content/:section_id", append(adminMw, contentHandler.Save)...)

		api.POST("/status", statusHandler.Create)
		api.GET("/status", statusHandler.List)

		api.POST("/uploads/review-photo", uploadHandler.UploadReviewPhoto)

		api.POST("/admin/login", authHandler.Login)
		admin := api.Group("/admin", adminMw...)
		{
			admin.GET("/reviews/pending", reviewHandler.ListPending)
			admin.PUT("/reviews/:id/approve", reviewHandler.Approve)
		}
	}

	return r
}
