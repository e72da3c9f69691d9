package routes

import (
	"net/http"
	"time"

	"greencouncil-api/config"
	authapi "greencouncil-api/internal/api/auth"
	billingapi "greencouncil-api/internal/api/billing"
	blogapi "greencouncil-api/internal/api/blog"
	eventsapi "greencouncil-api/internal/api/events"
	membersapi "greencouncil-api/internal/api/members"
	resourcesapi "greencouncil-api/internal/api/resources"
	stripewebhooks "greencouncil-api/internal/api/stripewebhook"
	"greencouncil-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, startedAt time.Time) {
	blogH := blogapi.NewHandler(db)
	eventsH := eventsapi.NewHandler(db)
	resourcesH := resourcesapi.NewHandler(db)
	membersH := membersapi.NewHandler(db)
	authH := authapi.NewHandler(db)
	billingH := billingapi.NewHandler(db)
	webhookH := stripewebhooks.NewHandler(db)

	r.POST("/webhook", webhookH.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"uptime":      time.Since(startedAt).String(),
			"environment": config.APP_ENV,
		})
	})

	api := r.Group("/api")

	// Public reads
	api.GET("/blog", blogH.List)
	api.GET("/blog/meta/categories", blogH.Categories)
	api.GET("/blog/meta/tags", blogH.Tags)
	api.GET("/blog/:slug", blogH.Get)
	api.POST("/blog/:slug/like", blogH.Like)

	api.GET("/events", eventsH.List)
	api.GET("/events/:slug", eventsH.Get)

	api.GET("/resources", resourcesH.List)
	api.GET("/resources/:slug", resourcesH.Get)

	// Public writes (signup forms) go through the input sanitizer
	public := api.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/members", membersH.Create)
	public.POST("/membership/checkout", billingH.CreateDuesCheckout)
	public.POST("/auth/register", authH.Register)
	public.POST("/auth/login", authH.Login)

	api.GET("/auth/verify", authH.VerifyEmail)
	api.GET("/auth/google", authH.GoogleStart)
	api.GET("/auth/google/callback", authH.GoogleCallback)

	// Content management requires a staff token
	staff := api.Group("/")
	staff.Use(middleware.AuthMiddleware())
	staff.POST("/auth/change-password", authH.ChangePassword)

	staff.POST("/blog", blogH.Create)
	staff.PUT("/blog/:slug", blogH.Update)
	staff.DELETE("/blog/:slug", blogH.Delete)

	staff.POST("/events", eventsH.Create)
	staff.PUT("/events/:slug", eventsH.Update)
	staff.DELETE("/events/:slug", eventsH.Delete)

	staff.POST("/resources", resourcesH.Create)
	staff.PUT("/resources/:slug", resourcesH.Update)
	staff.DELETE("/resources/:slug", resourcesH.Delete)

	// Member administration is admin-only
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/members", membersH.List)
	admin.GET("/members/stats/summary", membersH.Stats)
	admin.GET("/members/:id", membersH.Get)
	admin.PUT("/members/:id", membersH.Update)
	admin.DELETE("/members/:id", membersH.Delete)
}
