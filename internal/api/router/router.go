package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/config"
	"github.com/kwon0144/HarborHub/internal/api/handler"
	"github.com/kwon0144/HarborHub/internal/api/middleware"
	"github.com/kwon0144/HarborHub/pkg/redis"
)

// Setup builds the HTTP engine with the full middleware chain and all
// routes. rdb may be nil; rate limiting then fails open.
func Setup(cfg *config.Config, h *handler.Handlers, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	engine.Use(middleware.BodyLimit(1 << 20))
	engine.Use(middleware.ClientRole())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		// Calendar booking endpoints get a tighter limit: each request
		// fans out to the Google Calendar API.
		calendar := api.Group("/calendar")
		calendar.Use(middleware.RateLimit(rdb, 30, time.Minute))
		{
			calendar.GET("/availability", h.Calendar.GetAvailability)
			calendar.POST("/availability", h.Calendar.PostAvailability)
			calendar.POST("/add-event", h.Calendar.AddEvent)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", h.Activity.ListActivities)
			activities.GET("/:code", h.Activity.GetActivity)

			admin := activities.Group("")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.POST("", h.Activity.CreateActivity)
				admin.PUT("/:code", h.Activity.UpdateActivity)
				admin.DELETE("/:code", h.Activity.DeleteActivity)
			}
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", middleware.RateLimit(rdb, 60, time.Minute), h.Enrollment.CreateEnrollment)
			enrollments.GET("", h.Enrollment.ListEnrollments)
			enrollments.DELETE("", h.Enrollment.CancelEnrollment)
			enrollments.GET("/feed.ics", h.Enrollment.EnrollmentFeed)
		}

		resources := api.Group("/resources")
		{
			resources.GET("", h.Resource.ListResources)
			resources.GET("/:id", h.Resource.GetResource)
		}

		ratings := api.Group("/ratings")
		{
			ratings.POST("", h.Rating.CreateRating)
			ratings.GET("", h.Rating.GetRatings)
			ratings.DELETE("", h.Rating.DeleteRating)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", h.Comment.CreateComment)
			comments.GET("", h.Comment.ListComments)
		}

		api.GET("/statistics", h.Statistics.GetStatistics)

		adminOnly := api.Group("")
		adminOnly.Use(middleware.RequireRole(middleware.RoleAdmin))
		{
			adminOnly.POST("/seed", h.Admin.Seed)
			adminOnly.GET("/export/enrollments", h.Admin.ExportEnrollments)
		}
	}

	return engine
}
