package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrsuite/recruitment-service/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "recruitment-api-service",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)
	interviewHandler := handler.NewInterviewHandler(deps)
	statsHandler := handler.NewStatsHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:job_id", jobHandler.GetJob)
			jobs.PUT("/:job_id", jobHandler.UpdateJob)
			jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		}

		applications := v1.Group("/applications")
		{
			// POST /api/v1/applications - submit an application (intake)
			applications.POST("", applicationHandler.Apply)
			applications.GET("", applicationHandler.ListApplications)
			applications.GET("/:application_id", applicationHandler.GetApplication)
			applications.PATCH("/:application_id/stage", applicationHandler.UpdateStage)
		}

		interviews := v1.Group("/interviews")
		{
			interviews.POST("/schedule", interviewHandler.ScheduleInterview)
		}

		v1.GET("/recruitment/stats", statsHandler.GetStats)
	}

	return r
}
