// @title NurseJobs Browse API
// @version 1.0
// @description Read-only faceted browse/search backend for classified nursing job listings
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nickdelicto/nursejobs-backend/config"
	"github.com/nickdelicto/nursejobs-backend/controllers/browse/stats_controller"
	"github.com/nickdelicto/nursejobs-backend/facets"
	"github.com/nickdelicto/nursejobs-backend/middleware"
	"github.com/nickdelicto/nursejobs-backend/models"
	"github.com/nickdelicto/nursejobs-backend/routes/browse_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	// Wire the facet aggregator over the jobs store
	store := facets.NewGormStore(config.JobsGorm)
	stats_controller.Init(facets.NewAggregator(store))
	log.Println("✅ Facet aggregator initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	browse_routes.SetupBrowseRoutes(api)
	log.Println("✅ Browse routes registered")

	// Liveness: ping the pgx pool and redis
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := config.WithCustomTimeout(2 * time.Second)
		defer cancel()

		if err := config.JobsDB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Database unavailable"))
			return
		}
		if err := config.RedisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Redis unavailable"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "OK", nil))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
