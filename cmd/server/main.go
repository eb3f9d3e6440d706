package main

import (
	"log"
	"os"
	"strconv"

	"staffhub/config"
	"staffhub/controllers"
	"staffhub/db"
	"staffhub/internal/resetflow"
	"staffhub/middlewares"
	"staffhub/routes"
	"staffhub/services"
	"staffhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; config.yml is the source of truth.
	godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := resetflow.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	if err := middlewares.InitCasbin(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to initialize RBAC: %v", err)
	}

	utils.SeedSuperadmin(cfg)

	mailer := utils.NewSMTPMailer(cfg)
	resetService := services.NewPasswordResetService(
		resetflow.NewRedisStore(),
		mailer,
		services.NewMongoUserDirectory(),
	)
	controllers.Init(cfg, mailer, resetService)

	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	routes.SetupAuthRoutes(router)
	routes.SetupDashboardRoutes(router)
	routes.SetupEmployeeRoutes(router)
	routes.SetupRequirementRoutes(router)
	routes.SetupCandidateRoutes(router)
	routes.SetupInterviewRoutes(router)
	routes.SetupPlacementRoutes(router)
	routes.SetupLeaveRoutes(router)
	routes.SetupTimesheetRoutes(router)

	return router
}
