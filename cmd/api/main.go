package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/smart-agroconnect/api/internal/handler/http"
	redisclient "github.com/smart-agroconnect/api/internal/infrastructure/cache"
	"github.com/smart-agroconnect/api/internal/infrastructure/config"
	database "github.com/smart-agroconnect/api/internal/infrastructure/database"
	"github.com/smart-agroconnect/api/internal/infrastructure/external_services"
	"github.com/smart-agroconnect/api/internal/infrastructure/jwt"
	"github.com/smart-agroconnect/api/internal/infrastructure/logger"
	"github.com/smart-agroconnect/api/internal/infrastructure/metrics"
	passwordservice "github.com/smart-agroconnect/api/internal/infrastructure/password_service"
	"github.com/smart-agroconnect/api/internal/infrastructure/repository/mongodb"
	"github.com/smart-agroconnect/api/internal/infrastructure/storage"
	"github.com/smart-agroconnect/api/internal/infrastructure/store"
	"github.com/smart-agroconnect/api/internal/infrastructure/uuidgen"
	"github.com/smart-agroconnect/api/internal/infrastructure/validator"
	"github.com/smart-agroconnect/api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	appConfig := config.NewConfig()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userCollection := db.Collection("users")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	productRepo := mongodb.NewProductRepository(db, userCollection)

	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// Local upload store
	fileStore := storage.NewLocalStore(appConfig.GetUploadRoot())
	if err := fileStore.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create upload directories: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(
		os.Getenv("EMAIL_HOST"),
		os.Getenv("EMAIL_PORT"),
		os.Getenv("EMAIL_USERNAME"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		os.Getenv("EMAIL_FROM"),
	)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	metrics.MustRegister()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, fileStore, hasher, jwtService, mailService, appLogger, appConfig, appValidator, uuidGenerator)
	productUsecase := usecase.NewProductUsecase(productRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		productUsecase.SetProductCache(store.NewProductCacheStore(rdb))
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, productUsecase, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
