package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smart-agroconnect/api/internal/handler/http/middleware"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

type Router struct {
	userHandler    *UserHandler
	productHandler *ProductHandler
	authHandler    *AuthHandler
	userUsecase    usecasecontract.IUserUseCase
	uploadRoot     string
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, productUsecase usecasecontract.IProductUseCase, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		productHandler: NewProductHandler(productUsecase),
		authHandler:    NewAuthHandler(userUsecase, config.GetAppBaseURL()),
		userUsecase:    userUsecase,
		uploadRoot:     config.GetUploadRoot(),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// uploaded documents and profile images are served as static files
	router.Static("/uploads", r.uploadRoot)

	authRequired := middleware.AuthMiddleWare(r.userUsecase)

	users := router.Group("/api/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.POST("/firebase-auth", r.userHandler.FirebaseAuth)

		users.GET("/profile", authRequired, r.userHandler.GetProfile)
		users.PUT("/profile", authRequired, r.userHandler.UpdateProfile)

		admin := users.Group("/admin", authRequired, middleware.AdminOnly())
		{
			admin.GET("/users", r.userHandler.ListUsers)
			admin.GET("/users/:id", r.userHandler.GetUser)
			admin.PUT("/users/:id", r.userHandler.AdminUpdateUser)
			admin.DELETE("/users/:id", r.userHandler.AdminDeleteUser)
		}
	}

	auth := router.Group("/api/auth")
	{
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	products := router.Group("/api/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.GET("/user/myproducts", authRequired, r.productHandler.MyProducts)

		products.POST("", authRequired, r.productHandler.CreateProduct)
		products.PUT("/:id", authRequired, r.productHandler.UpdateProduct)
		products.DELETE("/:id", authRequired, r.productHandler.DeleteProduct)
	}
}
