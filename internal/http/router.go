package http

import (
	"log/slog"

	"contact-form-server/internal/config"
	"contact-form-server/internal/http/handlers"
	"contact-form-server/internal/http/middleware"
	"contact-form-server/internal/services"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config      *config.Config
	AuthService *services.AuthService
	FormService *services.FormService
	Tokens      middleware.TokenVerifier
	DB          handlers.Pinger
	Logger      *slog.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	formHandler := handlers.NewFormHandler(deps.FormService)

	router.GET("/", handlers.Root)
	router.GET("/healthz", handlers.Health(deps.DB))

	user := router.Group("/user")
	{
		user.POST("/register", authHandler.Register)
		user.POST("/login", authHandler.Login)
	}

	form := router.Group("/form")
	form.Use(middleware.JWTAuth(deps.Tokens))
	{
		form.GET("", formHandler.List)
		form.POST("/add", formHandler.Add)
		form.PUT("/update/:id", formHandler.Update)
	}

	return router
}
