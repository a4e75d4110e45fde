package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nailspro/config"
	"nailspro/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
		}

		services := api.Group("/services")
		{
			services.GET("/", h.getServices)

			admin := services.Group("/")
			admin.Use(h.authMiddleware())
			{
				admin.POST("/", h.createService)
				admin.PUT("/:id", h.updateService)
			}
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("/", h.getProfessionals)
			professionals.GET("/:id", h.getProfessionalByID)

			admin := professionals.Group("/")
			admin.Use(h.authMiddleware())
			{
				admin.POST("/:id/photo", h.uploadProfessionalPhoto)
				admin.DELETE("/:id/photo", h.deleteProfessionalPhoto)
			}
		}

		// a criação é pública: é o canal usado pelo site do salão
		appointments := api.Group("/appointments")
		{
			appointments.POST("/", h.createAppointment)

			admin := appointments.Group("/")
			admin.Use(h.authMiddleware())
			{
				admin.GET("/", h.getAppointmentsByDate)
				admin.GET("/:id", h.getAppointmentByID)
			}
		}

		schedules := api.Group("/schedules")
		{
			schedules.GET("/busy-slots", h.getBusySlots)
			schedules.GET("/free-slots", h.getFreeSlots)
		}

		assistant := api.Group("/assistant")
		{
			assistant.POST("/chat", h.assistantChat)
		}
	}
}
