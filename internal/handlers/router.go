package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/watertight-recruitment/recruitment-backend/internal/auth"
	"github.com/watertight-recruitment/recruitment-backend/internal/config"
	"github.com/watertight-recruitment/recruitment-backend/internal/logging"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services are the repositories the routes call into.
type Services struct {
	DB       *gorm.DB
	Jobs     *services.JobService
	Eois     *services.EoiService
	Users    *services.UserService
	Sessions *services.SessionService
}

// NewServices wires every repository to one database handle.
func NewServices(db *gorm.DB, cfg *config.Config) Services {
	return Services{
		DB:       db,
		Jobs:     services.NewJobService(db),
		Eois:     services.NewEoiService(db),
		Users:    services.NewUserService(db),
		Sessions: services.NewSessionService(db, cfg.SessionTTL),
	}
}

// NewRouter builds the engine with logging, recovery, CORS and every route.
func NewRouter(cfg *config.Config, logger *zap.Logger, svc Services) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logging.GinLogger(logger), logging.GinRecovery(logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	jobHandler := NewJobHandler(svc.Jobs, logger)
	eoiHandler := NewEoiHandler(svc.Eois, logger)
	authHandler := NewAuthHandler(svc.Users, svc.Sessions, logger)
	authHandler.SecureCookies = !cfg.Debug

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck(svc.DB))

		// Job Routes
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:ref", jobHandler.GetJob)

		api.POST("/apply", eoiHandler.Apply)

		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
	}

	manage := api.Group("/manage", auth.RequireUser(svc.Sessions, svc.Users, logger))
	{
		manage.GET("/me", authHandler.Me)
		manage.POST("/jobs", jobHandler.CreateJob)

		manage.GET("/eois", eoiHandler.ListEois)
		manage.GET("/eois/:id", eoiHandler.GetEoi)
		manage.POST("/eois/status", eoiHandler.ChangeStatus)
		manage.POST("/eois/delete", eoiHandler.DeleteEois)
		manage.DELETE("/eois/delete", eoiHandler.DeleteEois)
	}

	return r
}
