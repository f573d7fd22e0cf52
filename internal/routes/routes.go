package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-directory/internal/auth"
	"github.com/BruksfildServices01/client-directory/internal/handlers"
	"github.com/BruksfildServices01/client-directory/internal/middleware"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

type Options struct {
	JWT         *auth.JWTManager
	CORSOrigins []string
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(dir *ucClient.Directory, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	RegisterRoutes(r, dir, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, dir *ucClient.Directory, opts Options) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(dir)
	phoneHandler := handlers.NewPhoneHandler(dir)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(opts.JWT))
	{
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/search", clientHandler.Search)
		api.GET("/clients/:id", clientHandler.Get)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// PHONES
		// ------------------------------
		api.POST("/clients/:id/phones", phoneHandler.Create)
		api.DELETE("/clients/:id/phones/:phoneId", phoneHandler.Delete)
	}
}
