package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"employee-directory/internal/handlers"
	"employee-directory/internal/middleware"
	"employee-directory/internal/web"
)

// New returns an engine with recovery and zerolog request logging.
func New(logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	return r
}

// SetupWeb registers the list and add views.
func SetupWeb(r *gin.Engine, dh *handlers.DirectoryHandler, fh *handlers.FormHandler) {
	r.SetHTMLTemplate(web.MustTemplates())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/", dh.List)
	r.GET("/rows", dh.Rows)

	r.GET("/add", fh.Show)
	r.POST("/add", fh.Submit)
}

// SetupAPI registers the employee REST endpoints.
func SetupAPI(r *gin.Engine, eh *handlers.EmployeeHandler) {
	r.GET("/health", eh.Health)

	api := r.Group("/api")
	api.GET("/employees", eh.ListEmployees)
	api.POST("/employees", eh.CreateEmployee)
}
