package app

import (
	"net/http"
	"strings"

	"go-empms/internal/employee"
	"go-empms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher employee.EventPublisher,
	logger *zap.Logger,
) error {
	employeeRepo := employee.NewRepository(gormDB)
	employeeService := employee.NewService(employeeRepo, publisher, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	employee.RegisterRoutes(&router.RouterGroup, employeeHandler, rdb, logger)

	registerFallbacks(router)

	return nil
}

// allowedMethods maps the route shapes this API serves to their verbs, so
// a 405 can list what would have worked.
func allowedMethods(path string) string {
	trimmed := strings.Trim(path, "/")
	switch strings.Count(trimmed, "/") {
	case 0:
		return "GET, POST"
	default:
		return "GET, PUT, DELETE"
	}
}

func registerFallbacks(router *gin.Engine) {
	router.HandleMethodNotAllowed = true

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Resource Not Found", map[string]string{
			"error": "No resource found for " + c.Request.URL.Path,
		})
	})

	router.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method Not Allowed", map[string]string{
			"error":             "Request method '" + c.Request.Method + "' is not supported",
			"attempted_method":  c.Request.Method,
			"supported_methods": allowedMethods(c.Request.URL.Path),
		})
	})
}
