package api

import (
	"log"
	stdhttp "net/http"
	"reflect"
	"strings"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func NewRouter(env intconfig.Env, handlers h.Handlers) *gin.Engine {
	_ = env

	registerJSONTagNames()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/db-check", handlers.DBCheck)

		vehicleTypes := api.Group("/vehicle-types")
		vehicleTypes.GET("", handlers.GetVehicleTypes)
		vehicleTypes.POST("", handlers.CreateVehicleType)
		vehicleTypes.PUT("/:id", handlers.UpdateVehicleType)
		vehicleTypes.DELETE("/:id", handlers.DeleteVehicleType)
		vehicleTypes.GET("/:id/schedules", handlers.GetSchedulesByVehicleType)
		vehicleTypes.GET("/:id/aggregates", handlers.GetVehicleTypeAggregates)

		operations := api.Group("/operations")
		operations.GET("", handlers.GetOperations)
		operations.POST("", handlers.CreateOperation)
		operations.PUT("/:id", handlers.UpdateOperation)

		schedules := api.Group("/schedules")
		schedules.POST("", handlers.CreateSchedule)
		schedules.PUT("/:id", handlers.UpdateSchedule)
	}

	return r
}

// registerJSONTagNames makes binding violations report json field names
// (vehicleTypeId) instead of Go struct names (VehicleTypeID).
func registerJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
