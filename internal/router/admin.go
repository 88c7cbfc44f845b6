package router

import (
	"shiftboard/internal/core"
	"shiftboard/internal/handler"
	"shiftboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	directoryHandler *handler.AdminDirectoryHandler
	auth             *middleware.Auth
}

func NewAdminRouter(
	directoryHandler *handler.AdminDirectoryHandler,
	auth *middleware.Auth,
) *AdminRouter {
	return &AdminRouter{
		directoryHandler: directoryHandler,
		auth:             auth,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(ar.auth.Handler())
	admin.Use(ar.auth.RequireRole(core.RoleAdmin))
	{
		admin.GET("/workers", ar.directoryHandler.ListWorkers)
		admin.POST("/workers", ar.directoryHandler.CreateWorker)
		admin.GET("/workers/:workerID", ar.directoryHandler.GetWorker)
		admin.PUT("/workers/:workerID", ar.directoryHandler.UpdateWorker)
		admin.DELETE("/workers/:workerID", ar.directoryHandler.DeleteWorker)

		admin.GET("/resources", ar.directoryHandler.ListResources)
		admin.POST("/resources", ar.directoryHandler.CreateResource)
		admin.GET("/resources/:resourceID", ar.directoryHandler.GetResource)
		admin.PUT("/resources/:resourceID", ar.directoryHandler.UpdateResource)
		admin.DELETE("/resources/:resourceID", ar.directoryHandler.DeleteResource)

		admin.GET("/shifts", ar.directoryHandler.ListShifts)
		admin.POST("/shifts", ar.directoryHandler.CreateShift)
		admin.GET("/shifts/:shiftID", ar.directoryHandler.GetShift)
		admin.PUT("/shifts/:shiftID", ar.directoryHandler.UpdateShift)
		admin.DELETE("/shifts/:shiftID", ar.directoryHandler.DeleteShift)
	}
}
