package router

import (
	"shiftboard/internal/core"
	"shiftboard/internal/handler"
	"shiftboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type BoardRouter struct {
	boardHandler *handler.BoardHandler
	auth         *middleware.Auth
}

func NewBoardRouter(
	boardHandler *handler.BoardHandler,
	auth *middleware.Auth,
) *BoardRouter {
	return &BoardRouter{
		boardHandler: boardHandler,
		auth:         auth,
	}
}

func (br *BoardRouter) RegisterRoutes(r *gin.Engine) {
	board := r.Group("/board")
	board.Use(br.auth.Handler())
	{
		// 查詢對三種角色開放
		board.GET("", br.boardHandler.View)

		// 操作類限 planner/admin
		write := board.Group("")
		write.Use(br.auth.RequireRole(core.RoleAdmin, core.RolePlanner))
		{
			write.PUT("/week", br.boardHandler.NavigateWeek)
			write.PUT("/shift", br.boardHandler.SelectShift)
			write.POST("/drop", br.boardHandler.Drop)
			write.DELETE("/assignments/:assignmentID", br.boardHandler.Remove)
			write.POST("/copy-week", br.boardHandler.CopyWeek)
		}
	}
}
