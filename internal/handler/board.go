package handler

import (
	"shiftboard/internal/dto"
	"shiftboard/internal/pkg/response"
	"shiftboard/internal/service"
	"shiftboard/internal/telemetry"
	"shiftboard/utils/validate"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	trace        *telemetry.Trace
	boardService *service.BoardService
}

func NewBoardHandler(trace *telemetry.Trace, boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{trace: trace, boardService: boardService}
}

// View 看板視圖
// @Summary 取得目前可視週的看板快照
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BoardResponseDto
// @Router /board [get]
func (h *BoardHandler) View(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.boardService.View(ctx))
}

// NavigateWeek 切換可視週
// @Summary 載入 reference 所在週（省略時為本週）
// @Tags Board
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.NavigateWeekDto true "週參考日"
// @Success 200 {object} dto.BoardResponseDto
// @Failure 400 {object} map[string]string
// @Router /board/week [put]
func (h *BoardHandler) NavigateWeek(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.NavigateWeekDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	board, err := h.boardService.LoadWeek(ctx, req.Reference)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, board)
}

// SelectShift 選擇作用中班別
// @Summary 設定之後拖放使用的班別
// @Tags Board
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SelectShiftDto true "班別"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /board/shift [put]
func (h *BoardHandler) SelectShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.SelectShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.boardService.SelectShift(ctx, req.ShiftID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "shift selected"})
}

// Drop 拖放事件
// @Summary 把人員放到某天某機台的儲存格
// @Tags Board
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.DropRequestDto true "拖放識別字串"
// @Success 200 {object} dto.AssignmentDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /board/drop [post]
func (h *BoardHandler) Drop(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.DropRequestDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	applied, err := h.boardService.Drop(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, applied)
}

// Remove 移除指派
// @Summary 移除一筆指派
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /board/assignments/{assignmentID} [delete]
func (h *BoardHandler) Remove(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	assignmentID := c.Param("assignmentID")
	if err := h.boardService.Remove(ctx, assignmentID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "assignment removed"})
}

// CopyWeek 週複製
// @Summary 把目前可視週的指派複製到下一週
// @Tags Board
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CopyWeekResponseDto
// @Failure 502 {object} map[string]string
// @Router /board/copy-week [post]
func (h *BoardHandler) CopyWeek(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	result, err := h.boardService.CopyWeek(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
