package handler

import (
	"shiftboard/internal/dto"
	"shiftboard/internal/pkg/response"
	"shiftboard/internal/service"
	"shiftboard/internal/telemetry"
	"shiftboard/utils/validate"

	"github.com/gin-gonic/gin"
)

type AdminDirectoryHandler struct {
	trace            *telemetry.Trace
	directoryService *service.DirectoryService
}

func NewAdminDirectoryHandler(trace *telemetry.Trace, directoryService *service.DirectoryService) *AdminDirectoryHandler {
	return &AdminDirectoryHandler{trace: trace, directoryService: directoryService}
}

// ─── Workers ───────────────────────────────────────────────────────────────────

// ListWorkers 人員列表
// @Summary 取得人員列表
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.WorkerDto
// @Router /admin/workers [get]
func (h *AdminDirectoryHandler) ListWorkers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	workers, err := h.directoryService.ListWorkers(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, workers)
}

// CreateWorker 新增人員
// @Summary 新增人員
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateWorkerDto true "人員資訊"
// @Success 201 {object} dto.WorkerDto
// @Failure 400 {object} map[string]string
// @Router /admin/workers [post]
func (h *AdminDirectoryHandler) CreateWorker(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateWorkerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if !validate.IsValidWorkerStatus(string(req.Status)) {
		response.AbortWithError(c, respondInvalidStatus(string(req.Status)))
		return
	}

	created, err := h.directoryService.CreateWorker(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// GetWorker 取得單一人員
// @Summary 取得單一人員
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param workerID path string true "Worker ID"
// @Success 200 {object} dto.WorkerDto
// @Failure 404 {object} map[string]string
// @Router /admin/workers/{workerID} [get]
func (h *AdminDirectoryHandler) GetWorker(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "workerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	worker, err := h.directoryService.GetWorkerByID(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, worker)
}

// UpdateWorker 更新人員
// @Summary 更新人員
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param workerID path string true "Worker ID"
// @Param body body dto.UpdateWorkerDto true "人員更新資訊"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/workers/{workerID} [put]
func (h *AdminDirectoryHandler) UpdateWorker(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "workerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateWorkerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if req.Status != nil && !validate.IsValidWorkerStatus(string(*req.Status)) {
		response.AbortWithError(c, respondInvalidStatus(string(*req.Status)))
		return
	}

	if err := h.directoryService.UpdateWorkerByID(ctx, id, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "worker updated successfully"})
}

// DeleteWorker 刪除人員
// @Summary 刪除人員
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param workerID path string true "Worker ID"
// @Success 200 {object} map[string]string
// @Router /admin/workers/{workerID} [delete]
func (h *AdminDirectoryHandler) DeleteWorker(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "workerID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.directoryService.DeleteWorkerByID(ctx, id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "worker deleted successfully"})
}

// ─── Resources ─────────────────────────────────────────────────────────────────

// ListResources 機台列表
// @Summary 取得機台列表
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ResourceDto
// @Router /admin/resources [get]
func (h *AdminDirectoryHandler) ListResources(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	resources, err := h.directoryService.ListResources(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, resources)
}

// CreateResource 新增機台
// @Summary 新增機台
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateResourceDto true "機台資訊"
// @Success 201 {object} dto.ResourceDto
// @Failure 400 {object} map[string]string
// @Router /admin/resources [post]
func (h *AdminDirectoryHandler) CreateResource(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateResourceDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if !validate.IsValidResourceStatus(string(req.Status)) {
		response.AbortWithError(c, respondInvalidStatus(string(req.Status)))
		return
	}

	created, err := h.directoryService.CreateResource(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// GetResource 取得單一機台
// @Summary 取得單一機台
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Success 200 {object} dto.ResourceDto
// @Failure 404 {object} map[string]string
// @Router /admin/resources/{resourceID} [get]
func (h *AdminDirectoryHandler) GetResource(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "resourceID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	resource, err := h.directoryService.GetResourceByID(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, resource)
}

// UpdateResource 更新機台
// @Summary 更新機台
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Param body body dto.UpdateResourceDto true "機台更新資訊"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/resources/{resourceID} [put]
func (h *AdminDirectoryHandler) UpdateResource(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "resourceID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateResourceDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if req.Status != nil && !validate.IsValidResourceStatus(string(*req.Status)) {
		response.AbortWithError(c, respondInvalidStatus(string(*req.Status)))
		return
	}

	if err := h.directoryService.UpdateResourceByID(ctx, id, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "resource updated successfully"})
}

// DeleteResource 刪除機台
// @Summary 刪除機台
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Success 200 {object} map[string]string
// @Router /admin/resources/{resourceID} [delete]
func (h *AdminDirectoryHandler) DeleteResource(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "resourceID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.directoryService.DeleteResourceByID(ctx, id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "resource deleted successfully"})
}

// ─── Shifts ────────────────────────────────────────────────────────────────────

// ListShifts 班別列表
// @Summary 取得班別列表
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ShiftDto
// @Router /admin/shifts [get]
func (h *AdminDirectoryHandler) ListShifts(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	shifts, err := h.directoryService.ListShifts(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, shifts)
}

// CreateShift 新增班別
// @Summary 新增班別
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateShiftDto true "班別資訊"
// @Success 201 {object} dto.ShiftDto
// @Failure 400 {object} map[string]string
// @Router /admin/shifts [post]
func (h *AdminDirectoryHandler) CreateShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if !validate.IsValidClock(req.StartTime) || !validate.IsValidClock(req.EndTime) {
		response.AbortWithError(c, respondInvalidClock())
		return
	}

	created, err := h.directoryService.CreateShift(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, created)
}

// GetShift 取得單一班別
// @Summary 取得單一班別
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftDto
// @Failure 404 {object} map[string]string
// @Router /admin/shifts/{shiftID} [get]
func (h *AdminDirectoryHandler) GetShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	shift, err := h.directoryService.GetShiftByID(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, shift)
}

// UpdateShift 更新班別
// @Summary 更新班別
// @Tags Admin-Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param body body dto.UpdateShiftDto true "班別更新資訊"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/shifts/{shiftID} [put]
func (h *AdminDirectoryHandler) UpdateShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if (req.StartTime != nil && !validate.IsValidClock(*req.StartTime)) ||
		(req.EndTime != nil && !validate.IsValidClock(*req.EndTime)) {
		response.AbortWithError(c, respondInvalidClock())
		return
	}

	if err := h.directoryService.UpdateShiftByID(ctx, id, &req); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "shift updated successfully"})
}

// DeleteShift 刪除班別
// @Summary 刪除班別
// @Tags Admin-Directory
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} map[string]string
// @Router /admin/shifts/{shiftID} [delete]
func (h *AdminDirectoryHandler) DeleteShift(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err := h.directoryService.DeleteShiftByID(ctx, id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "shift deleted successfully"})
}
