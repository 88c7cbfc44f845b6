package dto

import (
	"shiftboard/internal/core"
)

// 建立人員
type CreateWorkerDto struct {
	Code        string            `json:"code" binding:"required"`
	DisplayName string            `json:"displayName" binding:"required"`
	OrgUnit     string            `json:"orgUnit,omitempty"`
	JobTitle    string            `json:"jobTitle,omitempty"`
	Status      core.WorkerStatus `json:"status" binding:"required"`
}

// 更新人員
type UpdateWorkerDto struct {
	Code        *string            `json:"code,omitempty"`
	DisplayName *string            `json:"displayName,omitempty"`
	OrgUnit     *string            `json:"orgUnit,omitempty"`
	JobTitle    *string            `json:"jobTitle,omitempty"`
	Status      *core.WorkerStatus `json:"status,omitempty"`
}

// 建立機台
type CreateResourceDto struct {
	Code        string              `json:"code" binding:"required"`
	DisplayName string              `json:"displayName" binding:"required"`
	OrgUnit     string              `json:"orgUnit,omitempty"`
	Status      core.ResourceStatus `json:"status" binding:"required"`
}

// 更新機台
type UpdateResourceDto struct {
	Code        *string              `json:"code,omitempty"`
	DisplayName *string              `json:"displayName,omitempty"`
	OrgUnit     *string              `json:"orgUnit,omitempty"`
	Status      *core.ResourceStatus `json:"status,omitempty"`
}

// 建立班別
type CreateShiftDto struct {
	DisplayName string `json:"displayName" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"` // HH:mm
	EndTime     string `json:"endTime" binding:"required"`   // HH:mm
	Color       string `json:"color,omitempty"`
}

// 更新班別
type UpdateShiftDto struct {
	DisplayName *string `json:"displayName,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Color       *string `json:"color,omitempty"`
}
