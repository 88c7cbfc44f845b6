package handler

import (
	cErr "shiftboard/internal/pkg/error"

	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewBoardHandler,
	NewAdminDirectoryHandler,
	NewHealthHandler,
)

func respondInvalidStatus(status string) *cErr.Error {
	return cErr.BadRequestBody("invalid status " + status)
}

func respondInvalidClock() *cErr.Error {
	return cErr.BadRequestBody("time must be HH:mm (24h)")
}
