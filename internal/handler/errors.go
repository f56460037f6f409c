package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"inventory-sync/internal/repository"
	"inventory-sync/internal/service"
	"inventory-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgTryAgain = "Something went wrong, please try again"

// writeError maps domain errors to status codes. Anything unexpected is logged and
// hidden behind a generic message.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrVariationNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrAlertNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrInvalidQuantity),
		errors.Is(err, repository.ErrInvalidUnitType),
		errors.Is(err, repository.ErrInvalidVariation),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidPrice):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrOrderNotCancelable):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, response.Error(status, msgTryAgain))
		return
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func writeShortfall(c *gin.Context, requested, shortfall int, data interface{}) {
	msg := fmt.Sprintf("%s: requested %d, short by %d", service.ErrInsufficientStock, requested, shortfall)
	c.JSON(http.StatusConflict, response.ErrorWithData(http.StatusConflict, msg, data))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, msg))
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
