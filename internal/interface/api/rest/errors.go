package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pim-api/internal/application/services"
	"pim-api/internal/interface/api/rest/middleware"
	"pim-api/internal/interface/api/rest/validator"
)

// respondError maps service sentinels to statuses. Anything unrecognised is a
// 500 with a generic message, the cause goes to the log only.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to " + op},
		)
		logger.Error(op+" error", zap.Error(err))
	}
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authenticated user is required"})
	}
	return id, ok
}

func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	ok, id := validator.IsUUID(c.Param(param))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": param + " must be a valid UUID"},
		)
	}
	return id, ok
}

func pageParams(c *gin.Context) (int, int, bool) {
	pg, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	limit, err := validator.ValidateLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	return pg, limit, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return false
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return false
	}
	return true
}

// bindForm is bindJSON for multipart and urlencoded bodies.
func bindForm(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid form",
			"details": err.Error(),
		})
		return false
	}
	if errs := validator.ValidateStruct(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid form",
			"details": errs,
		})
		return false
	}
	return true
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
