package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/infrastructure/jwt"
	dto "pim-api/internal/interface/api/rest/dto/notification"
	"pim-api/internal/interface/api/rest/middleware"
)

// RoleAdmin may run maintenance endpoints that cross tenants.
const RoleAdmin = "admin"

type NotificationController struct {
	notificationService ports.NotificationService
	logger              *zap.Logger
	retentionDays       int
}

func NewNotificationController(
	r *gin.Engine,
	notificationService ports.NotificationService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	retentionDays int,
) *NotificationController {
	nc := &NotificationController{
		notificationService: notificationService,
		logger:              logger,
		retentionDays:       retentionDays,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.GET(RouteNotifications, auth, nc.GetNotificationsHandler)
	r.DELETE(RouteNotifications, auth, middleware.RequireRole(RoleAdmin), nc.SweepNotificationsHandler)

	return nc
}

func (nc *NotificationController) GetNotificationsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pg, limit, ok := pageParams(c)
	if !ok {
		return
	}

	items, meta, err := nc.notificationService.FindNotifications(c.Request.Context(), userID, pg, limit)
	if err != nil {
		respondError(c, nc.logger, "get notifications", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseNotifications(items, meta))
}

// SweepNotificationsHandler deletes notifications of every user older than
// olderThanDays, falling back to the configured retention.
func (nc *NotificationController) SweepNotificationsHandler(c *gin.Context) {
	days := nc.retentionDays
	if v := c.Query("olderThanDays"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "olderThanDays must be a positive integer"})
			return
		}
		days = d
	}

	n, err := nc.notificationService.SweepOlderThan(c.Request.Context(), days)
	if err != nil {
		respondError(c, nc.logger, "sweep notifications", err)
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{Deleted: n})
}
