package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/application/services"
	"pim-api/internal/infrastructure/jwt"
	dto "pim-api/internal/interface/api/rest/dto/support"
	"pim-api/internal/interface/api/rest/middleware"
)

const maxTicketBody = int64(services.MaxTicketAttachments*services.MaxTicketAttachmentSize + 1<<20)

type SupportController struct {
	supportService ports.SupportService
	logger         *zap.Logger
}

func NewSupportController(
	r *gin.Engine,
	supportService ports.SupportService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SupportController {
	sc := &SupportController{
		supportService: supportService,
		logger:         logger,
	}

	r.POST(RouteSupportTickets, middleware.AuthMiddleware(jwtService), sc.CreateTicketHandler)

	return sc
}

func (sc *SupportController) CreateTicketHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxTicketBody)

	var form dto.TicketForm
	if !bindForm(c, &form) {
		return
	}

	t := ports.SupportTicket{
		UserID:   userID,
		Subject:  form.Subject,
		Message:  form.Message,
		Email:    form.Email,
		Category: form.Category,
		Priority: form.Priority,
	}
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		t.Attachments = mf.File["attachments"]
	}
	if len(t.Attachments) > services.MaxTicketAttachments {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many attachments"})
		return
	}

	ref, err := sc.supportService.SubmitTicket(c.Request.Context(), t)
	if err != nil {
		respondError(c, sc.logger, "submit a support ticket", err)
		return
	}

	c.JSON(http.StatusCreated, dto.TicketResponse{TicketID: ref})
}
