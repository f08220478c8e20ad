package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/infrastructure/jwt"
	dto "pim-api/internal/interface/api/rest/dto/family"
	"pim-api/internal/interface/api/rest/middleware"
)

type FamilyController struct {
	familyService ports.FamilyService
	logger        *zap.Logger
}

func NewFamilyController(
	r *gin.Engine,
	familyService ports.FamilyService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FamilyController {
	fc := &FamilyController{
		familyService: familyService,
		logger:        logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RouteFamilies, auth, fc.CreateFamilyHandler)
	r.GET(RouteFamilies, auth, fc.GetFamiliesHandler)
	r.GET(RouteFamily, auth, fc.GetFamilyHandler)
	r.PATCH(RouteFamily, auth, fc.UpdateFamilyHandler)
	r.DELETE(RouteFamily, auth, fc.DeleteFamilyHandler)

	return fc
}

func (fc *FamilyController) CreateFamilyHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.Request
	if !bindJSON(c, &req) {
		return
	}

	f, err := fc.familyService.CreateFamily(c.Request.Context(), dto.ToDomainFamily(userID, req))
	if err != nil {
		respondError(c, fc.logger, "create a family", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseFamily(*f))
}

func (fc *FamilyController) GetFamiliesHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pg, limit, ok := pageParams(c)
	if !ok {
		return
	}

	families, meta, err := fc.familyService.FindFamilies(
		c.Request.Context(),
		userID,
		strings.TrimSpace(c.Query("search")),
		pg,
		limit,
	)
	if err != nil {
		respondError(c, fc.logger, "get families", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseFamilies(families, meta))
}

func (fc *FamilyController) GetFamilyHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "family_id")
	if !ok {
		return
	}

	f, err := fc.familyService.FindFamily(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, fc.logger, "get a family", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseFamily(*f))
}

func (fc *FamilyController) UpdateFamilyHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "family_id")
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	f, err := fc.familyService.UpdateFamily(c.Request.Context(), userID, id, dto.ToDomainPatch(req))
	if err != nil {
		respondError(c, fc.logger, "update a family", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseFamily(*f))
}

func (fc *FamilyController) DeleteFamilyHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "family_id")
	if !ok {
		return
	}

	if err := fc.familyService.DeleteFamily(c.Request.Context(), userID, id); err != nil {
		respondError(c, fc.logger, "delete a family", err)
		return
	}

	c.Status(http.StatusNoContent)
}
