package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/infrastructure/jwt"
	dto "pim-api/internal/interface/api/rest/dto/asset_group"
	"pim-api/internal/interface/api/rest/middleware"
)

type AssetGroupController struct {
	assetGroupService ports.AssetGroupService
	logger            *zap.Logger
}

func NewAssetGroupController(
	r *gin.Engine,
	assetGroupService ports.AssetGroupService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AssetGroupController {
	gc := &AssetGroupController{
		assetGroupService: assetGroupService,
		logger:            logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RouteAssetGroups, auth, gc.CreateAssetGroupHandler)
	r.GET(RouteAssetGroups, auth, gc.GetAssetGroupsHandler)
	r.POST(RouteAssetGroupReconcile, auth, gc.ReconcileAssetGroupsHandler)
	r.GET(RouteAssetGroup, auth, gc.GetAssetGroupHandler)
	r.PATCH(RouteAssetGroup, auth, gc.UpdateAssetGroupHandler)
	r.DELETE(RouteAssetGroup, auth, gc.DeleteAssetGroupHandler)

	return gc
}

func (gc *AssetGroupController) CreateAssetGroupHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := gc.assetGroupService.CreateAssetGroup(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		respondError(c, gc.logger, "create an asset group", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseAssetGroup(*g))
}

func (gc *AssetGroupController) GetAssetGroupsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pg, limit, ok := pageParams(c)
	if !ok {
		return
	}

	groups, meta, err := gc.assetGroupService.FindAssetGroups(c.Request.Context(), userID, pg, limit)
	if err != nil {
		respondError(c, gc.logger, "get asset groups", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAssetGroups(groups, meta))
}

func (gc *AssetGroupController) GetAssetGroupHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}

	g, err := gc.assetGroupService.FindAssetGroup(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, gc.logger, "get an asset group", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAssetGroup(*g))
}

func (gc *AssetGroupController) UpdateAssetGroupHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := gc.assetGroupService.UpdateAssetGroup(c.Request.Context(), userID, id, dto.ToDomainPatch(req))
	if err != nil {
		respondError(c, gc.logger, "update an asset group", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAssetGroup(*g))
}

func (gc *AssetGroupController) DeleteAssetGroupHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "group_id")
	if !ok {
		return
	}

	if err := gc.assetGroupService.DeleteAssetGroup(c.Request.Context(), userID, id); err != nil {
		respondError(c, gc.logger, "delete an asset group", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReconcileAssetGroupsHandler recomputes total sizes of the caller's groups.
func (gc *AssetGroupController) ReconcileAssetGroupsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	n, err := gc.assetGroupService.ReconcileAssetGroups(c.Request.Context(), userID)
	if err != nil {
		respondError(c, gc.logger, "reconcile asset groups", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{Reconciled: n})
}
