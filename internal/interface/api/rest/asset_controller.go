package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pim-api/internal/application/ports"
	"pim-api/internal/infrastructure/jwt"
	dto "pim-api/internal/interface/api/rest/dto/asset"
	"pim-api/internal/interface/api/rest/middleware"
	"pim-api/internal/interface/api/rest/validator"
)

// 50MB
const maxUploadSize = int64(50 << 20)

type AssetController struct {
	assetService  ports.AssetService
	logger        *zap.Logger
	maxUploadSize int64
}

func NewAssetController(
	r *gin.Engine,
	assetService ports.AssetService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AssetController {
	ac := &AssetController{
		assetService:  assetService,
		logger:        logger,
		maxUploadSize: maxUploadSize,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RouteAssetUpload, auth, ac.UploadAssetHandler)
	r.GET(RouteAssets, auth, ac.GetAssetsHandler)
	r.GET(RouteAsset, auth, ac.GetAssetHandler)
	r.PATCH(RouteAsset, auth, ac.UpdateAssetHandler)
	r.DELETE(RouteAsset, auth, ac.DeleteAssetHandler)

	return ac
}

func (ac *AssetController) UploadAssetHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	// room for the multipart envelope and the text fields
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ac.maxUploadSize+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > ac.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	var form dto.UploadForm
	if !bindForm(c, &form) {
		return
	}

	in := ports.UploadAsset{UserID: userID, Name: form.Name, File: fh}
	if form.AssetGroupID != "" {
		_, gid := validator.IsUUID(form.AssetGroupID)
		in.AssetGroupID = &gid
	}

	a, err := ac.assetService.UploadAsset(c.Request.Context(), in)
	if err != nil {
		respondError(c, ac.logger, "upload an asset", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseAsset(*a))
}

func (ac *AssetController) GetAssetsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	f, errs := validator.AssetFilter(userID, c.Request.URL.Query())
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query",
			"details": errs,
		})
		return
	}

	assets, meta, err := ac.assetService.FindAssets(c.Request.Context(), f)
	if err != nil {
		respondError(c, ac.logger, "get assets", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAssets(assets, meta))
}

func (ac *AssetController) GetAssetHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "asset_id")
	if !ok {
		return
	}

	a, err := ac.assetService.FindAsset(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, ac.logger, "get an asset", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAsset(*a))
}

func (ac *AssetController) UpdateAssetHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "asset_id")
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := ac.assetService.UpdateAsset(c.Request.Context(), userID, id, dto.ToDomainPatch(req))
	if err != nil {
		respondError(c, ac.logger, "update an asset", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseAsset(*a))
}

func (ac *AssetController) DeleteAssetHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "asset_id")
	if !ok {
		return
	}

	if err := ac.assetService.DeleteAsset(c.Request.Context(), userID, id); err != nil {
		respondError(c, ac.logger, "delete an asset", err)
		return
	}

	c.Status(http.StatusNoContent)
}
