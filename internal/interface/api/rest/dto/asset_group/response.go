package asset_group

import (
	"time"

	"github.com/google/uuid"

	"pim-api/internal/interface/api/rest/dto/pagination"
)

type (
	AssetGroup struct {
		ID                 uuid.UUID `json:"id"`
		Name               string    `json:"name"`
		Description        string    `json:"description"`
		TotalSize          string    `json:"totalSize"`
		FormattedTotalSize string    `json:"formattedTotalSize"`
		CreatedAt          time.Time `json:"createdAt"`
		UpdatedAt          time.Time `json:"updatedAt"`
	}
	AssetGroups  []AssetGroup
	ResponseData struct {
		Data AssetGroups     `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	ReconcileResponse struct {
		Reconciled int `json:"reconciled"`
	}
)
