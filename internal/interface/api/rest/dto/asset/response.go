package asset

import (
	"time"

	"github.com/google/uuid"

	"pim-api/internal/interface/api/rest/dto/pagination"
)

type (
	Asset struct {
		ID            uuid.UUID  `json:"id"`
		Name          string     `json:"name"`
		FileName      string     `json:"fileName"`
		StorageKey    string     `json:"storageKey"`
		MimeType      string     `json:"mimeType"`
		Size          string     `json:"size"`
		FormattedSize string     `json:"formattedSize"`
		AssetGroupID  *uuid.UUID `json:"assetGroupId"`
		URL           string     `json:"url"`
		CreatedAt     time.Time  `json:"createdAt"`
		UpdatedAt     time.Time  `json:"updatedAt"`
	}
	Assets       []Asset
	ResponseData struct {
		Data Assets          `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
)
