package asset

import (
	domain "pim-api/internal/domain/asset"
)

func fromDBModel(model *Asset) *domain.Asset {
	return &domain.Asset{
		ID:     model.ID,
		UserID: model.UserID,

		Name:         model.Name,
		FileName:     model.FileName,
		StorageKey:   model.StorageKey,
		MimeType:     model.MimeType,
		Size:         model.Size,
		AssetGroupID: model.AssetGroupID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Assets) domain.Assets {
	as := make(domain.Assets, len(models))
	for idx, a := range models {
		as[idx] = fromDBModel(a)
	}

	return as
}
