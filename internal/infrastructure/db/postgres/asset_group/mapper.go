package asset_group

import (
	domain "pim-api/internal/domain/asset_group"
)

func fromDBModel(model *AssetGroup) *domain.AssetGroup {
	return &domain.AssetGroup{
		ID:     model.ID,
		UserID: model.UserID,

		Name:        model.Name,
		Description: model.Description,
		TotalSize:   model.TotalSize,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models AssetGroups) domain.AssetGroups {
	gs := make(domain.AssetGroups, len(models))
	for idx, g := range models {
		gs[idx] = fromDBModel(g)
	}

	return gs
}
