package family

import (
	domain "pim-api/internal/domain/family"
)

func fromDBModel(model *Family) *domain.Family {
	attrs := model.Attributes
	if attrs == nil {
		attrs = []string{}
	}

	return &domain.Family{
		ID:     model.ID,
		UserID: model.UserID,

		Code:        model.Code,
		Name:        model.Name,
		Description: model.Description,
		Attributes:  attrs,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Families) domain.Families {
	fs := make(domain.Families, len(models))
	for idx, f := range models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func toAttributes(attrs []string) []string {
	if attrs == nil {
		return []string{}
	}
	return attrs
}
