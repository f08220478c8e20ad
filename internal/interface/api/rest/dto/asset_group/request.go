package asset_group

type (
	CreateRequest struct {
		Name        string `json:"name" validate:"required,max=255"`
		Description string `json:"description" validate:"max=2000"`
	}

	UpdateRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
		Description *string `json:"description" validate:"omitempty,max=2000"`
	}
)
