package family

type (
	Request struct {
		Code        string   `json:"code" validate:"required,code"`
		Name        string   `json:"name" validate:"required,max=255"`
		Description string   `json:"description" validate:"max=2000"`
		Attributes  []string `json:"attributes" validate:"max=200,dive,code"`
	}

	UpdateRequest struct {
		Code        *string   `json:"code" validate:"omitempty,code"`
		Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
		Description *string   `json:"description" validate:"omitempty,max=2000"`
		Attributes  *[]string `json:"attributes" validate:"omitempty,max=200,dive,code"`
	}
)
