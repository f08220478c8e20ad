package family

import (
	"time"

	"github.com/google/uuid"

	"pim-api/internal/interface/api/rest/dto/pagination"
)

type (
	Family struct {
		ID          uuid.UUID `json:"id"`
		Code        string    `json:"code"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Attributes  []string  `json:"attributes"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
	Families     []Family
	ResponseData struct {
		Data Families        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
)
