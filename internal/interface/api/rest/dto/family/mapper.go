package family

import (
	"github.com/google/uuid"

	"pim-api/internal/domain/family"
	"pim-api/internal/domain/page"
	"pim-api/internal/interface/api/rest/dto/pagination"
)

func ToResponseFamily(f family.Family) Family {
	attrs := f.Attributes
	if attrs == nil {
		attrs = []string{}
	}

	return Family{
		ID:          f.ID,
		Code:        f.Code,
		Name:        f.Name,
		Description: f.Description,
		Attributes:  attrs,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ToResponseFamilies(fDomain family.Families, meta page.Meta) ResponseData {
	out := make(Families, len(fDomain))
	for idx, f := range fDomain {
		out[idx] = ToResponseFamily(*f)
	}

	return ResponseData{Data: out, Meta: pagination.ToResponseMeta(meta)}
}

func ToDomainFamily(userID uuid.UUID, r Request) family.Family {
	return family.Family{
		UserID:      userID,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Attributes:  r.Attributes,
	}
}

func ToDomainPatch(r UpdateRequest) family.Patch {
	return family.Patch{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Attributes:  r.Attributes,
	}
}
