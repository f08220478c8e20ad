package asset_group

import (
	"strconv"

	"pim-api/internal/domain/asset_group"
	"pim-api/internal/domain/page"
	"pim-api/internal/interface/api/rest/dto/pagination"
	"pim-api/pkg/bytesize"
)

func ToResponseAssetGroup(g asset_group.AssetGroup) AssetGroup {
	return AssetGroup{
		ID:                 g.ID,
		Name:               g.Name,
		Description:        g.Description,
		TotalSize:          strconv.FormatInt(g.TotalSize, 10),
		FormattedTotalSize: bytesize.Format(g.TotalSize),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func ToResponseAssetGroups(gDomain asset_group.AssetGroups, meta page.Meta) ResponseData {
	out := make(AssetGroups, len(gDomain))
	for idx, g := range gDomain {
		out[idx] = ToResponseAssetGroup(*g)
	}

	return ResponseData{Data: out, Meta: pagination.ToResponseMeta(meta)}
}

func ToDomainPatch(r UpdateRequest) asset_group.Patch {
	return asset_group.Patch{Name: r.Name, Description: r.Description}
}
