package asset

import (
	"strconv"

	"pim-api/internal/domain/asset"
	"pim-api/internal/domain/page"
	"pim-api/internal/interface/api/rest/dto/pagination"
	"pim-api/pkg/bytesize"
)

// ToResponseAsset is the only place an asset size leaves int64.
func ToResponseAsset(a asset.Asset) Asset {
	return Asset{
		ID:            a.ID,
		Name:          a.Name,
		FileName:      a.FileName,
		StorageKey:    a.StorageKey,
		MimeType:      a.MimeType,
		Size:          strconv.FormatInt(a.Size, 10),
		FormattedSize: bytesize.Format(a.Size),
		AssetGroupID:  a.AssetGroupID,
		URL:           a.URL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ToResponseAssets(aDomain asset.Assets, meta page.Meta) ResponseData {
	out := make(Assets, len(aDomain))
	for idx, a := range aDomain {
		out[idx] = ToResponseAsset(*a)
	}

	return ResponseData{Data: out, Meta: pagination.ToResponseMeta(meta)}
}

func ToDomainPatch(r UpdateRequest) asset.Patch {
	return asset.Patch{
		Name:         r.Name,
		GroupSet:     r.AssetGroupID.Set,
		AssetGroupID: r.AssetGroupID.Value,
	}
}
