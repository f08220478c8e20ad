package asset

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

type (
	UploadForm struct {
		Name         string `form:"name" validate:"max=255"`
		AssetGroupID string `form:"assetGroupId" validate:"omitempty,uuid"`
	}

	UpdateRequest struct {
		Name         *string      `json:"name" validate:"omitempty,min=1,max=255"`
		AssetGroupID OptionalUUID `json:"assetGroupId"`
	}
)

// OptionalUUID tells an absent key (Set == false) from an explicit null
// (Set == true, Value == nil).
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}

	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
