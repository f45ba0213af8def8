package models

import (
	"time"

	"gorm.io/datatypes"
)

// FieldResponse is one answered field. Checkbox answers arrive joined with
// ", " by the renderer, so every answer is a plain string.
type FieldResponse struct {
	FieldLabel string `json:"fieldLabel"`
	Answer     string `json:"answer"`
}

type Submission struct {
	SID       uint                               `gorm:"primaryKey;column:s_id" json:"id"`
	FormID    uint                               `gorm:"column:form_id;not null;index" json:"formId"`
	Responses datatypes.JSONSlice[FieldResponse] `json:"responses"`
	CreatedAt time.Time                          `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
}
