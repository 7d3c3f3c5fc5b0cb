package dto

import (
	"trimly/shared/constant"
	"trimly/shared/model"
	"trimly/shared/timezone"
)

// Metadata is the audit trail as presented to clients, with timestamps
// already formatted in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(model.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(model.ModifiedAt, constant.DateFormat),
		CreatedBy:  model.CreatedBy,
		ModifiedBy: model.ModifiedBy,
	}
}
