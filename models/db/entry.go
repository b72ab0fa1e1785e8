package dbmodels

import (
	"inspection-tools-backend/models"
	entryapimodels "inspection-tools-backend/models/api/entry"
)

type Entry struct {
	BaseModel
	CycleID     string               `gorm:"type:varchar(36);uniqueIndex:uniq_cycle_entry_number,priority:1"`
	EntryNumber int                  `gorm:"uniqueIndex:uniq_cycle_entry_number,priority:2"`
	IsCompleted bool                 `gorm:"default:false"`
	Data        models.EntryDocument `gorm:"type:jsonb"`
}

func (r Entry) ToModel() entryapimodels.EntryView {
	return entryapimodels.EntryView{
		ID:          r.ID,
		CycleID:     r.CycleID,
		EntryNumber: r.EntryNumber,
		IsCompleted: r.IsCompleted,
		Data:        r.Data,
	}
}
