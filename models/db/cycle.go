package dbmodels

import (
	"time"

	"gorm.io/gorm"

	"inspection-tools-backend/models"
	cycleapimodels "inspection-tools-backend/models/api/cycle"
	entryapimodels "inspection-tools-backend/models/api/entry"
)

type Cycle struct {
	BaseModel
	TechnicianID     string             `gorm:"type:varchar(36);index"`
	Technician       *User              `gorm:"foreignKey:TechnicianID"`
	Status           models.CycleStatus `gorm:"type:varchar(50)"`
	SubmittedAt      *time.Time
	ApprovedAt       *time.Time
	RejectionComment *string
	Entries          []Entry `gorm:"foreignKey:CycleID"`
}

// BeforeDelete removes the cycle's entries inside the same transaction,
// entries first so the FK stays consistent for concurrent readers.
func (c *Cycle) BeforeDelete(tx *gorm.DB) (err error) {
	if c.ID == "" {
		return nil
	}
	return tx.Where("cycle_id = ?", c.ID).Delete(&Entry{}).Error
}

func (c Cycle) CompletedCount() int {
	count := 0
	for _, entry := range c.Entries {
		if entry.IsCompleted {
			count++
		}
	}
	return count
}

func (c Cycle) ToModel() cycleapimodels.CycleView {
	view := cycleapimodels.CycleView{
		ID:               c.ID,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		SubmittedAt:      c.SubmittedAt,
		ApprovedAt:       c.ApprovedAt,
		RejectionComment: c.RejectionComment,
		EntryCount:       len(c.Entries),
		CompletedCount:   c.CompletedCount(),
		CanEdit:          c.Status.CanEdit(),
		Entries:          make([]entryapimodels.EntryView, 0, len(c.Entries)),
	}
	if c.Technician != nil {
		technician := c.Technician.ToModel()
		view.Technician = &technician
	}
	for _, entry := range c.Entries {
		view.Entries = append(view.Entries, entry.ToModel())
	}
	return view
}
