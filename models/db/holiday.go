package dbmodels

import (
	"time"

	holidayapimodels "inspection-tools-backend/models/api/holiday"
)

// Holiday marks one non-working calendar date. Date is always stored
// normalized to midnight UTC, one row per day.
type Holiday struct {
	BaseModel
	Date time.Time `gorm:"uniqueIndex"`
}

func (r Holiday) ToModel() holidayapimodels.HolidayView {
	return holidayapimodels.HolidayView{
		ID:   r.ID,
		Date: r.Date,
	}
}
