package dbmodels

import (
	"time"

	"inspection-tools-backend/models"
	timelogapimodels "inspection-tools-backend/models/api/timelog"
)

type TimeLog struct {
	BaseModel
	TechnicianID string               `gorm:"type:varchar(36);index"`
	Technician   *User                `gorm:"foreignKey:TechnicianID"`
	Status       models.TimeLogStatus `gorm:"type:varchar(50)"`
	ClockIn      time.Time            `gorm:"index"`
	ClockOut     *time.Time
}

// Hours returns the session duration; zero while the session is still open.
func (r TimeLog) Hours() float64 {
	if r.ClockOut == nil {
		return 0
	}
	return r.ClockOut.Sub(r.ClockIn).Hours()
}

func (r TimeLog) ToModel() timelogapimodels.TimeLogView {
	view := timelogapimodels.TimeLogView{
		ID:       r.ID,
		Status:   r.Status,
		ClockIn:  r.ClockIn,
		ClockOut: r.ClockOut,
		Hours:    r.Hours(),
	}
	if r.Technician != nil {
		view.TechnicianName = r.Technician.Name
	}
	return view
}
