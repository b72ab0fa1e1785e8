package holidayapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type HolidayView struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

type HolidayData struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r HolidayData) Validate() error {
	if r.Date == "" {
		return errors.New("date is required")
	}
	if _, err := r.Parse(); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}

// Parse returns the holiday date pinned to midnight UTC.
func (r HolidayData) Parse() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.Date, time.UTC)
}
