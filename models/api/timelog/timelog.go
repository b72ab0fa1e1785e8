package timelogapimodels

import (
	"time"

	"inspection-tools-backend/models"
)

type TimeLogView struct {
	ID             string               `json:"id"`
	TechnicianName string               `json:"technician_name,omitempty"`
	Status         models.TimeLogStatus `json:"status"`
	ClockIn        time.Time            `json:"clock_in"`
	ClockOut       *time.Time           `json:"clock_out,omitempty"`
	Hours          float64              `json:"hours"`
}
