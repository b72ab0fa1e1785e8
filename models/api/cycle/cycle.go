package cycleapimodels

import (
	"time"

	"github.com/pkg/errors"

	"inspection-tools-backend/models"
	authapimodels "inspection-tools-backend/models/api/auth"
	entryapimodels "inspection-tools-backend/models/api/entry"
)

type CycleView struct {
	ID               string                     `json:"id"`
	Status           models.CycleStatus         `json:"status"`
	CreatedAt        time.Time                  `json:"created_at"`
	SubmittedAt      *time.Time                 `json:"submitted_at,omitempty"`
	ApprovedAt       *time.Time                 `json:"approved_at,omitempty"`
	RejectionComment *string                    `json:"rejection_comment,omitempty"`
	Technician       *authapimodels.UserView    `json:"technician,omitempty"`
	Entries          []entryapimodels.EntryView `json:"entries"`
	EntryCount       int                        `json:"entry_count"`
	CompletedCount   int                        `json:"completed_count"`
	CanEdit          bool                       `json:"can_edit"`
}

// StatusChangeData is the state machine trigger payload.
type StatusChangeData struct {
	Status           models.CycleStatus `json:"status"`
	RejectionComment string             `json:"rejection_comment"`
}

func (r StatusChangeData) Validate() error {
	if r.Status == "" {
		return errors.New("status is required")
	}
	if !r.Status.IsValid() {
		return errors.Errorf("unknown status: %s", r.Status)
	}
	return nil
}

// DashboardStats is the approver's daily stats card.
type DashboardStats struct {
	PendingCycles    int64   `json:"pending_cycles"`
	RecentlyApproved int64   `json:"recently_approved"`
	RejectedCycles   int64   `json:"rejected_cycles"`
	TotalHoursToday  float64 `json:"total_hours_today"`
}

type ListResponse struct {
	Cycles []CycleView     `json:"cycles"`
	Stats  *DashboardStats `json:"stats,omitempty"`
}
