package models

type CycleStatus string

const (
	CycleStatusDraft     CycleStatus = "DRAFT"
	CycleStatusSubmitted CycleStatus = "SUBMITTED"
	CycleStatusApproved  CycleStatus = "APPROVED"
	CycleStatusRejected  CycleStatus = "REJECTED"
)

// CanEdit reports whether the technician may still change the cycle's entries.
func (s CycleStatus) CanEdit() bool {
	return s == CycleStatusDraft || s == CycleStatusRejected
}

func (s CycleStatus) IsValid() bool {
	switch s {
	case CycleStatusDraft, CycleStatusSubmitted, CycleStatusApproved, CycleStatusRejected:
		return true
	}
	return false
}

type TimeLogStatus string

const (
	TimeLogStatusClockedIn  TimeLogStatus = "CLOCKED_IN"
	TimeLogStatusClockedOut TimeLogStatus = "CLOCKED_OUT"
)
