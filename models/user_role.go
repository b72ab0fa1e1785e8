package models

type UserRole string

const (
	TechnicianRole UserRole = "TECHNICIAN"
	ApproverRole   UserRole = "APPROVER"
)

var roleHumanName = map[UserRole]string{
	TechnicianRole: "Technician",
	ApproverRole:   "Approver",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsApprover() bool {
	return r == ApproverRole
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
