package rbac

import (
	"inspection-tools-backend/models"
)

var (
	technicianOnly = []models.UserRole{models.TechnicianRole}
	approverOnly   = []models.UserRole{models.ApproverRole}
)

// initRules registers the role rules for every mutating route. Ownership of
// the target entity is re-checked inside the handlers.
func (i *impl) initRules() {
	i.RegisterRule(technicianOnly, "/api/v1/cycles [post]", nil)
	i.RegisterRule(approverOnly, "/api/v1/cycles/{id} [delete]", nil)
	i.RegisterRule(technicianOnly, "/api/v1/entries/{id} [put]", nil)
	i.RegisterRule(approverOnly, "/api/v1/holidays [post]", nil)
	i.RegisterRule(approverOnly, "/api/v1/holidays [delete]", nil)
	i.RegisterRule(technicianOnly, "/api/v1/timelog [post]", nil)
	i.RegisterRule(technicianOnly, "/api/v1/timelog [put]", nil)
	i.RegisterRule(approverOnly, "/api/v1/timelog/export [get]", nil)
}
