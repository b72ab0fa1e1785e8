package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/lib/smtp"
)

// Provider mails cycle decisions to the technician. Failures are logged and
// never fail the transition that triggered them.
type Provider interface {
	CycleApproved(email, technicianName, cycleID string)
	CycleRejected(email, technicianName, cycleID, comment string)
}

var Instance Provider

func NewHandler(from string) {
	Instance = impl{
		from: from,
	}
}

type impl struct {
	from string
}

func (i impl) CycleApproved(email, technicianName, cycleID string) {
	message := fmt.Sprintf("Hello %s,\r\n\r\nyour inspection cycle %s has been approved.", technicianName, cycleID)
	i.send(email, cycleID, message, "inspection cycle approved")
}

func (i impl) CycleRejected(email, technicianName, cycleID, comment string) {
	message := fmt.Sprintf("Hello %s,\r\n\r\nyour inspection cycle %s has been rejected.\r\nApprover comment: %s", technicianName, cycleID, comment)
	i.send(email, cycleID, message, "inspection cycle rejected")
}

func (i impl) send(email, cycleID, message, subject string) {
	if email == "" {
		return
	}
	err := smtp.Instance.SendEMail(i.from, email, message, subject)
	if err != nil {
		log.WithError(err).
			WithField("cycle_id", cycleID).
			Error("failed to send cycle decision notification")
	}
}
