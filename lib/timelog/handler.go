package timeloghandler

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/db"
	xlsexport "inspection-tools-backend/lib/export/xls"
	timelogstore "inspection-tools-backend/lib/timelog/store"
	"inspection-tools-backend/lib/utils/helpers"
	"inspection-tools-backend/models"
	timelogapimodels "inspection-tools-backend/models/api/timelog"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	ClockIn(technicianID string) (view timelogapimodels.TimeLogView, err error)
	ClockOut(technicianID string) (view timelogapimodels.TimeLogView, err error)
	Latest(technicianID string) (view *timelogapimodels.TimeLogView, err error)
	ListAll() (list []timelogapimodels.TimeLogView, err error)
	TotalHoursToday() (hours float64, err error)
	ExportToday() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  timelogstore.NewInstance(db.DB),
		export: xlsexport.Instance,
	}
}

type impl struct {
	store  timelogstore.Provider
	export xlsexport.Provider
}

func (i impl) ClockIn(technicianID string) (view timelogapimodels.TimeLogView, err error) {
	logger := log.WithField("technician_id", technicianID)
	open, err := i.store.FindOpenByTechnician(technicianID)
	if err != nil {
		logger.WithError(err).Error("failed to look up open clock session")
		return timelogapimodels.TimeLogView{}, err
	}
	if open != nil {
		return timelogapimodels.TimeLogView{}, errors.WithMessage(models.ErrConflict, "technician is already clocked in")
	}
	rec := dbmodels.TimeLog{
		TechnicianID: technicianID,
		Status:       models.TimeLogStatusClockedIn,
		ClockIn:      time.Now(),
	}
	// The partial unique index turns a concurrent duplicate clock-in into a
	// Conflict here instead of a second open session.
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create clock session")
		return timelogapimodels.TimeLogView{}, err
	}
	rec.ID = id
	logger.Info("technician clocked in")
	return rec.ToModel(), nil
}

func (i impl) ClockOut(technicianID string) (view timelogapimodels.TimeLogView, err error) {
	logger := log.WithField("technician_id", technicianID)
	open, err := i.store.FindOpenByTechnician(technicianID)
	if err != nil {
		logger.WithError(err).Error("failed to look up open clock session")
		return timelogapimodels.TimeLogView{}, err
	}
	if open == nil {
		return timelogapimodels.TimeLogView{}, errors.WithMessage(models.ErrNotFound, "no active clock-in session found to clock out")
	}
	now := time.Now()
	err = i.store.Update(open.ID, map[string]interface{}{
		"status":    models.TimeLogStatusClockedOut,
		"clock_out": now,
	})
	if err != nil {
		logger.WithError(err).Error("failed to close clock session")
		return timelogapimodels.TimeLogView{}, err
	}
	open.Status = models.TimeLogStatusClockedOut
	open.ClockOut = &now
	logger.Info("technician clocked out")
	return open.ToModel(), nil
}

func (i impl) Latest(technicianID string) (*timelogapimodels.TimeLogView, error) {
	rec, err := i.store.Latest(technicianID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) ListAll() (list []timelogapimodels.TimeLogView, err error) {
	recs, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	list = make([]timelogapimodels.TimeLogView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// TotalHoursToday sums the closed sessions started since local midnight,
// across all technicians.
func (i impl) TotalHoursToday() (hours float64, err error) {
	recs, err := i.store.ListClosedSince(helpers.DayStart(time.Now()))
	if err != nil {
		return 0, err
	}
	for _, rec := range recs {
		hours += rec.Hours()
	}
	return hours, nil
}

func (i impl) ExportToday() (*bytes.Buffer, error) {
	recs, err := i.store.ListClosedSince(helpers.DayStart(time.Now()))
	if err != nil {
		return nil, err
	}
	return i.export.ExportTimeLogList(recs)
}
