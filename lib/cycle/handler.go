package cyclehandler

import (
	"math"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/db"
	cyclestore "inspection-tools-backend/lib/cycle/store"
	entrystore "inspection-tools-backend/lib/entry/store"
	holidayhandler "inspection-tools-backend/lib/holiday"
	"inspection-tools-backend/lib/notify"
	timeloghandler "inspection-tools-backend/lib/timelog"
	"inspection-tools-backend/lib/utils/helpers"
	"inspection-tools-backend/models"
	cycleapimodels "inspection-tools-backend/models/api/cycle"
	dbmodels "inspection-tools-backend/models/db"
)

// Entry counts of one inspection round; a holiday shortens the rotation.
const (
	regularEntryCount = 7
	holidayEntryCount = 5
)

type Provider interface {
	Create(technicianID string) (view cycleapimodels.CycleView, err error)
	GetByID(userID string, role models.UserRole, id string) (view cycleapimodels.CycleView, err error)
	List(role models.UserRole) (resp cycleapimodels.ListResponse, err error)
	ChangeStatus(userID string, role models.UserRole, id string, data cycleapimodels.StatusChangeData) (view cycleapimodels.CycleView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          cyclestore.NewInstance(db.DB),
		entryStore:     entrystore.NewInstance(db.DB),
		holidayHandler: holidayhandler.Instance,
		timeLogHandler: timeloghandler.Instance,
		notifyHandler:  notify.Instance,
	}
}

type impl struct {
	store          cyclestore.Provider
	entryStore     entrystore.Provider
	holidayHandler holidayhandler.Provider
	timeLogHandler timeloghandler.Provider
	notifyHandler  notify.Provider
}

// Create provisions a new DRAFT cycle with its fixed entry set. The entry
// count is frozen at creation time; later holiday edits never resize a cycle.
func (i impl) Create(technicianID string) (view cycleapimodels.CycleView, err error) {
	logger := log.WithField("technician_id", technicianID)
	open, err := i.store.FindOpenByTechnician(technicianID)
	if err != nil {
		logger.WithError(err).Error("failed to look up open cycle")
		return cycleapimodels.CycleView{}, err
	}
	if open != nil {
		return cycleapimodels.CycleView{}, errors.WithMessage(models.ErrConflict, "technician already has an open cycle")
	}

	isHoliday, err := i.holidayHandler.IsHoliday(time.Now())
	if err != nil {
		logger.WithError(err).Error("holiday lookup failed")
		return cycleapimodels.CycleView{}, err
	}
	entryCount := regularEntryCount
	if isHoliday {
		entryCount = holidayEntryCount
	}

	rec := dbmodels.Cycle{
		TechnicianID: technicianID,
		Status:       models.CycleStatusDraft,
		Entries:      make([]dbmodels.Entry, 0, entryCount),
	}
	for number := 1; number <= entryCount; number++ {
		rec.Entries = append(rec.Entries, dbmodels.Entry{EntryNumber: number})
	}

	// The partial unique index on open cycles turns a concurrent duplicate
	// create into a Conflict instead of a second open cycle.
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to provision cycle")
		return cycleapimodels.CycleView{}, err
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return cycleapimodels.CycleView{}, err
	}
	logger.WithField("cycle_id", id).WithField("entries", entryCount).Info("cycle provisioned")
	return created.ToModel(), nil
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (view cycleapimodels.CycleView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return cycleapimodels.CycleView{}, err
	}
	if rec == nil {
		return cycleapimodels.CycleView{}, errors.WithMessage(models.ErrNotFound, "cycle not found")
	}
	if !role.IsApprover() && rec.TechnicianID != userID {
		return cycleapimodels.CycleView{}, errors.WithMessage(models.ErrForbidden, "cycle belongs to another technician")
	}
	return rec.ToModel(), nil
}

func (i impl) List(role models.UserRole) (resp cycleapimodels.ListResponse, err error) {
	list, err := i.store.List()
	if err != nil {
		return cycleapimodels.ListResponse{}, err
	}
	resp.Cycles = make([]cycleapimodels.CycleView, 0, len(list))
	for _, rec := range list {
		resp.Cycles = append(resp.Cycles, rec.ToModel())
	}
	if role.IsApprover() {
		stats, err := i.collectStats()
		if err != nil {
			return cycleapimodels.ListResponse{}, err
		}
		resp.Stats = stats
	}
	return resp, nil
}

func (i impl) collectStats() (*cycleapimodels.DashboardStats, error) {
	pending, err := i.store.CountByStatus(models.CycleStatusSubmitted)
	if err != nil {
		return nil, err
	}
	approvedToday, err := i.store.CountApprovedSince(helpers.DayStart(time.Now()))
	if err != nil {
		return nil, err
	}
	rejected, err := i.store.CountByStatus(models.CycleStatusRejected)
	if err != nil {
		return nil, err
	}
	hours, err := i.timeLogHandler.TotalHoursToday()
	if err != nil {
		return nil, err
	}
	return &cycleapimodels.DashboardStats{
		PendingCycles:    pending,
		RecentlyApproved: approvedToday,
		RejectedCycles:   rejected,
		TotalHoursToday:  math.Round(hours*10) / 10,
	}, nil
}

// ChangeStatus runs one state machine transition. Guards are evaluated
// against stored state before any write; a failed guard leaves the cycle
// untouched.
func (i impl) ChangeStatus(userID string, role models.UserRole, id string, data cycleapimodels.StatusChangeData) (view cycleapimodels.CycleView, err error) {
	logger := log.WithField("cycle_id", id).WithField("target_status", data.Status)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("failed to load cycle")
		return cycleapimodels.CycleView{}, err
	}
	if rec == nil {
		return cycleapimodels.CycleView{}, errors.WithMessage(models.ErrNotFound, "cycle not found")
	}

	var updMap map[string]interface{}
	switch data.Status {
	case models.CycleStatusSubmitted:
		updMap, err = i.guardSubmit(userID, role, rec)
	case models.CycleStatusApproved:
		updMap, err = guardApprove(role, rec)
	case models.CycleStatusRejected:
		updMap, err = guardReject(role, rec, data.RejectionComment)
	default:
		err = errors.WithMessagef(models.ErrInvalidTransition, "no transition from %s to %s", rec.Status, data.Status)
	}
	if err != nil {
		return cycleapimodels.CycleView{}, err
	}

	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("failed to apply status transition")
		return cycleapimodels.CycleView{}, err
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return cycleapimodels.CycleView{}, err
	}
	logger.WithField("previous_status", rec.Status).Info("cycle status changed")

	if updated.Technician != nil {
		switch data.Status {
		case models.CycleStatusApproved:
			i.notifyHandler.CycleApproved(updated.Technician.Email, updated.Technician.Name, updated.ID)
		case models.CycleStatusRejected:
			i.notifyHandler.CycleRejected(updated.Technician.Email, updated.Technician.Name, updated.ID, data.RejectionComment)
		}
	}
	return updated.ToModel(), nil
}

// guardSubmit covers DRAFT→SUBMITTED and the REJECTED→SUBMITTED resubmission
// loop. Completion is recomputed from the stored entries, never taken from
// the client.
func (i impl) guardSubmit(userID string, role models.UserRole, rec *dbmodels.Cycle) (map[string]interface{}, error) {
	if role.IsApprover() || rec.TechnicianID != userID {
		return nil, errors.WithMessage(models.ErrForbidden, "only the owning technician submits a cycle")
	}
	if !rec.Status.CanEdit() {
		return nil, errors.WithMessagef(models.ErrInvalidTransition, "no transition from %s to %s", rec.Status, models.CycleStatusSubmitted)
	}
	entries, err := i.entryStore.ListByCycle(rec.ID)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsCompleted {
			return nil, errors.WithMessagef(models.ErrInvalidTransition, "entry %d is not completed", entry.EntryNumber)
		}
	}
	return map[string]interface{}{
		"status":            models.CycleStatusSubmitted,
		"submitted_at":      time.Now(),
		"rejection_comment": nil,
	}, nil
}

func guardApprove(role models.UserRole, rec *dbmodels.Cycle) (map[string]interface{}, error) {
	if !role.IsApprover() {
		return nil, errors.WithMessage(models.ErrForbidden, "only an approver approves a cycle")
	}
	if rec.Status != models.CycleStatusSubmitted {
		return nil, errors.WithMessagef(models.ErrInvalidTransition, "no transition from %s to %s", rec.Status, models.CycleStatusApproved)
	}
	return map[string]interface{}{
		"status":      models.CycleStatusApproved,
		"approved_at": time.Now(),
	}, nil
}

func guardReject(role models.UserRole, rec *dbmodels.Cycle, comment string) (map[string]interface{}, error) {
	if !role.IsApprover() {
		return nil, errors.WithMessage(models.ErrForbidden, "only an approver rejects a cycle")
	}
	if rec.Status != models.CycleStatusSubmitted {
		return nil, errors.WithMessagef(models.ErrInvalidTransition, "no transition from %s to %s", rec.Status, models.CycleStatusRejected)
	}
	if comment == "" {
		return nil, errors.WithMessage(models.ErrInvalidTransition, "rejection requires a comment")
	}
	return map[string]interface{}{
		"status":            models.CycleStatusRejected,
		"rejection_comment": comment,
	}, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.WithMessage(models.ErrNotFound, "cycle not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		log.WithError(err).WithField("cycle_id", id).Error("failed to delete cycle")
		return err
	}
	log.WithField("cycle_id", id).Info("cycle deleted")
	return nil
}
