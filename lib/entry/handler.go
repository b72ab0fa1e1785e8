package entryhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/db"
	cyclestore "inspection-tools-backend/lib/cycle/store"
	entrystore "inspection-tools-backend/lib/entry/store"
	"inspection-tools-backend/models"
	entryapimodels "inspection-tools-backend/models/api/entry"
)

type Provider interface {
	GetByID(userID string, role models.UserRole, id string) (view entryapimodels.EntryView, err error)
	SubmitData(userID string, role models.UserRole, id string, data entryapimodels.SubmitData) (view entryapimodels.EntryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      entrystore.NewInstance(db.DB),
		cycleStore: cyclestore.NewInstance(db.DB),
	}
}

type impl struct {
	store      entrystore.Provider
	cycleStore cyclestore.Provider
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (view entryapimodels.EntryView, err error) {
	entry, err := i.loadOwned(userID, role, id)
	if err != nil {
		return entryapimodels.EntryView{}, err
	}
	return entry.view, nil
}

// SubmitData overwrites the entry's reading document wholesale and marks it
// completed. There is no partial save.
func (i impl) SubmitData(userID string, role models.UserRole, id string, data entryapimodels.SubmitData) (view entryapimodels.EntryView, err error) {
	logger := log.WithField("entry_id", id)
	entry, err := i.loadOwned(userID, role, id)
	if err != nil {
		return entryapimodels.EntryView{}, err
	}
	if role.IsApprover() {
		return entryapimodels.EntryView{}, errors.WithMessage(models.ErrForbidden, "only the technician submits entry readings")
	}
	if !entry.cycleStatus.CanEdit() {
		return entryapimodels.EntryView{}, errors.WithMessage(models.ErrInvalidTransition, "cycle is no longer editable")
	}
	err = i.store.Update(id, map[string]interface{}{
		"data":         data.Data,
		"is_completed": true,
	})
	if err != nil {
		logger.WithError(err).Error("failed to save entry readings")
		return entryapimodels.EntryView{}, err
	}
	entry.view.Data = data.Data
	entry.view.IsCompleted = true
	logger.WithField("cycle_id", entry.view.CycleID).Info("entry readings submitted")
	return entry.view, nil
}

type ownedEntry struct {
	view        entryapimodels.EntryView
	cycleStatus models.CycleStatus
}

// loadOwned resolves the entry together with its parent cycle and applies
// the ownership rule: approvers see everything, a technician only their own.
// A foreign entry yields Forbidden, not NotFound.
func (i impl) loadOwned(userID string, role models.UserRole, id string) (ownedEntry, error) {
	entry, err := i.store.GetByID(id)
	if err != nil {
		return ownedEntry{}, err
	}
	if entry == nil {
		return ownedEntry{}, errors.WithMessage(models.ErrNotFound, "entry not found")
	}
	cycle, err := i.cycleStore.GetByID(entry.CycleID)
	if err != nil {
		return ownedEntry{}, err
	}
	if cycle == nil {
		return ownedEntry{}, errors.WithMessage(models.ErrNotFound, "cycle not found")
	}
	if !role.IsApprover() && cycle.TechnicianID != userID {
		return ownedEntry{}, errors.WithMessage(models.ErrForbidden, "entry belongs to another technician")
	}
	return ownedEntry{
		view:        entry.ToModel(),
		cycleStatus: cycle.Status,
	}, nil
}
