package entryhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inspection-tools-backend/models"
	entryapimodels "inspection-tools-backend/models/api/entry"
	dbmodels "inspection-tools-backend/models/db"
)

type fakeEntryStore struct {
	entries map[string]*dbmodels.Entry
}

func (f *fakeEntryStore) GetByID(id string) (*dbmodels.Entry, error) {
	return f.entries[id], nil
}

func (f *fakeEntryStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.entries[id]
	if rec == nil {
		return models.ErrNotFound
	}
	if v, ok := updMap["is_completed"]; ok {
		rec.IsCompleted = v.(bool)
	}
	if v, ok := updMap["data"]; ok {
		rec.Data = v.(models.EntryDocument)
	}
	return nil
}

func (f *fakeEntryStore) ListByCycle(cycleID string) ([]dbmodels.Entry, error) {
	list := []dbmodels.Entry{}
	for _, rec := range f.entries {
		if rec.CycleID == cycleID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeCycleStore struct {
	cycles map[string]*dbmodels.Cycle
}

func (f *fakeCycleStore) Create(rec dbmodels.Cycle) (string, error) { return "", nil }

func (f *fakeCycleStore) GetByID(id string) (*dbmodels.Cycle, error) {
	return f.cycles[id], nil
}

func (f *fakeCycleStore) List() ([]dbmodels.Cycle, error) { return nil, nil }

func (f *fakeCycleStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeCycleStore) Delete(id string) error { return nil }

func (f *fakeCycleStore) FindOpenByTechnician(technicianID string) (*dbmodels.Cycle, error) {
	return nil, nil
}

func (f *fakeCycleStore) CountByStatus(status models.CycleStatus) (int64, error) { return 0, nil }

func (f *fakeCycleStore) CountApprovedSince(since time.Time) (int64, error) { return 0, nil }

func newTestHandler(cycleStatus models.CycleStatus) (impl, *fakeEntryStore) {
	entryStore := &fakeEntryStore{entries: map[string]*dbmodels.Entry{
		"entry-1": {
			BaseModel:   dbmodels.BaseModel{ID: "entry-1"},
			CycleID:     "cycle-1",
			EntryNumber: 1,
		},
	}}
	cycleStore := &fakeCycleStore{cycles: map[string]*dbmodels.Cycle{
		"cycle-1": {
			BaseModel:    dbmodels.BaseModel{ID: "cycle-1"},
			TechnicianID: "tech-1",
			Status:       cycleStatus,
		},
	}}
	return impl{store: entryStore, cycleStore: cycleStore}, entryStore
}

func TestGetByID(t *testing.T) {
	handler, _ := newTestHandler(models.CycleStatusDraft)

	view, err := handler.GetByID("tech-1", models.TechnicianRole, "entry-1")
	require.NoError(t, err)
	require.Equal(t, "cycle-1", view.CycleID)
	require.Equal(t, 1, view.EntryNumber)

	_, err = handler.GetByID("appr-1", models.ApproverRole, "entry-1")
	require.NoError(t, err)

	// a foreign technician gets 403, not 404
	_, err = handler.GetByID("tech-2", models.TechnicianRole, "entry-1")
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = handler.GetByID("tech-1", models.TechnicianRole, "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubmitData(t *testing.T) {
	readings := entryapimodels.SubmitData{Data: models.EntryDocument{
		"avr":     {"voltage": "220", "status": "OK"},
		"ups40_1": {"charge": "98"},
	}}

	t.Run(`saves readings and marks the entry completed`, func(t *testing.T) {
		handler, store := newTestHandler(models.CycleStatusDraft)
		view, err := handler.SubmitData("tech-1", models.TechnicianRole, "entry-1", readings)
		require.NoError(t, err)
		require.True(t, view.IsCompleted)
		require.Equal(t, readings.Data, view.Data)
		require.True(t, store.entries["entry-1"].IsCompleted)
	})

	t.Run(`rejected cycle stays editable`, func(t *testing.T) {
		handler, _ := newTestHandler(models.CycleStatusRejected)
		_, err := handler.SubmitData("tech-1", models.TechnicianRole, "entry-1", readings)
		require.NoError(t, err)
	})

	t.Run(`submitted and approved cycles are frozen`, func(t *testing.T) {
		for _, status := range []models.CycleStatus{models.CycleStatusSubmitted, models.CycleStatusApproved} {
			handler, store := newTestHandler(status)
			_, err := handler.SubmitData("tech-1", models.TechnicianRole, "entry-1", readings)
			require.ErrorIs(t, err, models.ErrInvalidTransition)
			require.False(t, store.entries["entry-1"].IsCompleted)
		}
	})

	t.Run(`approvers and foreign technicians cannot submit`, func(t *testing.T) {
		handler, _ := newTestHandler(models.CycleStatusDraft)
		_, err := handler.SubmitData("appr-1", models.ApproverRole, "entry-1", readings)
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = handler.SubmitData("tech-2", models.TechnicianRole, "entry-1", readings)
		require.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestSubmitDataValidate(t *testing.T) {
	require.Error(t, entryapimodels.SubmitData{}.Validate())
	require.NoError(t, entryapimodels.SubmitData{Data: models.EntryDocument{"avr": {}}}.Validate())
}
