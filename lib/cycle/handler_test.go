package cyclehandler

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inspection-tools-backend/models"
	cycleapimodels "inspection-tools-backend/models/api/cycle"
	holidayapimodels "inspection-tools-backend/models/api/holiday"
	timelogapimodels "inspection-tools-backend/models/api/timelog"
	dbmodels "inspection-tools-backend/models/db"
)

type fakeCycleStore struct {
	cycles map[string]*dbmodels.Cycle
	seq    int
}

func newFakeCycleStore() *fakeCycleStore {
	return &fakeCycleStore{cycles: map[string]*dbmodels.Cycle{}}
}

func (f *fakeCycleStore) Create(rec dbmodels.Cycle) (string, error) {
	for _, existing := range f.cycles {
		if existing.TechnicianID == rec.TechnicianID && existing.Status.CanEdit() {
			return "", models.ErrConflict
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("cycle-%d", f.seq)
	for idx := range rec.Entries {
		rec.Entries[idx].ID = fmt.Sprintf("%s-entry-%d", rec.ID, idx+1)
		rec.Entries[idx].CycleID = rec.ID
	}
	rec.CreatedAt = time.Now()
	f.cycles[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCycleStore) GetByID(id string) (*dbmodels.Cycle, error) {
	return f.cycles[id], nil
}

func (f *fakeCycleStore) List() ([]dbmodels.Cycle, error) {
	list := []dbmodels.Cycle{}
	for _, rec := range f.cycles {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeCycleStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.cycles[id]
	if rec == nil {
		return models.ErrNotFound
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.CycleStatus)
	}
	if v, ok := updMap["submitted_at"]; ok {
		t := v.(time.Time)
		rec.SubmittedAt = &t
	}
	if v, ok := updMap["approved_at"]; ok {
		t := v.(time.Time)
		rec.ApprovedAt = &t
	}
	if v, ok := updMap["rejection_comment"]; ok {
		if v == nil {
			rec.RejectionComment = nil
		} else {
			s := v.(string)
			rec.RejectionComment = &s
		}
	}
	return nil
}

func (f *fakeCycleStore) Delete(id string) error {
	rec := f.cycles[id]
	if rec != nil {
		rec.Entries = nil
	}
	delete(f.cycles, id)
	return nil
}

func (f *fakeCycleStore) FindOpenByTechnician(technicianID string) (*dbmodels.Cycle, error) {
	for _, rec := range f.cycles {
		if rec.TechnicianID == technicianID && rec.Status.CanEdit() {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeCycleStore) CountByStatus(status models.CycleStatus) (int64, error) {
	var count int64
	for _, rec := range f.cycles {
		if rec.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeCycleStore) CountApprovedSince(since time.Time) (int64, error) {
	var count int64
	for _, rec := range f.cycles {
		if rec.Status == models.CycleStatusApproved && rec.ApprovedAt != nil && !rec.ApprovedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeEntryStore struct {
	cycleStore *fakeCycleStore
}

func (f *fakeEntryStore) GetByID(id string) (*dbmodels.Entry, error) {
	for _, rec := range f.cycleStore.cycles {
		for idx := range rec.Entries {
			if rec.Entries[idx].ID == id {
				return &rec.Entries[idx], nil
			}
		}
	}
	return nil, nil
}

func (f *fakeEntryStore) Update(id string, updMap map[string]interface{}) error {
	entry, _ := f.GetByID(id)
	if entry == nil {
		return models.ErrNotFound
	}
	if v, ok := updMap["is_completed"]; ok {
		entry.IsCompleted = v.(bool)
	}
	if v, ok := updMap["data"]; ok {
		entry.Data = v.(models.EntryDocument)
	}
	return nil
}

func (f *fakeEntryStore) ListByCycle(cycleID string) ([]dbmodels.Entry, error) {
	rec := f.cycleStore.cycles[cycleID]
	if rec == nil {
		return nil, nil
	}
	return rec.Entries, nil
}

type fakeHolidayHandler struct {
	holiday bool
}

func (f fakeHolidayHandler) IsHoliday(day time.Time) (bool, error) { return f.holiday, nil }

func (f fakeHolidayHandler) List() ([]holidayapimodels.HolidayView, error) { return nil, nil }

func (f fakeHolidayHandler) Add(data holidayapimodels.HolidayData) (holidayapimodels.HolidayView, error) {
	return holidayapimodels.HolidayView{}, nil
}

func (f fakeHolidayHandler) Delete(data holidayapimodels.HolidayData) error { return nil }

type fakeTimeLogHandler struct {
	hours float64
}

func (f fakeTimeLogHandler) ClockIn(technicianID string) (timelogapimodels.TimeLogView, error) {
	return timelogapimodels.TimeLogView{}, nil
}
func (f fakeTimeLogHandler) ClockOut(technicianID string) (timelogapimodels.TimeLogView, error) {
	return timelogapimodels.TimeLogView{}, nil
}
func (f fakeTimeLogHandler) Latest(technicianID string) (*timelogapimodels.TimeLogView, error) {
	return nil, nil
}
func (f fakeTimeLogHandler) ListAll() ([]timelogapimodels.TimeLogView, error) { return nil, nil }
func (f fakeTimeLogHandler) TotalHoursToday() (float64, error)                { return f.hours, nil }
func (f fakeTimeLogHandler) ExportToday() (*bytes.Buffer, error)              { return &bytes.Buffer{}, nil }

type fakeNotify struct {
	approved []string
	rejected []string
	comments []string
}

func (f *fakeNotify) CycleApproved(email, technicianName, cycleID string) {
	f.approved = append(f.approved, cycleID)
}

func (f *fakeNotify) CycleRejected(email, technicianName, cycleID, comment string) {
	f.rejected = append(f.rejected, cycleID)
	f.comments = append(f.comments, comment)
}

func newTestHandler(holiday bool) (impl, *fakeCycleStore, *fakeNotify) {
	store := newFakeCycleStore()
	notifier := &fakeNotify{}
	handler := impl{
		store:          store,
		entryStore:     &fakeEntryStore{cycleStore: store},
		holidayHandler: fakeHolidayHandler{holiday: holiday},
		timeLogHandler: fakeTimeLogHandler{hours: 12.34},
		notifyHandler:  notifier,
	}
	return handler, store, notifier
}

func completeAllEntries(store *fakeCycleStore, cycleID string) {
	rec := store.cycles[cycleID]
	for idx := range rec.Entries {
		rec.Entries[idx].IsCompleted = true
		rec.Entries[idx].Data = models.EntryDocument{"avr": {"voltage": "220"}}
	}
}

func TestCreate(t *testing.T) {
	t.Run(`regular day provisions 7 entries, numbered 1..7`, func(t *testing.T) {
		handler, _, _ := newTestHandler(false)
		view, err := handler.Create("tech-1")
		require.NoError(t, err)
		require.Equal(t, models.CycleStatusDraft, view.Status)
		require.Equal(t, 7, view.EntryCount)
		require.Equal(t, 0, view.CompletedCount)
		require.Len(t, view.Entries, 7)
		for idx, entry := range view.Entries {
			require.Equal(t, idx+1, entry.EntryNumber)
			require.False(t, entry.IsCompleted)
		}
	})

	t.Run(`holiday provisions 5 entries`, func(t *testing.T) {
		handler, _, _ := newTestHandler(true)
		view, err := handler.Create("tech-1")
		require.NoError(t, err)
		require.Equal(t, 5, view.EntryCount)
		require.Len(t, view.Entries, 5)
	})

	t.Run(`second open cycle is a conflict`, func(t *testing.T) {
		handler, _, _ := newTestHandler(false)
		_, err := handler.Create("tech-1")
		require.NoError(t, err)
		_, err = handler.Create("tech-1")
		require.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run(`another technician is unaffected`, func(t *testing.T) {
		handler, _, _ := newTestHandler(false)
		_, err := handler.Create("tech-1")
		require.NoError(t, err)
		_, err = handler.Create("tech-2")
		require.NoError(t, err)
	})
}

func TestChangeStatus(t *testing.T) {
	submit := cycleapimodels.StatusChangeData{Status: models.CycleStatusSubmitted}
	approve := cycleapimodels.StatusChangeData{Status: models.CycleStatusApproved}

	t.Run(`incomplete cycle cannot be submitted`, func(t *testing.T) {
		handler, store, _ := newTestHandler(false)
		view, err := handler.Create("tech-1")
		require.NoError(t, err)

		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, view.ID, submit)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
		require.Equal(t, models.CycleStatusDraft, store.cycles[view.ID].Status)

		// even with a single incomplete entry
		completeAllEntries(store, view.ID)
		store.cycles[view.ID].Entries[3].IsCompleted = false
		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, view.ID, submit)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run(`full lifecycle with rejection and resubmission`, func(t *testing.T) {
		handler, store, notifier := newTestHandler(false)
		created, err := handler.Create("tech-1")
		require.NoError(t, err)
		completeAllEntries(store, created.ID)
		store.cycles[created.ID].Technician = &dbmodels.User{Name: "Jordan", Email: "jordan@example.com"}

		submitted, err := handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID, submit)
		require.NoError(t, err)
		require.Equal(t, models.CycleStatusSubmitted, submitted.Status)
		require.NotNil(t, submitted.SubmittedAt)
		firstSubmittedAt := *submitted.SubmittedAt

		rejected, err := handler.ChangeStatus("appr-1", models.ApproverRole, created.ID,
			cycleapimodels.StatusChangeData{Status: models.CycleStatusRejected, RejectionComment: "recheck UPS2"})
		require.NoError(t, err)
		require.Equal(t, models.CycleStatusRejected, rejected.Status)
		require.NotNil(t, rejected.RejectionComment)
		require.Equal(t, "recheck UPS2", *rejected.RejectionComment)
		require.Equal(t, []string{created.ID}, notifier.rejected)
		require.Equal(t, []string{"recheck UPS2"}, notifier.comments)

		resubmitted, err := handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID, submit)
		require.NoError(t, err)
		require.Equal(t, models.CycleStatusSubmitted, resubmitted.Status)
		require.Nil(t, resubmitted.RejectionComment)
		require.NotNil(t, resubmitted.SubmittedAt)
		require.False(t, resubmitted.SubmittedAt.Before(firstSubmittedAt))

		approved, err := handler.ChangeStatus("appr-1", models.ApproverRole, created.ID, approve)
		require.NoError(t, err)
		require.Equal(t, models.CycleStatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedAt)
		require.Equal(t, []string{created.ID}, notifier.approved)
	})

	t.Run(`guards and roles`, func(t *testing.T) {
		handler, store, _ := newTestHandler(false)
		created, err := handler.Create("tech-1")
		require.NoError(t, err)
		completeAllEntries(store, created.ID)

		// approver cannot submit, foreign technician cannot submit
		_, err = handler.ChangeStatus("appr-1", models.ApproverRole, created.ID, submit)
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = handler.ChangeStatus("tech-2", models.TechnicianRole, created.ID, submit)
		require.ErrorIs(t, err, models.ErrForbidden)

		// approving a draft is out of order
		_, err = handler.ChangeStatus("appr-1", models.ApproverRole, created.ID, approve)
		require.ErrorIs(t, err, models.ErrInvalidTransition)

		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID, submit)
		require.NoError(t, err)

		// technician cannot approve own cycle
		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID, approve)
		require.ErrorIs(t, err, models.ErrForbidden)

		// rejection without a comment is refused
		_, err = handler.ChangeStatus("appr-1", models.ApproverRole, created.ID,
			cycleapimodels.StatusChangeData{Status: models.CycleStatusRejected})
		require.ErrorIs(t, err, models.ErrInvalidTransition)
		require.Equal(t, models.CycleStatusSubmitted, store.cycles[created.ID].Status)

		// submitted cycle cannot be re-submitted
		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID, submit)
		require.ErrorIs(t, err, models.ErrInvalidTransition)

		_, err = handler.ChangeStatus("appr-1", models.ApproverRole, created.ID, approve)
		require.NoError(t, err)

		// approved is terminal
		_, err = handler.ChangeStatus("appr-1", models.ApproverRole, created.ID, approve)
		require.ErrorIs(t, err, models.ErrInvalidTransition)

		// unknown cycle
		_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, "missing", submit)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestGetByID(t *testing.T) {
	handler, _, _ := newTestHandler(false)
	created, err := handler.Create("tech-1")
	require.NoError(t, err)

	_, err = handler.GetByID("tech-1", models.TechnicianRole, created.ID)
	require.NoError(t, err)

	_, err = handler.GetByID("appr-1", models.ApproverRole, created.ID)
	require.NoError(t, err)

	// a foreign technician gets 403, not 404
	_, err = handler.GetByID("tech-2", models.TechnicianRole, created.ID)
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = handler.GetByID("tech-1", models.TechnicianRole, "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDelete(t *testing.T) {
	handler, store, _ := newTestHandler(false)
	created, err := handler.Create("tech-1")
	require.NoError(t, err)

	require.NoError(t, handler.Delete(created.ID))
	require.Nil(t, store.cycles[created.ID])

	require.ErrorIs(t, handler.Delete(created.ID), models.ErrNotFound)
}

func TestStats(t *testing.T) {
	handler, store, _ := newTestHandler(false)
	created, err := handler.Create("tech-1")
	require.NoError(t, err)
	completeAllEntries(store, created.ID)
	_, err = handler.ChangeStatus("tech-1", models.TechnicianRole, created.ID,
		cycleapimodels.StatusChangeData{Status: models.CycleStatusSubmitted})
	require.NoError(t, err)

	resp, err := handler.List(models.ApproverRole)
	require.NoError(t, err)
	require.NotNil(t, resp.Stats)
	require.Equal(t, int64(1), resp.Stats.PendingCycles)
	require.Equal(t, int64(0), resp.Stats.RecentlyApproved)
	require.Equal(t, 12.3, resp.Stats.TotalHoursToday)

	// technicians get no stats card
	resp, err = handler.List(models.TechnicianRole)
	require.NoError(t, err)
	require.Nil(t, resp.Stats)
}
