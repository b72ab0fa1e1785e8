package holidayhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inspection-tools-backend/models"
	holidayapimodels "inspection-tools-backend/models/api/holiday"
	dbmodels "inspection-tools-backend/models/db"
)

type fakeHolidayStore struct {
	holidays map[time.Time]*dbmodels.Holiday
	seq      int
}

func newFakeHolidayStore() *fakeHolidayStore {
	return &fakeHolidayStore{holidays: map[time.Time]*dbmodels.Holiday{}}
}

func (f *fakeHolidayStore) Add(rec dbmodels.Holiday) (string, error) {
	if _, exist := f.holidays[rec.Date]; exist {
		return "", models.ErrConflict
	}
	f.seq++
	rec.ID = fmt.Sprintf("holiday-%d", f.seq)
	f.holidays[rec.Date] = &rec
	return rec.ID, nil
}

func (f *fakeHolidayStore) GetByDate(date time.Time) (*dbmodels.Holiday, error) {
	return f.holidays[date], nil
}

func (f *fakeHolidayStore) List() ([]dbmodels.Holiday, error) {
	list := []dbmodels.Holiday{}
	for _, rec := range f.holidays {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeHolidayStore) DeleteByDate(date time.Time) error {
	if _, exist := f.holidays[date]; !exist {
		return models.ErrNotFound
	}
	delete(f.holidays, date)
	return nil
}

func TestHolidayCalendar(t *testing.T) {
	handler := impl{store: newFakeHolidayStore()}
	data := holidayapimodels.HolidayData{Date: "2026-01-01"}

	t.Run(`add and look up`, func(t *testing.T) {
		view, err := handler.Add(data)
		require.NoError(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), view.Date)

		// any clock time on that day matches
		noon := time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC)
		isHoliday, err := handler.IsHoliday(noon)
		require.NoError(t, err)
		require.True(t, isHoliday)

		isHoliday, err = handler.IsHoliday(noon.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.False(t, isHoliday)
	})

	t.Run(`duplicate date is a conflict`, func(t *testing.T) {
		_, err := handler.Add(data)
		require.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run(`delete`, func(t *testing.T) {
		require.NoError(t, handler.Delete(data))
		isHoliday, err := handler.IsHoliday(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.False(t, isHoliday)

		require.ErrorIs(t, handler.Delete(data), models.ErrNotFound)
	})

	t.Run(`malformed date is rejected`, func(t *testing.T) {
		require.Error(t, holidayapimodels.HolidayData{Date: "01.01.2026"}.Validate())
		_, err := handler.Add(holidayapimodels.HolidayData{Date: "not-a-date"})
		require.Error(t, err)
	})
}
