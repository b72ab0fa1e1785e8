package holidayhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/db"
	holidaystore "inspection-tools-backend/lib/holiday/store"
	"inspection-tools-backend/lib/utils/helpers"
	holidayapimodels "inspection-tools-backend/models/api/holiday"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	List() (list []holidayapimodels.HolidayView, err error)
	Add(data holidayapimodels.HolidayData) (view holidayapimodels.HolidayView, err error)
	Delete(data holidayapimodels.HolidayData) error
	IsHoliday(day time.Time) (bool, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: holidaystore.NewInstance(db.DB),
	}
}

type impl struct {
	store holidaystore.Provider
}

func (i impl) List() (list []holidayapimodels.HolidayView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]holidayapimodels.HolidayView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Add(data holidayapimodels.HolidayData) (view holidayapimodels.HolidayView, err error) {
	date, err := data.Parse()
	if err != nil {
		return holidayapimodels.HolidayView{}, err
	}
	rec := dbmodels.Holiday{
		Date: helpers.DateUTC(date),
	}
	id, err := i.store.Add(rec)
	if err != nil {
		log.WithError(err).WithField("date", data.Date).Error("failed to add holiday")
		return holidayapimodels.HolidayView{}, err
	}
	rec.ID = id
	return rec.ToModel(), nil
}

func (i impl) Delete(data holidayapimodels.HolidayData) error {
	date, err := data.Parse()
	if err != nil {
		return err
	}
	return i.store.DeleteByDate(helpers.DateUTC(date))
}

// IsHoliday reports whether day's calendar date is on the holiday calendar.
func (i impl) IsHoliday(day time.Time) (bool, error) {
	rec, err := i.store.GetByDate(helpers.DateUTC(day))
	if err != nil {
		return false, errors.WithMessage(err, "holiday lookup failed")
	}
	return rec != nil, nil
}
