package holidaystore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"inspection-tools-backend/db"
	"inspection-tools-backend/models"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	Add(rec dbmodels.Holiday) (id string, err error)
	GetByDate(date time.Time) (rec *dbmodels.Holiday, err error)
	List() (list []dbmodels.Holiday, err error)
	DeleteByDate(date time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Add(rec dbmodels.Holiday) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", db.WrapError(err)
	}
	return rec.ID, nil
}

func (i impl) GetByDate(date time.Time) (*dbmodels.Holiday, error) {
	rec := dbmodels.Holiday{}
	err := i.db.
		Where("date = ?", date).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, db.WrapError(err)
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Holiday, err error) {
	list = []dbmodels.Holiday{}
	err = i.db.
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, db.WrapError(err)
	}
	return list, nil
}

func (i impl) DeleteByDate(date time.Time) error {
	tx := i.db.
		Where("date = ?", date).
		Delete(&dbmodels.Holiday{})
	if tx.Error != nil {
		return db.WrapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.WithMessage(models.ErrNotFound, "holiday not found")
	}
	return nil
}
