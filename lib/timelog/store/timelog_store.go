package timelogstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"inspection-tools-backend/db"
	"inspection-tools-backend/models"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeLog) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	FindOpenByTechnician(technicianID string) (rec *dbmodels.TimeLog, err error)
	Latest(technicianID string) (rec *dbmodels.TimeLog, err error)
	ListAll() (list []dbmodels.TimeLog, err error)
	ListClosedSince(since time.Time) (list []dbmodels.TimeLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeLog) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", db.WrapError(err)
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TimeLog{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return db.WrapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.WithMessage(models.ErrNotFound, "time log not found")
	}
	return nil
}

func (i impl) FindOpenByTechnician(technicianID string) (*dbmodels.TimeLog, error) {
	rec := dbmodels.TimeLog{}
	err := i.db.
		Where("technician_id = ?", technicianID).
		Where("status = ?", models.TimeLogStatusClockedIn).
		Order("clock_in desc").
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

func (i impl) Latest(technicianID string) (*dbmodels.TimeLog, error) {
	rec := dbmodels.TimeLog{}
	err := i.db.
		Where("technician_id = ?", technicianID).
		Order("clock_in desc").
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

func (i impl) ListAll() (list []dbmodels.TimeLog, err error) {
	list = []dbmodels.TimeLog{}
	err = i.db.
		Preload("Technician").
		Order("clock_in desc").
		Find(&list).
		Error
	if err != nil {
		return nil, db.WrapError(err)
	}
	return list, nil
}

func (i impl) ListClosedSince(since time.Time) (list []dbmodels.TimeLog, err error) {
	list = []dbmodels.TimeLog{}
	err = i.db.
		Where("clock_in >= ?", since).
		Where("status = ?", models.TimeLogStatusClockedOut).
		Preload("Technician").
		Order("clock_in desc").
		Find(&list).
		Error
	if err != nil {
		return nil, db.WrapError(err)
	}
	return list, nil
}
