package entrystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"inspection-tools-backend/db"
	"inspection-tools-backend/models"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Entry, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByCycle(cycleID string) (list []dbmodels.Entry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Entry, error) {
	rec := dbmodels.Entry{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Entry{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return db.WrapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.WithMessage(models.ErrNotFound, "entry not found")
	}
	return nil
}

func (i impl) ListByCycle(cycleID string) (list []dbmodels.Entry, err error) {
	list = []dbmodels.Entry{}
	err = i.db.
		Where("cycle_id = ?", cycleID).
		Order("entry_number").
		Find(&list).
		Error
	if err != nil {
		return nil, db.WrapError(err)
	}
	return list, nil
}
