package cyclestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inspection-tools-backend/db"
	"inspection-tools-backend/models"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Cycle) (id string, err error)
	GetByID(id string) (rec *dbmodels.Cycle, err error)
	List() (list []dbmodels.Cycle, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	FindOpenByTechnician(technicianID string) (rec *dbmodels.Cycle, err error)
	CountByStatus(status models.CycleStatus) (count int64, err error)
	CountApprovedSince(since time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create persists the cycle together with its entries in one transaction.
func (i impl) Create(rec dbmodels.Cycle) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return "", db.WrapError(err)
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Cycle, error) {
	rec := dbmodels.Cycle{}
	err := i.db.
		Where("id = ?", id).
		Preload("Technician").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("entry_number")
		}).
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

func (i impl) List() (list []dbmodels.Cycle, err error) {
	list = []dbmodels.Cycle{}
	err = i.db.
		Preload("Technician").
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("entry_number")
		}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, db.WrapError(err)
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Cycle{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return db.WrapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.WithMessage(models.ErrNotFound, "cycle not found")
	}
	return nil
}

// Delete removes the cycle and, through the BeforeDelete hook, its entries
// in the same transaction.
func (i impl) Delete(id string) error {
	rec := dbmodels.Cycle{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return db.WrapError(err)
	}
	return nil
}

func (i impl) FindOpenByTechnician(technicianID string) (*dbmodels.Cycle, error) {
	rec := dbmodels.Cycle{}
	err := i.db.
		Where("technician_id = ?", technicianID).
		Where("status IN ?", []models.CycleStatus{models.CycleStatusDraft, models.CycleStatusRejected}).
		Preload(clause.Associations).
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

func (i impl) CountByStatus(status models.CycleStatus) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Cycle{}).
		Where("status = ?", status).
		Count(&count).
		Error
	if err != nil {
		return 0, db.WrapError(err)
	}
	return count, nil
}

func (i impl) CountApprovedSince(since time.Time) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Cycle{}).
		Where("status = ?", models.CycleStatusApproved).
		Where("approved_at >= ?", since).
		Count(&count).
		Error
	if err != nil {
		return 0, db.WrapError(err)
	}
	return count, nil
}
