package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "inspection-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Holiday{}); err != nil {
		return errors.Wrap(err, "failed to migrate Holiday")
	}
	if err := DB.AutoMigrate(&dbmodels.Cycle{}); err != nil {
		return errors.Wrap(err, "failed to migrate Cycle")
	}
	if err := DB.AutoMigrate(&dbmodels.Entry{}); err != nil {
		return errors.Wrap(err, "failed to migrate Entry")
	}
	if err := DB.AutoMigrate(&dbmodels.TimeLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate TimeLog")
	}
	// Partial unique indexes closing the check-then-act races: at most one
	// open cycle and one open clock session per technician.
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_cycle_per_technician
		ON cycles (technician_id) WHERE status IN ('DRAFT', 'REJECTED')`).Error; err != nil {
		return errors.Wrap(err, "failed to create open cycle index")
	}
	if err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_time_log_per_technician
		ON time_logs (technician_id) WHERE status = 'CLOCKED_IN'`).Error; err != nil {
		return errors.Wrap(err, "failed to create open time log index")
	}
	log.Info("migrations finished")
	return nil
}
