package initializers

import (
	"context"

	"inspection-tools-backend/config"
	"inspection-tools-backend/fiberlog"
	cyclehandler "inspection-tools-backend/lib/cycle"
	entryhandler "inspection-tools-backend/lib/entry"
	xlsexport "inspection-tools-backend/lib/export/xls"
	holidayhandler "inspection-tools-backend/lib/holiday"
	"inspection-tools-backend/lib/notify"
	"inspection-tools-backend/lib/rbac"
	timeloghandler "inspection-tools-backend/lib/timelog"
	usershandler "inspection-tools-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	rbac.NewHandler()
	notify.NewHandler(config.Conf.Smtp.NotifyFrom)
	xlsexport.NewHandler()
	usershandler.NewHandler()
	holidayhandler.NewHandler()
	entryhandler.NewHandler()
	timeloghandler.NewHandler()
	// cycle last, it wires the holiday, time log and notify handlers
	cyclehandler.NewHandler()
}
