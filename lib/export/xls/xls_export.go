package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	ExportTimeLogList(list []dbmodels.TimeLog) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var timeLogHeaders = []string{"Technician", "Clock in", "Clock out", "Hours", "Status"}

func (i impl) ExportTimeLogList(list []dbmodels.TimeLog) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, timeLogHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeTimeLogData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Time logs")
	return f.WriteToBuffer()
}

func writeTimeLogData(f *excelize.File, sheet string, list []dbmodels.TimeLog, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(timeLogHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Technician"
		col := 1
		name := ""
		if item.Technician != nil {
			name = item.Technician.Name
		}
		if err := writeColumn(f, sheet, col, row, name); err != nil {
			return row, err
		}

		// "Clock in"
		col++
		if err := writeColumn(f, sheet, col, row, item.ClockIn.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Clock out"
		col++
		if item.ClockOut != nil {
			if err := writeColumn(f, sheet, col, row, item.ClockOut.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		// "Hours"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.1f", item.Hours())); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}
	}
	return row, nil
}
