package entryapimodels

import (
	"github.com/pkg/errors"

	"inspection-tools-backend/models"
)

type EntryView struct {
	ID          string               `json:"id"`
	CycleID     string               `json:"cycle_id"`
	EntryNumber int                  `json:"entry_number"`
	IsCompleted bool                 `json:"is_completed"`
	Data        models.EntryDocument `json:"data,omitempty"`
}

// SubmitData carries the whole 16-section reading document; an entry is
// either untouched or fully submitted, partial saves are not supported.
type SubmitData struct {
	Data models.EntryDocument `json:"data"`
}

func (r SubmitData) Validate() error {
	if len(r.Data) == 0 {
		return errors.New("form data is missing")
	}
	return nil
}
