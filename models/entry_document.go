package models

import (
	"database/sql/driver"
	"encoding/json"
)

// EntryDocument holds the readings of one checklist entry as an opaque
// section-key to section-fields map (AVR, UPS and AC panels, fire suppression).
// The section set is owned by the form layer; the backend only stores it whole.
type EntryDocument map[string]map[string]any

func (j EntryDocument) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntryDocument) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return nil
}
