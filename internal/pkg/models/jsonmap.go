package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap holds a schema-loose JSON object column, used for raw provider
// responses and conversion metadata. Financial invariants are never derived
// from it; only the typed ledger columns are authoritative.
type JSONMap map[string]interface{}

// Value implements driver.Valuer so the map can be stored as jsonb
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", src)
	}

	return json.Unmarshal(data, m)
}
