package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TransportMode identifies a mode of cargo transport supported by a shipper
// or preferred by a customer.
type TransportMode string

const (
	ModeSea  TransportMode = "sea"
	ModeAir  TransportMode = "air"
	ModeRoad TransportMode = "road"
	ModeRail TransportMode = "rail"
)

// Valid reports whether m is one of the recognised transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeSea, ModeAir, ModeRoad, ModeRail:
		return true
	}
	return false
}

// TransportModes is the set of modes a shipper supports. It is persisted as
// a jsonb column so that eligibility filtering can use the containment
// operator (modes_supported @> '["sea"]').
type TransportModes []TransportMode

// Contains reports whether the set includes mode.
func (m TransportModes) Contains(mode TransportMode) bool {
	for _, v := range m {
		if v == mode {
			return true
		}
	}
	return false
}

// Value implements [driver.Valuer] by serialising the set to JSON.
func (m TransportModes) Value() (driver.Value, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m)
}

// Scan implements [sql.Scanner], accepting the jsonb column bytes.
func (m *TransportModes) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into TransportModes", src)
	}
}
