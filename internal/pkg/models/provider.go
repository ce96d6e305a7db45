package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONDoc is a json/jsonb column value. It scans from text or bytes and is
// embedded verbatim in API responses when valid.
type JSONDoc []byte

// Scan implements sql.Scanner
func (j *JSONDoc) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONDoc(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONDoc", src)
	}
	return nil
}

// Value implements driver.Valuer
func (j JSONDoc) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return []byte(j), nil
}

// MarshalJSON writes the document as-is, or as a string when it is not valid JSON
func (j JSONDoc) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(j) {
		return json.Marshal(string(j))
	}
	return j, nil
}

// UnmarshalJSON keeps a copy of the raw document
func (j *JSONDoc) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*j = nil
		return nil
	}
	*j = append((*j)[:0], data...)
	return nil
}

// ServiceZone is the raw GeoJSON describing where a provider operates
type ServiceZone = JSONDoc

// ScheduleEntry is one day-mask and time-window rule of a provider's calendar.
// Day is Monday-first, Start and End are HHMM; End may be 2400 or later when
// the window runs past midnight.
type ScheduleEntry struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleSpec is the stored service_hours document
type ScheduleSpec struct {
	Hours []ScheduleEntry `json:"hours"`
}

// ProviderRecord is a match candidate read from the catalog
type ProviderRecord struct {
	ID       int64       `json:"provider_id" db:"provider_id"`
	Name     string      `json:"provider_name" db:"provider_name"`
	Type     string      `json:"provider_type" db:"provider_type"`
	Schedule JSONDoc     `json:"service_hours" db:"service_hours"`
	Zone     ServiceZone `json:"service_zone" db:"service_zone"`
}

// ProviderDetail is the catalog view returned by the lookup endpoints
type ProviderDetail struct {
	ID             int64   `json:"provider_id" db:"provider_id"`
	Name           string  `json:"provider_name" db:"provider_name"`
	Contacts       *string `json:"contacts" db:"contacts"`
	Organization   *string `json:"provider_org" db:"provider_org"`
	ServiceHours   JSONDoc `json:"service_hours" db:"service_hours"`
	Fare           JSONDoc `json:"fare" db:"fare"`
	Booking        JSONDoc `json:"booking" db:"booking"`
	EligibilityReq *string `json:"eligibility_req" db:"eligibility_req"`
	ScheduleType   *string `json:"schedule_type" db:"schedule_type"`
	RoutingType    *string `json:"routing_type" db:"routing_type"`
	Type           *string `json:"provider_type" db:"provider_type"`
}

// ProviderNameQuery is the body of the name search endpoint
type ProviderNameQuery struct {
	Name string `json:"name"`
}

// CatalogEvent is published when the provider catalog changes
type CatalogEvent struct {
	ProviderID int64  `json:"provider_id,omitempty"`
	Action     string `json:"action,omitempty"`
}
