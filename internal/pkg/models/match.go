package models

import "time"

// MatchCriteria is the inbound body of a match request, before validation
type MatchCriteria struct {
	DepartureTime      string   `json:"departureTime"`
	ReturnTime         string   `json:"returnTime"`
	OriginAddress      string   `json:"originAddress"`
	DestinationAddress string   `json:"destinationAddress"`
	Eligibility        []string `json:"eligibility"`
	Equipment          []string `json:"equipment"`
	HealthConditions   []string `json:"healthConditions"`
	NeedsCompanion     *bool    `json:"needsCompanion"`
	AllowsSharing      *bool    `json:"allowsSharing"`
}

// MatchRequest is a validated trip intent. It is not modified after validation.
type MatchRequest struct {
	DepartureTime      time.Time
	ReturnTime         time.Time
	OriginAddress      string
	DestinationAddress string
	Eligibility        []string
	Equipment          []string
	HealthConditions   []string
	NeedsCompanion     bool
	AllowsSharing      bool
}

// AdvisoryCriteria returns the criteria echoed back when nothing matches
func (r MatchRequest) AdvisoryCriteria() map[string]interface{} {
	return map[string]interface{}{
		"eligibility":      r.Eligibility,
		"equipment":        r.Equipment,
		"healthConditions": r.HealthConditions,
		"needsCompanion":   r.NeedsCompanion,
		"allowsSharing":    r.AllowsSharing,
	}
}

// MatchResult is one provider that passed both the schedule and zone checks
type MatchResult struct {
	ID   int64  `json:"ID"`
	Name string `json:"Provider"`
	Type string `json:"Type"`
}
