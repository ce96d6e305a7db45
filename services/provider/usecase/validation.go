package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
)

// ValidateMatchCriteria turns the inbound criteria into a MatchRequest.
// It performs no I/O. Offset-less timestamps are read in loc.
func ValidateMatchCriteria(c models.MatchCriteria, loc *time.Location) (models.MatchRequest, error) {
	var req models.MatchRequest

	origin, err := requiredAddress("originAddress", c.OriginAddress)
	if err != nil {
		return req, err
	}
	destination, err := requiredAddress("destinationAddress", c.DestinationAddress)
	if err != nil {
		return req, err
	}

	departure, err := requiredTimestamp("departureTime", c.DepartureTime, loc)
	if err != nil {
		return req, err
	}
	ret, err := requiredTimestamp("returnTime", c.ReturnTime, loc)
	if err != nil {
		return req, err
	}

	if !ret.After(departure) {
		return req, provider.NewMatchError(
			provider.CodeInvalidTimeRange,
			"Return time must be after departure time",
			map[string]interface{}{
				"departure": models.FormatTime(departure),
				"return":    models.FormatTime(ret),
			},
			nil,
		)
	}

	req = models.MatchRequest{
		DepartureTime:      departure,
		ReturnTime:         ret,
		OriginAddress:      origin,
		DestinationAddress: destination,
		Eligibility:        nonNil(c.Eligibility),
		Equipment:          nonNil(c.Equipment),
		HealthConditions:   nonNil(c.HealthConditions),
		NeedsCompanion:     false,
		AllowsSharing:      true,
	}
	if c.NeedsCompanion != nil {
		req.NeedsCompanion = *c.NeedsCompanion
	}
	if c.AllowsSharing != nil {
		req.AllowsSharing = *c.AllowsSharing
	}
	return req, nil
}

func requiredAddress(field, value string) (string, error) {
	if value == "" {
		return "", validationError(fmt.Sprintf("Missing required field: %s", field), field, value)
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", validationError(fmt.Sprintf("Invalid value for field: %s", field), field, value)
	}
	return trimmed, nil
}

func requiredTimestamp(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, validationError(fmt.Sprintf("Missing required field: %s", field), field, value)
	}
	t, err := models.ParseTimestamp(value, loc)
	if err != nil {
		return time.Time{}, validationError(fmt.Sprintf("Invalid datetime format for %s", field), field, value)
	}
	return t, nil
}

func validationError(message, field, value string) error {
	return provider.NewMatchError(
		provider.CodeValidation,
		message,
		map[string]interface{}{"field": field, "value": value},
		nil,
	)
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
