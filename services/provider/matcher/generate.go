package matcher

import (
	"fmt"
	"math/rand"

	"github.com/piresc/optimat/internal/pkg/models"
)

// GenerateSchedule builds a plausible single-entry schedule for test
// catalogs: weekdays open with p=0.8, weekends with p=0.3, a start between
// 04:00 and 12:59 and an end between 14:00 and 24:59.
func GenerateSchedule(r *rand.Rand) models.ScheduleSpec {
	day := make([]byte, daysPerWeek)
	for i := range day {
		p := 0.8
		if i >= 5 {
			p = 0.3
		}
		day[i] = '0'
		if r.Float64() < p {
			day[i] = '1'
		}
	}

	start := fmt.Sprintf("%02d%02d", 4+r.Intn(9), r.Intn(60))
	end := fmt.Sprintf("%02d%02d", 14+r.Intn(11), r.Intn(60))

	return models.ScheduleSpec{
		Hours: []models.ScheduleEntry{{Day: string(day), Start: start, End: end}},
	}
}
