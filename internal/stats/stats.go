// Package stats computes the dashboard figures over a collection snapshot.
package stats

import (
	"errors"

	"dc-directory-api-server/internal/models"
)

// ErrEmptyCollection is returned by averages over zero records.
var ErrEmptyCollection = errors.New("stats: empty collection")

// Summary is the overview dashboard. The averages are nil when the collection
// is empty.
type Summary struct {
	TotalCount          int                           `json:"totalCount"`
	AvailableCount      int                           `json:"availableCount"`
	TotalPowerMW        float64                       `json:"totalPowerMW"`
	AverageUptime       *float64                      `json:"averageUptime"`
	AverageCapacityUsed *float64                      `json:"averageCapacityUsed"`
	ByTier              map[models.Tier]int           `json:"byTier"`
	ByStatus            map[models.CapacityStatus]int `json:"byStatus"`
}

func Summarize(records []models.DataCenter) Summary {
	s := Summary{
		TotalCount:   len(records),
		TotalPowerMW: TotalPowerMW(records),
		ByTier:       make(map[models.Tier]int),
		ByStatus:     make(map[models.CapacityStatus]int),
	}
	for _, dc := range records {
		if dc.Capacity.Status == models.StatusAvailable {
			s.AvailableCount++
		}
		s.ByTier[dc.Tier]++
		s.ByStatus[dc.Capacity.Status]++
	}
	if v, err := AverageUptime(records); err == nil {
		s.AverageUptime = &v
	}
	if v, err := AverageCapacityUsed(records); err == nil {
		s.AverageCapacityUsed = &v
	}
	return s
}

// TotalPowerMW sums facility power in megawatts. A record whose power unit is
// not a power unit adds nothing; the store does not admit such records.
func TotalPowerMW(records []models.DataCenter) float64 {
	var total float64
	for _, dc := range records {
		mw, err := dc.Specifications.Power.Megawatts()
		if err != nil {
			continue
		}
		total += mw
	}
	return total
}

func AverageUptime(records []models.DataCenter) (float64, error) {
	return mean(records, func(dc models.DataCenter) float64 { return dc.RealTimeData.Uptime })
}

func AverageCapacityUsed(records []models.DataCenter) (float64, error) {
	return mean(records, func(dc models.DataCenter) float64 { return dc.Capacity.Used })
}

func mean(records []models.DataCenter, value func(models.DataCenter) float64) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyCollection
	}
	var sum float64
	for _, dc := range records {
		sum += value(dc)
	}
	return sum / float64(len(records)), nil
}
