package stats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dc-directory-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facility(id string, tier models.Tier, status models.CapacityStatus, power models.Quantity, uptime, used float64) models.DataCenter {
	dc := models.NewDataCenter(id, time.Unix(0, 0))
	dc.Tier = tier
	dc.Capacity.Status = status
	dc.Capacity.Used = used
	dc.Specifications.Power = power
	dc.RealTimeData.Uptime = uptime
	return dc
}

func TestSummarize(t *testing.T) {
	records := []models.DataCenter{
		facility("a", models.Tier3, models.StatusAvailable, models.Quantity{Value: 20, Unit: "MW"}, 99.9, 40),
		facility("b", models.Tier3, models.StatusLimited, models.Quantity{Value: 500, Unit: "kW"}, 99.5, 80),
		facility("c", models.Tier4, models.StatusAvailable, models.Quantity{Value: 12}, 100, 60),
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 2, s.AvailableCount)
	assert.InDelta(t, 32.5, s.TotalPowerMW, 1e-9)
	require.NotNil(t, s.AverageUptime)
	assert.InDelta(t, 99.8, *s.AverageUptime, 1e-9)
	require.NotNil(t, s.AverageCapacityUsed)
	assert.InDelta(t, 60, *s.AverageCapacityUsed, 1e-9)
	assert.Equal(t, map[models.Tier]int{models.Tier3: 2, models.Tier4: 1}, s.ByTier)
	assert.Equal(t, map[models.CapacityStatus]int{models.StatusAvailable: 2, models.StatusLimited: 1}, s.ByStatus)
}

func TestAveragesOnEmptyCollection(t *testing.T) {
	_, err := AverageUptime(nil)
	assert.True(t, errors.Is(err, ErrEmptyCollection))

	_, err = AverageCapacityUsed([]models.DataCenter{})
	assert.True(t, errors.Is(err, ErrEmptyCollection))

	s := Summarize(nil)
	assert.Zero(t, s.TotalCount)
	assert.Zero(t, s.TotalPowerMW)
	assert.Nil(t, s.AverageUptime)
	assert.Nil(t, s.AverageCapacityUsed)

	body, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"averageUptime":null`)
}

func TestTotalPowerSkipsNonPowerUnits(t *testing.T) {
	records := []models.DataCenter{
		facility("a", models.Tier1, models.StatusFull, models.Quantity{Value: 1, Unit: "GW"}, 99, 100),
		facility("b", models.Tier1, models.StatusFull, models.Quantity{Value: 9, Unit: "sq ft"}, 99, 100),
	}
	assert.InDelta(t, 1000, TotalPowerMW(records), 1e-9)
}
