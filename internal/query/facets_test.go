package query

import (
	"testing"

	"dc-directory-api-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDistinctValuesFirstSeenOrder(t *testing.T) {
	records := fixture()

	assert.Equal(t, []string{"Europe", "North America", "Asia Pacific"}, Locations(records))
	assert.Equal(t, []string{"Tier 3", "Tier 4", "Tier 1"}, Tiers(records))
}

func TestDistinctValuesHasNoDuplicates(t *testing.T) {
	records := append(fixture(), fixture()...)

	got := Locations(records)
	seen := map[string]int{}
	for _, v := range got {
		seen[v]++
	}
	for _, r := range records {
		assert.Equal(t, 1, seen[r.Location], r.Location)
	}
}

func TestDistinctValuesEmptyCollection(t *testing.T) {
	got := DistinctValues(nil, func(dc models.DataCenter) string { return dc.City })
	assert.NotNil(t, got)
	assert.Empty(t, got)

	f := FacetsOf([]models.DataCenter{})
	assert.Empty(t, f.Locations)
	assert.Empty(t, f.Tiers)
}
