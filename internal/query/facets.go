package query

import "dc-directory-api-server/internal/models"

// Facets holds the selectable values of the categorical filters.
type Facets struct {
	Locations []string `json:"locations"`
	Tiers     []string `json:"tiers"`
}

// DistinctValues returns each value of selector once, in first-seen order.
func DistinctValues(records []models.DataCenter, selector func(models.DataCenter) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, dc := range records {
		v := selector(dc)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func Locations(records []models.DataCenter) []string {
	return DistinctValues(records, func(dc models.DataCenter) string { return dc.Location })
}

func Tiers(records []models.DataCenter) []string {
	return DistinctValues(records, func(dc models.DataCenter) string { return string(dc.Tier) })
}

// FacetsOf extracts both facets from one snapshot.
func FacetsOf(records []models.DataCenter) Facets {
	return Facets{Locations: Locations(records), Tiers: Tiers(records)}
}
