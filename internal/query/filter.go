// Package query filters and slices read-only snapshots of the directory.
// Every function here is pure: it never modifies its input and keeps the
// input order in its output.
package query

import (
	"strings"

	"dc-directory-api-server/internal/models"
)

// Criteria is what a browsing view asks for. Empty fields do not constrain.
type Criteria struct {
	Search   string `form:"q" json:"q"`
	Location string `form:"location" json:"location"`
	Tier     string `form:"tier" json:"tier"`
}

// Predicate reports whether a record belongs in a view.
type Predicate func(models.DataCenter) bool

// MatchText is a case-insensitive substring test against name, location, city
// and country. The empty term matches every record.
func MatchText(term string) Predicate {
	needle := strings.ToLower(term)
	return func(dc models.DataCenter) bool {
		if needle == "" {
			return true
		}
		return containsFold(dc.Name, needle) ||
			containsFold(dc.Location, needle) ||
			containsFold(dc.City, needle) ||
			containsFold(dc.Country, needle)
	}
}

// MatchLocation requires an exact location match unless location is empty.
func MatchLocation(location string) Predicate {
	return func(dc models.DataCenter) bool {
		return location == "" || dc.Location == location
	}
}

// MatchTier requires an exact tier match unless tier is empty.
func MatchTier(tier string) Predicate {
	return func(dc models.DataCenter) bool {
		return tier == "" || string(dc.Tier) == tier
	}
}

// All is the conjunction of preds.
func All(preds ...Predicate) Predicate {
	return func(dc models.DataCenter) bool {
		for _, p := range preds {
			if !p(dc) {
				return false
			}
		}
		return true
	}
}

// Where returns the records satisfying pred, in input order.
func Where(records []models.DataCenter, pred Predicate) []models.DataCenter {
	out := make([]models.DataCenter, 0, len(records))
	for _, dc := range records {
		if pred(dc) {
			out = append(out, dc)
		}
	}
	return out
}

// Filter applies the text predicate and both facet predicates.
func Filter(records []models.DataCenter, c Criteria) []models.DataCenter {
	return Where(records, All(
		MatchText(c.Search),
		MatchLocation(c.Location),
		MatchTier(c.Tier),
	))
}

// AdminSearch is the narrower search of the admin table: name or location only.
func AdminSearch(records []models.DataCenter, term string) []models.DataCenter {
	needle := strings.ToLower(term)
	return Where(records, func(dc models.DataCenter) bool {
		return needle == "" || containsFold(dc.Name, needle) || containsFold(dc.Location, needle)
	})
}

// SelectByIDs picks records for side-by-side comparison, in the order the ids
// were requested. Ids that match nothing are returned in missing.
func SelectByIDs(records []models.DataCenter, ids []string) (selected []models.DataCenter, missing []string) {
	byID := make(map[string]int, len(records))
	for i, dc := range records {
		byID[dc.ID] = i
	}

	seen := make(map[string]bool, len(ids))
	selected = make([]models.DataCenter, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if i, ok := byID[id]; ok {
			selected = append(selected, records[i])
		} else {
			missing = append(missing, id)
		}
	}
	return selected, missing
}

// containsFold reports whether the lower-cased s contains needle, which the
// caller has already lower-cased.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
