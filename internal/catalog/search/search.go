package search

import (
	"strings"

	"catalog-search/internal/catalog/model"
)

// Threshold is the minimum per-term score a row must reach to qualify.
const Threshold = 50

// All is the vendor filter value that keeps every catalog.
const All = "All"

// Score is the row's match score for the given terms: the minimum over
// terms of the better of the code and description ratios. Every term has
// to clear the threshold on its own, so a row matching only half of
// "blue matte" drops out.
func Score(rec model.Record, terms []string) int {
	score := 0
	for i, t := range terms {
		s := TokenSetRatio(t, rec.Code)
		if d := TokenSetRatio(t, rec.Description); d > s {
			s = d
		}
		if i == 0 || s < score {
			score = s
		}
	}
	return score
}

// Query runs the fuzzy filter over all catalogs in their declared order and
// then applies the vendor filter. Returns nil for a blank query; rows keep
// catalog order, no ranking is applied.
func Query(catalogs []model.Catalog, query, vendor string) []model.Record {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var out []model.Record
	for _, cat := range catalogs {
		for _, rec := range cat.Records {
			if Score(rec, terms) >= Threshold {
				out = append(out, rec)
			}
		}
	}

	if vendor == "" || vendor == All {
		return out
	}
	kept := make([]model.Record, 0, len(out))
	for _, rec := range out {
		if rec.Catalog == vendor {
			kept = append(kept, rec)
		}
	}
	return kept
}
