package core

import (
	"sort"
	"strconv"
	"strings"
)

// MonthPoint is one chart point: the summed value per selected category
// for a month, plus the total across them. Every selected category is
// present in Values, zero-filled when the month had no record for it.
type MonthPoint struct {
	MonthYear string
	Values    map[string]int64 // cents per selected category
	Total     int64            // cents
}

// AggregateByMonth groups the value series by (monthYear, category),
// summing within each group. Categories outside selected are ignored
// entirely. Points are ordered chronologically by parsing monthYear as a
// (year, month) pair — lexicographic order of "MM/YYYY" strings is wrong
// across year boundaries.
func AggregateByMonth(values []ValueRecord, selected []string) []MonthPoint {
	selSet := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		selSet[c] = struct{}{}
	}

	grouped := map[string]map[string]int64{}
	for _, v := range values {
		if _, ok := selSet[v.Category]; !ok {
			continue
		}
		byCat := grouped[v.MonthYear]
		if byCat == nil {
			byCat = map[string]int64{}
			grouped[v.MonthYear] = byCat
		}
		if v.Amount.Valid {
			byCat[v.Category] += v.Amount.Cents
		}
	}

	months := make([]string, 0, len(grouped))
	for my := range grouped {
		months = append(months, my)
	}
	sort.SliceStable(months, func(i, j int) bool {
		yi, mi := parseMonthYear(months[i])
		yj, mj := parseMonthYear(months[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	points := make([]MonthPoint, 0, len(months))
	for _, my := range months {
		p := MonthPoint{
			MonthYear: my,
			Values:    make(map[string]int64, len(selected)),
		}
		for _, cat := range selected {
			cents := grouped[my][cat] // zero when absent
			p.Values[cat] = cents
			p.Total += cents
		}
		points = append(points, p)
	}
	return points
}

// parseMonthYear extracts (year, month) from an "MM/YYYY" key.
// Malformed keys sort as (0, 0), before every real month.
func parseMonthYear(s string) (year, month int) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	m, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return y, m
}
