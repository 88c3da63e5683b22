package core

import (
	"sort"
	"strings"
)

// FilterContracts returns the records satisfying every criterion, in
// their original order. It never fabricates or reorders records; an
// empty result is a valid result.
func FilterContracts(records []ContractRecord, c FilterCriteria) []ContractRecord {
	out := make([]ContractRecord, 0, len(records))
	for _, r := range records {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r ContractRecord, c FilterCriteria) bool {
	if c.CostCenter != "" && r.CostCenter != c.CostCenter {
		return false
	}
	if !c.IncludePunctual && r.Periodicity == PeriodicityPunctual {
		return false
	}
	switch c.Status {
	case StatusFilterActive:
		if r.Status != StatusActive {
			return false
		}
	case StatusFilterExpired:
		if r.Status != StatusExpired {
			return false
		}
	}
	if c.SearchField != SearchFieldNone && c.SearchText != "" {
		v := searchValue(r, c.SearchField)
		// An absent field never matches a non-empty search.
		if v == "" || v == Sentinel {
			return false
		}
		if !strings.Contains(strings.ToLower(v), strings.ToLower(c.SearchText)) {
			return false
		}
	}
	return true
}

// searchValue returns the value of a searchable field, or "" for fields
// outside the whitelist.
func searchValue(r ContractRecord, f SearchField) string {
	switch f {
	case SearchFieldCompany:
		return r.Company
	case SearchFieldCostCenter:
		return r.CostCenter
	case SearchFieldPaymentProtocol:
		return r.PaymentProtocol
	case SearchFieldContractProtocol:
		return r.ContractProtocol
	}
	return ""
}

// SelectActive returns the records with an active status, preserving
// order. Used by the image-usage dashboard, which has no user criteria.
func SelectActive(records []ContractRecord) []ContractRecord {
	out := make([]ContractRecord, 0, len(records))
	for _, r := range records {
		if r.Status == StatusActive {
			out = append(out, r)
		}
	}
	return out
}

// CostCenters returns the distinct, present cost centers sorted
// alphabetically, for the filter dropdown.
func CostCenters(records []ContractRecord) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		cc := r.CostCenter
		if cc == "" || cc == Sentinel {
			continue
		}
		if _, ok := seen[cc]; ok {
			continue
		}
		seen[cc] = struct{}{}
		out = append(out, cc)
	}
	sort.Strings(out)
	return out
}
