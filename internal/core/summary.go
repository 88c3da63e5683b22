package core

// Totals are the headline sums over the currently filtered subset.
type Totals struct {
	ContractCents int64
	PaidCents     int64
}

// SumField folds a monetary field across records. Absent or unparseable
// values contribute 0, so one malformed record cannot corrupt the total.
func SumField(records []ContractRecord, field func(ContractRecord) Money) int64 {
	var sum int64
	for _, r := range records {
		if m := field(r); m.Valid {
			sum += m.Cents
		}
	}
	return sum
}

// Summarize computes the contract-value and last-payment totals for a
// filtered subset.
func Summarize(records []ContractRecord) Totals {
	return Totals{
		ContractCents: SumField(records, func(r ContractRecord) Money { return r.ContractValue }),
		PaidCents:     SumField(records, func(r ContractRecord) Money { return r.LastPaymentValue }),
	}
}
