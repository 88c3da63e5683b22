package core

// Sentinel marks an absent field in the source datasets. It is normalized
// away at the load boundary, but formatting helpers still accept it so raw
// values can be rendered directly.
const Sentinel = "N/A"

const (
	StatusActive  = "VIGENTE"
	StatusExpired = "VENCIDO"

	PeriodicityPunctual = "PONTUAL"
)

// Known value categories ("naturezas") of the image-usage dataset.
const (
	CategoryTechnical  = "SERV TECNICOS E PROFISSIONAIS"
	CategoryAudioVideo = "SERV DE AUDIO VIDEO E FOTO"
	CategoryImageUsage = "CESSAO E USO DE IMAGEM"
)

type (
	// Money is an optional monetary amount in integer cents.
	// Valid is false when the source field was absent or unparseable.
	Money struct {
		Cents int64
		Valid bool
	}

	// ContractRecord is one row of either contract dataset, typed at the
	// load boundary. String fields hold "" where the source had the
	// absence sentinel.
	ContractRecord struct {
		CostCenter       string
		Company          string
		ContractNumber   string
		ContractProtocol string
		ContractValue    Money
		TaxID            string
		ContractType     string
		PaymentMethod    string
		Periodicity      string
		Status           string
		LastPaymentDate  string // raw source form, rendered via FormatDate
		LastPaymentValue Money
		PaymentProtocol  string
	}

	// ValueRecord is one point of the image-usage value time series.
	ValueRecord struct {
		MonthYear string // "MM/YYYY", month not necessarily zero-padded
		Category  string
		Amount    Money
	}
)

// StatusFilter selects which contract statuses pass the filter.
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "todos"
	StatusFilterActive  StatusFilter = "vigente"
	StatusFilterExpired StatusFilter = "vencido"
)

// SearchField names a searchable contract field. Searching any other
// field matches nothing.
type SearchField string

const (
	SearchFieldNone             SearchField = ""
	SearchFieldCompany          SearchField = "empresa"
	SearchFieldCostCenter       SearchField = "centro_custo"
	SearchFieldPaymentProtocol  SearchField = "protocolo_pagamento"
	SearchFieldContractProtocol SearchField = "protocolo_contrato"
)

// FilterCriteria is the user-selected filter state of the main dashboard.
type FilterCriteria struct {
	CostCenter      string // "" means all
	IncludePunctual bool
	SearchField     SearchField
	SearchText      string
	Status          StatusFilter
}

// DefaultCriteria returns the initial filter state: everything included.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		IncludePunctual: true,
		Status:          StatusFilterAll,
	}
}

// KnownCategories returns the three known naturezas in display order.
func KnownCategories() []string {
	return []string{CategoryTechnical, CategoryAudioVideo, CategoryImageUsage}
}
