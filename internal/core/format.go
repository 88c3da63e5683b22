package core

import (
	"strings"
	"time"
)

// genericDateLayouts are tried in order when a raw date is not already in
// DD/MM/YYYY form. The slash layout covers the US-style dates the source
// mixes in; the rest cover ISO exports.
var genericDateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// FormatDate renders a raw payment date as DD/MM/YYYY.
//
// A value with three slash-separated parts whose first part is two
// characters long is assumed to already be DD/MM/YYYY and is returned
// unchanged. This is the source's own heuristic, not calendar validation:
// a US-style "03/15/2024" also passes it and is left as-is. The data
// source's convention is unknown, so the behavior is kept deliberately.
//
// Anything else is parsed as a generic date and re-rendered zero-padded;
// on parse failure the raw value is returned unchanged.
func FormatDate(raw string) string {
	if raw == "" || raw == Sentinel {
		return ""
	}
	if parts := strings.Split(raw, "/"); len(parts) == 3 && len(parts[0]) == 2 {
		return raw
	}
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

// FormatCurrency renders a raw decimal string as Brazilian-locale
// currency. Empty, sentinel and non-numeric values render as "".
func FormatCurrency(raw string) string {
	return ParseAmount(raw).BRL()
}

// DefaultProtocolBase is the document repository the protocol identifiers
// point into.
const DefaultProtocolBase = "https://documento.oab.org.br/arquivos/"

// ProtocolLink builds the external document URL for a protocol
// identifier, or "" when the protocol is absent. The protocol is trimmed;
// some image-usage rows carry trailing whitespace.
func ProtocolLink(base, protocol string) string {
	if protocol == "" || protocol == Sentinel {
		return ""
	}
	if base == "" {
		base = DefaultProtocolBase
	}
	return base + strings.TrimSpace(protocol)
}
