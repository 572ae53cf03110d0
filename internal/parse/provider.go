package parse

import "strings"

// providerSignature pairs a payroll-system name with the lowercase text
// fragments that identify its documents.
type providerSignature struct {
	name       string
	signatures []string
}

// Known payroll-system signatures, checked in order; first hit wins.
// Extend this table to support a new provider format.
var providerSignatures = []providerSignature{
	{"ADP", []string{"adp", "automatic data processing"}},
	{"Gusto", []string{"gusto"}},
	{"Paychex", []string{"paychex"}},
	{"Workday", []string{"workday"}},
	{"Paylocity", []string{"paylocity"}},
	{"Paycom", []string{"paycom"}},
	{"QuickBooks", []string{"quickbooks", "intuit payroll"}},
	{"Zenefits", []string{"zenefits"}},
	{"TriNet", []string{"trinet"}},
}

// DetectProvider matches text against the signature table. No hit means the
// layout is unrecognized and the record carries the Generic sentinel.
func DetectProvider(text string) string {
	lower := strings.ToLower(text)
	for _, p := range providerSignatures {
		for _, sig := range p.signatures {
			if strings.Contains(lower, sig) {
				return p.name
			}
		}
	}
	return "Generic"
}
