package service

import (
	"strings"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
)

const (
	dealIDMaxLength    = 50
	currencyCodeLength = 3
)

// validationRule is one independent field constraint. Rules are data, not a
// type hierarchy: every rule is evaluated against the candidate without
// short-circuiting so the caller gets the full list of violations.
type validationRule struct {
	name    string
	message string
	valid   func(domain.CandidateRecord) bool
}

type recordValidator struct {
	rules []validationRule
}

// newRecordValidator builds the ruleset. The uppercase rule is omitted when
// the importer normalizes currency codes before validation.
func newRecordValidator(normalizeCurrency bool) *recordValidator {
	rules := []validationRule{
		{
			name:    "deal_id_required",
			message: "deal id cannot be blank",
			valid: func(c domain.CandidateRecord) bool {
				return c.DealUniqueID != ""
			},
		},
		{
			name:    "deal_id_length",
			message: "deal id must be between 1 and 50 characters",
			valid: func(c domain.CandidateRecord) bool {
				return len(c.DealUniqueID) <= dealIDMaxLength
			},
		},
		{
			name:    "from_currency_length",
			message: "from currency code must be exactly 3 letters",
			valid: func(c domain.CandidateRecord) bool {
				return len(c.FromCurrencyISO) == currencyCodeLength
			},
		},
		{
			name:    "to_currency_length",
			message: "to currency code must be exactly 3 letters",
			valid: func(c domain.CandidateRecord) bool {
				return len(c.ToCurrencyISO) == currencyCodeLength
			},
		},
		{
			name:    "timestamp_required",
			message: "deal timestamp cannot be empty",
			valid: func(c domain.CandidateRecord) bool {
				return !c.DealTimestamp.IsZero()
			},
		},
		{
			name:    "amount_positive",
			message: "deal amount must be greater than 0",
			valid: func(c domain.CandidateRecord) bool {
				return c.DealAmount.IsPositive()
			},
		},
	}

	if !normalizeCurrency {
		rules = append(rules,
			validationRule{
				name:    "from_currency_uppercase",
				message: "from currency code must be uppercase",
				valid: func(c domain.CandidateRecord) bool {
					return isUppercaseCode(c.FromCurrencyISO)
				},
			},
			validationRule{
				name:    "to_currency_uppercase",
				message: "to currency code must be uppercase",
				valid: func(c domain.CandidateRecord) bool {
					return isUppercaseCode(c.ToCurrencyISO)
				},
			},
		)
	}

	return &recordValidator{rules: rules}
}

// Validate returns all violation messages; an empty slice means the record is
// eligible for the dedup check.
func (v *recordValidator) Validate(candidate domain.CandidateRecord) []string {
	var violations []string
	for _, rule := range v.rules {
		if !rule.valid(candidate) {
			violations = append(violations, rule.message)
		}
	}
	return violations
}

func isUppercaseCode(code string) bool {
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return code != ""
}

func joinViolations(violations []string) string {
	return strings.Join(violations, "; ")
}
