package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/clustereddata/fx-deal-warehouse/internal/domain"
	"github.com/shopspring/decimal"
)

const dealFieldCount = 5

// Timestamp forms accepted on input: RFC3339 and the zone-less variant.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseRecord maps one CSV record onto a candidate deal. Field order is fixed:
// id, from currency, to currency, timestamp, amount. Any structural problem
// (field count, timestamp, amount) is a MalformedRowError, which is fatal to
// the batch; semantic checks belong to the validator.
func parseRecord(record []string, line int) (domain.CandidateRecord, error) {
	raw := strings.Join(record, ",")

	if len(record) != dealFieldCount {
		return domain.CandidateRecord{}, &domain.MalformedRowError{
			Line: line,
			Raw:  raw,
			Err:  fmt.Errorf("expected %d fields, got %d", dealFieldCount, len(record)),
		}
	}

	timestamp, err := parseTimestamp(strings.TrimSpace(record[3]))
	if err != nil {
		return domain.CandidateRecord{}, &domain.MalformedRowError{
			Line: line,
			Raw:  raw,
			Err:  fmt.Errorf("invalid timestamp: %w", err),
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return domain.CandidateRecord{}, &domain.MalformedRowError{
			Line: line,
			Raw:  raw,
			Err:  fmt.Errorf("invalid amount: %w", err),
		}
	}

	return domain.CandidateRecord{
		DealUniqueID:    strings.TrimSpace(record[0]),
		FromCurrencyISO: strings.TrimSpace(record[1]),
		ToCurrencyISO:   strings.TrimSpace(record[2]),
		DealTimestamp:   timestamp,
		DealAmount:      amount,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
