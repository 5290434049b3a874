package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// EventPrice tolerates the events collaborator sending prices as JSON numbers
// or as numeric strings. Anything non-numeric decodes to zero rather than
// failing the whole payload.
type EventPrice float64

func (p *EventPrice) UnmarshalJSON(data []byte) error {
	*p = 0
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = EventPrice(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*p = EventPrice(v)
	}
	return nil
}

// EventData carries the billable fields of a persisted package event. Only
// the price participates in aggregation.
type EventData struct {
	Price EventPrice `json:"price"`
}

// PackageEvent is a persisted, priced line item attached to a saved package.
// Events are distinct from a draft's vehicle lines: the two totals they
// produce are separate projections and are never reconciled.
type PackageEvent struct {
	ID        int64     `json:"id,omitempty"`
	EventData EventData `json:"event_data"`
}
