package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexStrings is a list field that tolerates the legacy store's habit of
// persisting JSON arrays as strings. A well-formed value decodes into Items;
// a string that is not valid JSON is carried through unchanged in Raw so the
// original data is never lost. Consumers must treat Raw as "list unknown".
type FlexStrings struct {
	Items []string
	Raw   string
}

// NewFlexStrings wraps a plain slice.
func NewFlexStrings(items ...string) FlexStrings {
	return FlexStrings{Items: items}
}

// Names returns the parsed entries, or nil when the value degraded to a raw
// string.
func (f FlexStrings) Names() []string {
	if f.Raw != "" {
		return nil
	}
	return f.Items
}

// IsDegraded reports whether the value failed to parse as a list.
func (f FlexStrings) IsDegraded() bool {
	return f.Raw != ""
}

func (f FlexStrings) IsEmpty() bool {
	return f.Raw == "" && len(f.Items) == 0
}

func (f FlexStrings) MarshalJSON() ([]byte, error) {
	if f.Raw != "" {
		return json.Marshal(f.Raw)
	}
	if f.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.Items)
}

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	*f = FlexStrings{}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		f.Items = items
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flex strings: unsupported value %s", trimmed)
	}
	f.decodeString(s)
	return nil
}

// decodeString attempts to parse a string payload as a JSON array; on failure
// the raw string is preserved rather than rejected.
func (f *FlexStrings) decodeString(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		f.Items = items
		return
	}
	f.Raw = s
}

// Value stores the list the way the legacy schema expects: a JSON-encoded
// string, or the untouched raw string when the value was degraded.
func (f FlexStrings) Value() (driver.Value, error) {
	if f.Raw != "" {
		return f.Raw, nil
	}
	if f.Items == nil {
		return "[]", nil
	}
	data, err := json.Marshal(f.Items)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *FlexStrings) Scan(value any) error {
	*f = FlexStrings{}
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		f.decodeString(string(v))
		return nil
	case string:
		f.decodeString(v)
		return nil
	default:
		return fmt.Errorf("flex strings: cannot scan %T", value)
	}
}
