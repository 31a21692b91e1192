package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 5
)

var (
	ErrInvalidPriority = errors.New("priority must be an integer between 1 and 5")
)

// Priority is a validated urgency level in [1,5]. A Priority obtained
// through ParsePriority or JSON decoding is always in range; code must
// not construct one from raw input any other way.
type Priority int

// ParsePriority converts a textual value into a Priority. It is the
// single gate for untrusted input: non-numeric, negative, and
// out-of-range values are all rejected.
func ParsePriority(raw string) (Priority, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return priorityFromInt(n)
}

func priorityFromInt(n uint64) (Priority, error) {
	if n < MinPriority || n > MaxPriority {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPriority, n)
	}
	return Priority(n), nil
}

// UnmarshalJSON routes JSON input through the same range check as
// ParsePriority, so a request body cannot smuggle in an invalid value.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPriority, data)
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, n)
	}
	parsed, err := priorityFromInt(uint64(n))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Todo represents a task item
type Todo struct {
	ID       uint64   `json:"id"`
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
}
