package availability

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedRangePolicy decides what a blocked range with a missing or
// unparseable bound means for availability.
type MalformedRangePolicy string

const (
	// PolicySkip ignores malformed ranges, they block nothing
	PolicySkip MalformedRangePolicy = "skip"
	// PolicyBlock treats a malformed range as blocking every date
	PolicyBlock MalformedRangePolicy = "block"
)

// DefaultPolicy matches the behaviour of the StayFinder web client
const DefaultPolicy = PolicySkip

// ErrUnknownPolicy is returned by ParsePolicy for unsupported values
var ErrUnknownPolicy = errors.New("availability: unknown malformed range policy")

// ParsePolicy converts a configuration value into a policy. Empty means default.
func ParsePolicy(s string) (MalformedRangePolicy, error) {
	switch MalformedRangePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicySkip:
		return PolicySkip, nil
	case PolicyBlock:
		return PolicyBlock, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
