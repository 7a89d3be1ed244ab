package osm2lanes

import (
	"fmt"
	"strings"
)

type WarningCode uint16

const (
	WARN_ASSUMED_DEFAULT = WarningCode(iota + 1)
	WARN_DEPRECATED_TAG
	WARN_CONFLICT_RESOLVED
	WARN_UNCONSUMED_KEY
	WARN_COUNT_MISMATCH
	WARN_UNIMPLEMENTED
	WARN_BEST_EFFORT_LOCALE
	WARN_BAD_VALUE
)

func (iotaIdx WarningCode) String() string {
	return [...]string{"assumed_default", "deprecated_tag", "conflict_resolved", "unconsumed_key", "count_mismatch", "unimplemented", "best_effort_locale", "bad_value"}[iotaIdx-1]
}

// Warning Recoverable diagnostic produced during inference. Warnings never
// abort a call, they accumulate next to the result.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	Keys    []TagKey    `json:"keys,omitempty"`
}

// String Pretty printing for Warning
func (warn Warning) String() string {
	if len(warn.Keys) == 0 {
		return fmt.Sprintf("[%s] %s", warn.Code, warn.Message)
	}
	keys := make([]string, len(warn.Keys))
	for i := range warn.Keys {
		keys[i] = string(warn.Keys[i])
	}
	return fmt.Sprintf("[%s] %s (tags: %s)", warn.Code, warn.Message, strings.Join(keys, ", "))
}

// Warnings Ordered accumulator of inference warnings
type Warnings []Warning

func (warns *Warnings) push(code WarningCode, message string, keys ...TagKey) {
	*warns = append(*warns, Warning{Code: code, Message: message, Keys: keys})
}

// String Pretty printing for Warnings
func (warns Warnings) String() string {
	lines := make([]string, len(warns))
	for i := range warns {
		lines[i] = "Warning: " + warns[i].String()
	}
	return strings.Join(lines, "\n")
}

// RoadError Fatal inference failure: the input is structurally unusable for
// lane inference. No partial result accompanies it.
type RoadError struct {
	Message string
	Keys    []TagKey
}

// Error Implements error interface
func (roadErr *RoadError) Error() string {
	if len(roadErr.Keys) == 0 {
		return roadErr.Message
	}
	keys := make([]string, len(roadErr.Keys))
	for i := range roadErr.Keys {
		keys[i] = string(roadErr.Keys[i])
	}
	return fmt.Sprintf("%s (tags: %s)", roadErr.Message, strings.Join(keys, ", "))
}

func newRoadError(message string, keys ...TagKey) *RoadError {
	return &RoadError{Message: message, Keys: keys}
}
