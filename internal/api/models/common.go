// Package models provides request and response models for the tracker API.
package models

import (
	"strconv"
	"strings"
	"time"
)

// TouchType represents the gesture type of a touch event.
type TouchType string

const (
	TouchTypeTap       TouchType = "tap"
	TouchTypeSwipe     TouchType = "swipe"
	TouchTypeLongPress TouchType = "longpress"
)

// Valid reports whether the touch type is a known gesture.
func (t TouchType) Valid() bool {
	switch t {
	case TouchTypeTap, TouchTypeSwipe, TouchTypeLongPress:
		return true
	}
	return false
}

// TouchDirection represents the direction of a swipe gesture.
type TouchDirection string

const (
	TouchDirectionUp    TouchDirection = "up"
	TouchDirectionDown  TouchDirection = "down"
	TouchDirectionLeft  TouchDirection = "left"
	TouchDirectionRight TouchDirection = "right"
)

// Valid reports whether the direction is a known swipe direction.
func (d TouchDirection) Valid() bool {
	switch d {
	case TouchDirectionUp, TouchDirectionDown, TouchDirectionLeft, TouchDirectionRight:
		return true
	}
	return false
}

// GazeDirection represents an eye-tracking gaze direction. The token set
// deliberately carries both English and German values; clients send either
// and stored values round-trip verbatim.
type GazeDirection string

const (
	GazeCenter GazeDirection = "center"
	GazeLeft   GazeDirection = "left"
	GazeRight  GazeDirection = "right"
	GazeUp     GazeDirection = "up"
	GazeDown   GazeDirection = "down"
	GazeOben   GazeDirection = "oben"
	GazeUnten  GazeDirection = "unten"
	GazeLinks  GazeDirection = "links"
	GazeRechts GazeDirection = "rechts"
	GazeMitte  GazeDirection = "mitte"
)

// Valid reports whether the direction is a known gaze token in either
// language.
func (d GazeDirection) Valid() bool {
	switch d {
	case GazeCenter, GazeLeft, GazeRight, GazeUp, GazeDown,
		GazeOben, GazeUnten, GazeLinks, GazeRechts, GazeMitte:
		return true
	}
	return false
}

// Vector3 represents a three-axis sensor sample.
type Vector3 struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// Timestamp is a helper type for time.Time with RFC3339 JSON formatting.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Clients historically sent timestamps as RFC3339 strings, epoch seconds,
// or epoch milliseconds depending on the record kind. Values at or above
// this cutoff are read as milliseconds.
const epochMillisCutoff = 1e12

// FlexTime accepts a point in time in any of the wire formats clients are
// known to send and normalizes it at the ingestion boundary. Unparseable
// values leave the FlexTime unset rather than failing the decode; callers
// decide whether an unset timestamp is an error or defaults to now.
type FlexTime struct {
	t   time.Time
	set bool
}

// FlexTimeOf wraps a concrete time.Time, mostly for tests.
func FlexTimeOf(t time.Time) FlexTime {
	return FlexTime{t: t, set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error:
// lenient parsing is part of the ingestion contract.
func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		s = strings.Trim(s, `"`)
	}
	ft.t, ft.set = ParseFlexTime(s)
	return nil
}

// ParseFlexTime parses a timestamp in any accepted wire format: RFC3339
// (with or without sub-second precision), a date, or an epoch number in
// seconds or milliseconds. The second return value reports success.
func ParseFlexTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}

	epoch, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, false
	}
	if epoch >= epochMillisCutoff {
		return time.UnixMilli(int64(epoch)).UTC(), true
	}
	sec := int64(epoch)
	nsec := int64((epoch - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC(), true
}

// MarshalJSON implements json.Marshaler.
func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if !ft.set {
		return []byte("null"), nil
	}
	return Timestamp(ft.t).MarshalJSON()
}

// Time returns the parsed time, zero when unset.
func (ft FlexTime) Time() time.Time {
	return ft.t
}

// IsSet reports whether a parseable timestamp was supplied.
func (ft FlexTime) IsSet() bool {
	return ft.set
}

// Or returns the parsed time, or fallback when unset.
func (ft FlexTime) Or(fallback time.Time) time.Time {
	if ft.set {
		return ft.t
	}
	return fallback
}
