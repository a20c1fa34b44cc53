package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time-of-day value ("HH:MM:SS") with no date component.
// Activity durations and start times are clock values, not epoch offsets,
// so they get their own type instead of time.Time.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime parses "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: want HH:MM:SS", s)
	}
	var vals [3]int
	for i, p := range parts {
		// Every character of the segment must be a digit; trailing garbage
		// and signs are rejected.
		n, err := strconv.Atoi(p)
		if err != nil || p == "" || p[0] == '+' || p[0] == '-' {
			return ClockTime{}, fmt.Errorf("invalid clock time %q: want HH:MM:SS", s)
		}
		vals[i] = n
	}
	ct := ClockTime{Hour: vals[0], Minute: vals[1], Second: vals[2]}
	if ct.Hour < 0 || ct.Hour > 23 || ct.Minute < 0 || ct.Minute > 59 || ct.Second < 0 || ct.Second > 59 {
		return ClockTime{}, fmt.Errorf("clock time %q out of range", s)
	}
	return ct, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ct, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// Value implements driver.Valuer; stored as a Postgres "time" column.
func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner. Postgres drivers hand back time columns as
// either strings or time.Time depending on the driver.
func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ClockTime{}
		return nil
	case string:
		ct, err := ParseClockTime(v)
		if err != nil {
			return err
		}
		*c = ct
		return nil
	case []byte:
		ct, err := ParseClockTime(string(v))
		if err != nil {
			return err
		}
		*c = ct
		return nil
	case time.Time:
		*c = ClockTime{Hour: v.Hour(), Minute: v.Minute(), Second: v.Second()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}

// GormDataType maps ClockTime to a time column.
func (ClockTime) GormDataType() string {
	return "time"
}
