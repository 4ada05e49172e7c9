package value

import (
	"encoding/json"
	"time"
)

type Precision int

const (
	TimestampPrecision Precision = iota
	DatePrecision
	TimePrecision
)

// DateTime is a point in time or calendar value. Precision selects the
// datetime, date, or time kind; comparison is by instant.
type DateTime struct {
	Time      time.Time
	Precision Precision
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

func NewDate(t time.Time) *DateTime {
	return &DateTime{Time: t, Precision: DatePrecision}
}

func NewTime(t time.Time) *DateTime {
	return &DateTime{Time: t, Precision: TimePrecision}
}

func (d *DateTime) Kind() Kind {
	switch d.Precision {
	case DatePrecision:
		return DateKind
	case TimePrecision:
		return TimeKind
	}
	return DateTimeKind
}

func (d *DateTime) Equal(right *DateTime) bool {
	return d.Precision == right.Precision && d.Time.Equal(right.Time)
}

func (d *DateTime) String() string {
	switch d.Precision {
	case DatePrecision:
		return d.Time.Format(time.DateOnly)
	case TimePrecision:
		return d.Time.Format(time.TimeOnly)
	}
	return d.Time.Format(time.RFC3339Nano)
}

func (d *DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
