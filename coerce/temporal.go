package coerce

import (
	"regexp"
	"strings"
	"time"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
)

// minDate earliest accepted date, the start of proleptic year -4713.
var minDate = time.Date(-4713, time.January, 1, 0, 0, 0, 0, time.UTC)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05 Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// dateRule date, timestamp and timestamp with time zone. Input is a
// time.Time or a string in one of the ISO 8601 forms.
type dateRule struct {
	shapes
	checkMin bool
}

func (r *dateRule) Coerce(raw interface{}) (interface{}, error) {
	var t time.Time
	switch v := raw.(type) {
	case time.Time:
		t = v
	case string:
		var ok bool
		t, ok = parseTimestamp(v)
		if !ok {
			return nil, Errorf(CodeBadFormat, "%q is not a valid date", v)
		}
	default:
		return nil, wrongType("date", raw)
	}
	if r.checkMin && t.Before(minDate) {
		return nil, Errorf(CodeOutOfRange, "date %s is before the minimum date %s", t.Format("2006-01-02"), minDate.Format("2006-01-02"))
	}
	return t, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// timeOfDay hh:mm[:ss[.ffffff]] with an optional Z, ±hh, ±hhmm or ±hh:mm
// offset; 24:00:00 is the end of day.
var timeOfDay = regexp.MustCompile(`^(?:(?:[01]\d|2[0-3]):[0-5]\d(?::[0-5]\d(?:\.\d{1,6})?)?|24:00(?::00(?:\.0{1,6})?)?)(?:\s*(?:Z|[+-](?:[01]\d|2[0-3])(?::?[0-5]\d)?))?$`)

// timeRule time and time with time zone. Only text is accepted; a
// time.Time carries a date and is refused.
type timeRule struct {
	shapes
}

func (r *timeRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	if !timeOfDay.MatchString(strings.TrimSpace(s)) {
		return nil, Errorf(CodeBadFormat, "%q is not a valid time", s)
	}
	return s, nil
}

func init() {
	RegisterRule(kind.Date, func(*column.Descriptor) Rule {
		return &dateRule{shapes: shapes{in: []Shape{ShapeTime, ShapeString}, out: ShapeTime}, checkMin: true}
	})
	for _, k := range []kind.Kind{kind.Timestamp, kind.TimestampTZ} {
		RegisterRule(k, func(*column.Descriptor) Rule {
			return &dateRule{shapes: shapes{in: []Shape{ShapeTime, ShapeString}, out: ShapeTime}}
		})
	}
	for _, k := range []kind.Kind{kind.Time, kind.TimeTZ} {
		RegisterRule(k, func(*column.Descriptor) Rule {
			return &timeRule{shapes{in: []Shape{ShapeString}, out: ShapeString}}
		})
	}
}
