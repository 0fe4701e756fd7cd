package dateonly

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date without time-of-day. The remote API exchanges due,
// start and maturity dates as bare "YYYY-MM-DD" strings, so the zone is always
// UTC and the clock is always midnight.
type Date struct {
	time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates t to its UTC calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return New(y, m, d)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string { return d.Format(layout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(layout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	// Some backend revisions send full timestamps; keep only the date part.
	raw := s[1 : len(s)-1]
	if len(raw) > len(layout) {
		raw = raw[:len(layout)]
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
