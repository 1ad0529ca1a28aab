package query

import "time"

// TimeRange is a closed created-at interval. Nil bounds are unbounded.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether the range carries no bound at all.
func (tr TimeRange) IsZero() bool { return tr.From == nil && tr.To == nil }

// periodBounds computes [start, end] for the named period anchored at now in
// the server's local time. End is the last representable millisecond of the
// period (23:59:59.999), matching the envelope the original API exposed.
func periodBounds(keyword string, now time.Time) (time.Time, time.Time, bool) {
	loc := now.Location()
	var start, next time.Time
	switch keyword {
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 1)
	case "thisMonth":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	case "thisYear":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, next.Add(-time.Millisecond), true
}

// ResolveTimeRange builds the created-at filter from a dateRange keyword
// (today | thisMonth | thisYear) and/or explicit ISO dates. Explicit bounds
// refine the keyword range by intersection: the later of the two froms and
// the earlier of the two tos win. Unparsable values are dropped.
func ResolveTimeRange(keyword, fromDate, toDate string, now time.Time) TimeRange {
	var tr TimeRange

	if start, end, ok := periodBounds(keyword, now); ok {
		tr.From, tr.To = &start, &end
	}

	loc := now.Location()
	if t, err := time.ParseInLocation("2006-01-02", fromDate, loc); err == nil {
		if tr.From == nil || t.After(*tr.From) {
			tr.From = &t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", toDate, loc); err == nil {
		// toDate is a date; the bound covers that whole day.
		end := t.AddDate(0, 0, 1).Add(-time.Millisecond)
		if tr.To == nil || end.Before(*tr.To) {
			tr.To = &end
		}
	}
	return tr
}
