package attendance

type Breakdown struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary is the attendance breakdown of a filtered set. With no records
// HasData is false and every percentage is 0.
type Summary struct {
	Total   int       `json:"total"`
	HasData bool      `json:"has_data"`
	Present Breakdown `json:"present"`
	Late    Breakdown `json:"late"`
	Absent  Breakdown `json:"absent"`
	HalfDay Breakdown `json:"half_day"`
}

// Summarize counts records per status and converts each count to a
// percentage of the total, rounded half up to one decimal. When rounding
// would push the sum past 100, the parts rounded up the furthest give back
// a tenth each.
func Summarize(records []Attendance) Summary {
	counts := make(map[Status]int, 4)
	for _, r := range records {
		counts[r.Status]++
	}

	total := len(records)
	order := []Status{StatusPresent, StatusLate, StatusAbsent, StatusHalfDay}
	tenths := make(map[Status]int, len(order))
	sum := 0
	for _, st := range order {
		tenths[st] = roundTenths(counts[st], total)
		sum += tenths[st]
	}
	for ; total > 0 && sum > 1000; sum-- {
		worst, excess := order[0], -1
		for _, st := range order {
			// how far above the exact value the rounded part sits, in 1/total tenths
			if e := tenths[st]*total - counts[st]*1000; e > excess {
				worst, excess = st, e
			}
		}
		tenths[worst]--
	}

	breakdown := func(st Status) Breakdown {
		return Breakdown{Count: counts[st], Percent: float64(tenths[st]) / 10}
	}
	return Summary{
		Total:   total,
		HasData: total > 0,
		Present: breakdown(StatusPresent),
		Late:    breakdown(StatusLate),
		Absent:  breakdown(StatusAbsent),
		HalfDay: breakdown(StatusHalfDay),
	}
}

func roundTenths(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (count*2000 + total) / (2 * total)
}

// Percent is count/total*100 rounded to one decimal, or 0 when total is 0.
func Percent(count, total int) float64 {
	return float64(roundTenths(count, total)) / 10
}

// AttendanceRate is the share of records marked Present or Late.
func AttendanceRate(records []Attendance) float64 {
	attended := 0
	for _, r := range records {
		if r.Status == StatusPresent || r.Status == StatusLate {
			attended++
		}
	}
	return Percent(attended, len(records))
}
