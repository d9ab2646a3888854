package employee

import (
	"slices"
	"strings"
)

const NoMatchMessage = "No employees match the current filters"

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// Matches reports whether e passes every active criterion. Search is a
// case-insensitive substring over full name, email and department; the
// department filter is an exact match and status compares case-insensitively
// because stored statuses are lowercase while list labels are title case.
func (f Filter) Matches(e Employee) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(e.FullName()), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) &&
			!strings.Contains(strings.ToLower(e.Department), term) {
			return false
		}
	}
	if !isAll(f.Department) && e.Department != strings.TrimSpace(f.Department) {
		return false
	}
	if !isAll(f.Status) && !strings.EqualFold(string(e.Status), strings.TrimSpace(f.Status)) {
		return false
	}
	return true
}

// Apply filters and optionally sorts employees in memory. The input order
// (newest first from the store) is kept unless Sort names a field.
//
// This runs over the full fetched roster, so its cost grows with headcount;
// a store-side query is the next step once rosters no longer fit one fetch.
func (f Filter) Apply(employees []Employee) ListResponse {
	matched := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}

	switch f.Sort {
	case "name":
		slices.SortStableFunc(matched, func(a, b Employee) int {
			return strings.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName()))
		})
	case "hire_date":
		slices.SortStableFunc(matched, func(a, b Employee) int {
			return a.HireDate.Compare(b.HireDate)
		})
	case "department":
		slices.SortStableFunc(matched, func(a, b Employee) int {
			return strings.Compare(a.Department, b.Department)
		})
	}

	resp := ListResponse{
		Employees: matched,
		Total:     len(employees),
		Matched:   len(matched),
	}
	if len(matched) == 0 {
		resp.Empty = true
		resp.Message = NoMatchMessage
	}
	return resp
}

// Departments returns the distinct departments present in employees, sorted.
func Departments(employees []Employee) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range employees {
		if _, ok := seen[e.Department]; ok || e.Department == "" {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	slices.Sort(out)
	return out
}
