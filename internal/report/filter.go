package report

import "ankadash/internal/model"

// matchesMonth reports whether a record date falls in the given month
// ("01".."12"). A date that fails to parse never matches an active
// filter; it must not produce a spurious hit.
func matchesMonth(date, month string) bool {
	key, ok := MonthKey(date)
	if !ok {
		return false
	}
	return len(key) == 7 && key[5:] == month
}

// FilterAllocations restricts allocations to buys in the given calendar
// month. An empty month means no filter: the input is returned as is,
// unparsable dates included.
func FilterAllocations(allocs []model.Allocation, month string) []model.Allocation {
	if month == "" {
		return allocs
	}
	filtered := make([]model.Allocation, 0, len(allocs))
	for _, a := range allocs {
		if matchesMonth(a.BuyDate, month) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterMovements restricts movements to the given calendar month.
func FilterMovements(movs []model.Movement, month string) []model.Movement {
	if month == "" {
		return movs
	}
	filtered := make([]model.Movement, 0, len(movs))
	for _, m := range movs {
		if matchesMonth(m.Date, month) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ValidMonthFilter reports whether s is a usable month filter value.
// "all" and "" both mean unfiltered.
func ValidMonthFilter(s string) bool {
	if s == "" || s == "all" {
		return true
	}
	return monthIndex(s) >= 0
}
