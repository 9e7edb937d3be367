package report

import "testing"

func TestMonthKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2024-01-15", "2024-01", true},
		{"2024-01-15T10:30:00", "2024-01", true},
		{"2024-01-15T10:30:00Z", "2024-01", true},
		{"2024-01-15T10:30:00-03:00", "2024-01", true},
		{"  2024-12-31  ", "2024-12", true},
		{"", "", false},
		{"not-a-date", "", false},
		{"15/01/2024", "", false},
		{"2024-13-01", "", false},
	}

	for _, tt := range tests {
		got, ok := MonthKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MonthKey(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01", "Jan/24"},
		{"2024-02", "Fev/24"},
		{"2024-12", "Dez/24"},
		{"2023-07", "Jul/23"},
		{"2024-99", "99/24"}, // unknown month keeps the raw segment
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := MonthLabel(tt.in); got != tt.want {
			t.Errorf("MonthLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidMonthFilter(t *testing.T) {
	valid := []string{"", "all", "01", "06", "12"}
	for _, s := range valid {
		if !ValidMonthFilter(s) {
			t.Errorf("ValidMonthFilter(%q) = false, want true", s)
		}
	}

	invalid := []string{"0", "1", "13", "00", "jan", "2024-01"}
	for _, s := range invalid {
		if ValidMonthFilter(s) {
			t.Errorf("ValidMonthFilter(%q) = true, want false", s)
		}
	}
}
