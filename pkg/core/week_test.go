package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

func TestISOWeek(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, time.December, 29, 12, 0, 0, 0, time.UTC), 1},
		{time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC), 11},
		{time.Date(2026, time.May, 3, 8, 0, 0, 0, time.UTC), 18},
		{time.Date(2020, time.December, 31, 8, 0, 0, 0, time.UTC), 53},
	}
	for _, tt := range tests {
		if got := core.ISOWeek(tt.date); got != tt.want {
			t.Errorf("ISOWeek(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestNormalizeWeeks(t *testing.T) {
	w := 5
	got := core.NormalizeWeeks([]int{9, 0, 5, 54, 9, 1}, &w)
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("NormalizeWeeks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeWeeks = %v, want %v", got, want)
		}
	}

	if got := core.NormalizeWeeks(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseDayMonth(t *testing.T) {
	now := time.Date(2028, time.January, 10, 12, 0, 0, 0, time.UTC)

	valid := map[string]time.Time{
		"29/2": time.Date(2028, time.February, 29, 8, 0, 0, 0, time.UTC),
		"1-12": time.Date(2028, time.December, 1, 8, 0, 0, 0, time.UTC),
		"05/06": time.Date(2028, time.June, 5, 8, 0, 0, 0, time.UTC),
	}
	for token, want := range valid {
		got, ok := core.ParseDayMonth(token, now)
		if !ok || !got.Equal(want) {
			t.Errorf("ParseDayMonth(%q) = %v, %v; want %v", token, got, ok, want)
		}
	}

	for _, token := range []string{"31/4", "0/3", "12/13", "1/2/3", "12.3", "123/4", "x"} {
		if _, ok := core.ParseDayMonth(token, now); ok {
			t.Errorf("ParseDayMonth(%q) should fail", token)
		}
	}

	if _, ok := core.ParseDayMonth("29/2", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("29/2 must not exist in 2026")
	}
}
