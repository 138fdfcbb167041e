package services

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func window(start, end string) StayWindow {
	w, err := NewStayWindow(date(start), date(end))
	if err != nil {
		panic(err)
	}
	return w
}

func TestNewStayWindow(t *testing.T) {
	if _, err := NewStayWindow(date("2023-11-10"), date("2023-11-09")); err != ErrInvalidStayWindow {
		t.Errorf("NewStayWindow(start after end) err = %v, want ErrInvalidStayWindow", err)
	}
	w, err := NewStayWindow(date("2023-11-10"), date("2023-11-10"))
	if err != nil {
		t.Fatalf("NewStayWindow(single day) err = %v", err)
	}
	if !w.Start.Equal(w.End) {
		t.Errorf("single-day window bounds differ: %v / %v", w.Start, w.End)
	}

	// time-of-day must not affect the window
	noon := time.Date(2023, 11, 10, 12, 30, 0, 0, time.FixedZone("X", 7*3600))
	w2, err := NewStayWindow(noon, noon)
	if err != nil {
		t.Fatalf("NewStayWindow(noon) err = %v", err)
	}
	if !w2.Start.Equal(date("2023-11-10")) {
		t.Errorf("DateOnly normalization: got %v, want 2023-11-10", w2.Start)
	}
}

func TestConflictsWith(t *testing.T) {
	tests := []struct {
		name      string
		existing  StayWindow
		candidate StayWindow
		want      bool
	}{
		{"identical windows", window("2023-11-10", "2023-11-15"), window("2023-11-10", "2023-11-15"), true},
		{"single identical day", window("2023-11-10", "2023-11-10"), window("2023-11-10", "2023-11-10"), true},
		{"existing covers candidate start", window("2023-11-08", "2023-11-12"), window("2023-11-10", "2023-11-15"), true},
		{"existing covers candidate end", window("2023-11-12", "2023-11-18"), window("2023-11-10", "2023-11-15"), true},
		{"existing inside candidate", window("2023-11-03", "2023-11-05"), window("2023-11-01", "2023-11-10"), true},
		{"candidate inside existing", window("2023-11-01", "2023-11-10"), window("2023-11-03", "2023-11-05"), true},
		{"checkout day equals new check-in", window("2023-11-05", "2023-11-10"), window("2023-11-10", "2023-11-15"), false},
		{"check-in day equals existing checkout, reversed", window("2023-11-10", "2023-11-15"), window("2023-11-05", "2023-11-10"), false},
		{"fully before", window("2023-11-01", "2023-11-03"), window("2023-11-10", "2023-11-15"), false},
		{"fully after", window("2023-11-20", "2023-11-25"), window("2023-11-10", "2023-11-15"), false},
		{"one day overlap at start", window("2023-11-09", "2023-11-11"), window("2023-11-10", "2023-11-15"), true},
		{"one day overlap at end", window("2023-11-14", "2023-11-16"), window("2023-11-10", "2023-11-15"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.ConflictsWith(tt.existing); got != tt.want {
				t.Errorf("ConflictsWith(%v, %v) = %v, want %v", tt.existing, tt.candidate, got, tt.want)
			}
		})
	}
}

// The predicate must be symmetric: whichever window is "existing", the
// decision is the same.
func TestConflictsWithSymmetry(t *testing.T) {
	windows := []StayWindow{
		window("2023-11-01", "2023-11-05"),
		window("2023-11-05", "2023-11-10"),
		window("2023-11-03", "2023-11-08"),
		window("2023-11-10", "2023-11-10"),
		window("2023-11-01", "2023-11-30"),
		window("2023-11-09", "2023-11-11"),
	}
	for _, a := range windows {
		for _, b := range windows {
			if a.ConflictsWith(b) != b.ConflictsWith(a) {
				t.Errorf("symmetry broken for %v vs %v", a, b)
			}
		}
		if !a.ConflictsWith(a) {
			t.Errorf("window %v does not conflict with itself", a)
		}
	}
}

// Same-day turnover across arbitrary triples d1 < d2 < d3: [d1,d2] and
// [d2,d3] never conflict.
func TestSameDayTurnover(t *testing.T) {
	base := date("2023-11-01")
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 6; j++ {
			for k := j + 1; k < 7; k++ {
				d1 := base.AddDate(0, 0, i)
				d2 := base.AddDate(0, 0, j)
				d3 := base.AddDate(0, 0, k)
				first := StayWindow{Start: d1, End: d2}
				second := StayWindow{Start: d2, End: d3}
				if second.ConflictsWith(first) || first.ConflictsWith(second) {
					t.Errorf("turnover on %v flagged as conflict ([%v,%v] vs [%v,%v])", d2, d1, d2, d2, d3)
				}
			}
		}
	}
}
