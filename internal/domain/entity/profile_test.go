package entity

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAge(t *testing.T) {
	cases := []struct {
		name  string
		dob   time.Time
		today time.Time
		want  int
	}{
		{"birthday not yet reached", date(2000, time.June, 15), date(2024, time.June, 14), 23},
		{"birthday today", date(2000, time.June, 15), date(2024, time.June, 15), 24},
		{"birthday passed", date(2000, time.June, 15), date(2024, time.June, 16), 24},
		{"earlier month", date(2000, time.June, 15), date(2024, time.March, 1), 23},
		{"later month", date(2000, time.June, 15), date(2024, time.December, 1), 24},
		{"newborn", date(2024, time.January, 10), date(2024, time.June, 1), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeAge(tc.dob, tc.today); got != tc.want {
				t.Errorf("ComputeAge(%v, %v) = %d, want %d", tc.dob, tc.today, got, tc.want)
			}
		})
	}
}

func TestRecalculateAge(t *testing.T) {
	dob := date(1990, time.March, 20)
	p := &Profile{DateOfBirth: &dob}
	p.RecalculateAge(date(2024, time.March, 19))
	if p.Age == nil || *p.Age != 33 {
		t.Fatalf("expected age 33, got %v", p.Age)
	}

	p.RecalculateAge(date(2024, time.March, 20))
	if *p.Age != 34 {
		t.Fatalf("expected age 34, got %d", *p.Age)
	}
}

func TestRecalculateAgeWithoutDOB(t *testing.T) {
	stored := 30
	p := &Profile{Age: &stored}
	p.RecalculateAge(date(2024, time.June, 1))
	if p.Age == nil || *p.Age != 30 {
		t.Fatalf("age must stay untouched without a date of birth, got %v", p.Age)
	}
}
