package models

import (
	"testing"
	"time"
)

func mustMoney(t *testing.T, value string) Money {
	t.Helper()
	m, err := NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("NewMoneyFromString(%q): %v", value, err)
	}
	return m
}

func TestCalculateTotalCost(t *testing.T) {
	rate := mustMoney(t, "100.00")

	cases := []struct {
		name   string
		rental string
		ret    string
		want   string
	}{
		{"four full days", "2023-01-01T12:00:00Z", "2023-01-05T12:00:00Z", "400.00"},
		{"three full days", "2023-01-01T12:00:00Z", "2023-01-04T12:00:00Z", "300.00"},
		{"same day floors to one day", "2023-01-01T09:00:00Z", "2023-01-01T18:00:00Z", "100.00"},
		{"partial second day truncates", "2023-01-01T12:00:00Z", "2023-01-02T18:00:00Z", "100.00"},
		{"single whole day", "2023-01-01T12:00:00Z", "2023-01-02T12:00:00Z", "100.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rental, err := time.Parse(time.RFC3339, tc.rental)
			if err != nil {
				t.Fatalf("parse rental date: %v", err)
			}
			ret, err := time.Parse(time.RFC3339, tc.ret)
			if err != nil {
				t.Fatalf("parse return date: %v", err)
			}

			got := CalculateTotalCost(rental, &ret, rate)
			want := mustMoney(t, tc.want)
			if !got.Equal(want) {
				t.Fatalf("CalculateTotalCost = %s, want %s", got, want)
			}
		})
	}
}

func TestCalculateTotalCostWithoutReturnDate(t *testing.T) {
	rate := mustMoney(t, "55.50")
	rental := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	got := CalculateTotalCost(rental, nil, rate)
	if !got.IsZero() {
		t.Fatalf("expected zero cost without return date, got %s", got)
	}
}

func TestCalculateTotalCostExactDecimal(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, which float64 cannot represent.
	rate := mustMoney(t, "0.10")
	rental := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ret := rental.AddDate(0, 0, 3)

	got := CalculateTotalCost(rental, &ret, rate)
	want := mustMoney(t, "0.30")
	if !got.Equal(want) {
		t.Fatalf("CalculateTotalCost = %s, want exactly %s", got, want)
	}
}

func TestCompleteIfElapsed(t *testing.T) {
	now := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)

	b := &Booking{Status: BookingStatusConfirmed, ReturnDate: &past}
	if !b.CompleteIfElapsed(now) {
		t.Fatal("expected elapsed confirmed booking to complete")
	}
	if b.Status != BookingStatusCompleted {
		t.Fatalf("status = %s, want %s", b.Status, BookingStatusCompleted)
	}

	// Second application is a no-op: the booking is no longer Confirmed.
	if b.CompleteIfElapsed(now) {
		t.Fatal("expected completed booking to stay put")
	}

	b = &Booking{Status: BookingStatusConfirmed, ReturnDate: &future}
	if b.CompleteIfElapsed(now) {
		t.Fatal("expected future booking to remain confirmed")
	}

	b = &Booking{Status: BookingStatusPending, ReturnDate: &past}
	if b.CompleteIfElapsed(now) {
		t.Fatal("expected pending booking to be ineligible for completion")
	}

	b = &Booking{Status: BookingStatusConfirmed}
	if b.CompleteIfElapsed(now) {
		t.Fatal("expected booking without return date to be ineligible")
	}
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2023, 3, d, 12, 0, 0, 0, time.UTC)
	}
	ret := day(10)
	b := &Booking{RentalDate: day(5), ReturnDate: &ret}

	cases := []struct {
		name string
		from int
		to   int
		want bool
	}{
		{"identical range", 5, 10, true},
		{"contained", 6, 8, true},
		{"straddles start", 3, 6, true},
		{"straddles end", 9, 12, true},
		{"touching end", 10, 14, true},
		{"entirely before", 1, 4, false},
		{"entirely after", 11, 15, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Overlaps(day(tc.from), day(tc.to)); got != tc.want {
				t.Fatalf("Overlaps(%d..%d) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	active := []BookingStatus{BookingStatusPending, BookingStatusConfirmed}
	inactive := []BookingStatus{BookingStatusCompleted, BookingStatusCanceled}

	for _, status := range active {
		if !(&Booking{Status: status}).IsActive() {
			t.Fatalf("expected %s booking to be active", status)
		}
	}
	for _, status := range inactive {
		if (&Booking{Status: status}).IsActive() {
			t.Fatalf("expected %s booking to be inactive", status)
		}
	}
}
