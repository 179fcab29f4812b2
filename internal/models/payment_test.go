package models

import (
	"testing"
)

func TestReconcileProcessorStatus(t *testing.T) {
	cases := []struct {
		processor   string
		wantPayment PaymentStatus
		wantBooking BookingStatus
	}{
		{"succeeded", PaymentStatusPaid, BookingStatusConfirmed},
		{"processing", PaymentStatusPending, BookingStatusPending},
		{"requires_payment_method", PaymentStatusFailed, BookingStatusCanceled},
		{"canceled", PaymentStatusFailed, BookingStatusCanceled},
		{"requires_action", PaymentStatusFailed, BookingStatusCanceled},
		{"", PaymentStatusFailed, BookingStatusCanceled},
	}

	for _, tc := range cases {
		t.Run(tc.processor, func(t *testing.T) {
			gotPayment, gotBooking := ReconcileProcessorStatus(tc.processor)
			if gotPayment != tc.wantPayment || gotBooking != tc.wantBooking {
				t.Fatalf("ReconcileProcessorStatus(%q) = (%s, %s), want (%s, %s)",
					tc.processor, gotPayment, gotBooking, tc.wantPayment, tc.wantBooking)
			}
		})
	}
}

func TestReconcileProcessorStatusIdempotent(t *testing.T) {
	for _, status := range []string{"succeeded", "processing", "requires_payment_method"} {
		p1, b1 := ReconcileProcessorStatus(status)
		p2, b2 := ReconcileProcessorStatus(status)
		if p1 != p2 || b1 != b2 {
			t.Fatalf("mapping for %q is not stable", status)
		}
	}
}
