package service

import (
	"time"

	"github.com/akulagin/itemshare/internal/domain"
)

// Availability projection: given the bookings of an item and a reference
// instant, derive the most recently concluded and the soonest upcoming
// APPROVED bookings. WAITING, REJECTED and CANCELED bookings are excluded
// entirely.

// lastApproved returns the APPROVED booking with the greatest end among
// those already concluded (end < now), or nil.
func lastApproved(bookings []*domain.Booking, now time.Time) *domain.BookingSummary {
	var last *domain.Booking
	for _, b := range bookings {
		if b.Status != domain.BookingStatusApproved || !b.End.Before(now) {
			continue
		}
		if last == nil || b.End.After(last.End) {
			last = b
		}
	}
	if last == nil {
		return nil
	}
	return last.Summary()
}

// nextApproved returns the APPROVED booking with the smallest start among
// those not yet started (start > now), or nil.
func nextApproved(bookings []*domain.Booking, now time.Time) *domain.BookingSummary {
	var next *domain.Booking
	for _, b := range bookings {
		if b.Status != domain.BookingStatusApproved || !b.Start.After(now) {
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			next = b
		}
	}
	if next == nil {
		return nil
	}
	return next.Summary()
}

// groupByItem buckets one query result by item so a multi-item listing
// projects every item from a single round trip instead of one query per
// item.
func groupByItem(bookings []*domain.Booking) map[string][]*domain.Booking {
	grouped := make(map[string][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		grouped[b.ItemID] = append(grouped[b.ItemID], b)
	}
	return grouped
}
