package services

import (
	"context"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/pkg/logger"
)

// DashboardService aggregates the numbers shown on the admin landing page.
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}

type DashboardOverview struct {
	FleetSize            int                            `json:"fleet_size"`
	AvailableCars        int                            `json:"available_cars"`
	BookingsByStatus     map[models.BookingStatus]int64 `json:"bookings_by_status"`
	PendingReviews       int                            `json:"pending_reviews"`
	PendingCancellations int                            `json:"pending_cancellations"`
}

type dashboardService struct {
	bookingRepo      interfaces.BookingRepository
	carRepo          interfaces.CarRepository
	reviewRepo       interfaces.ReviewRepository
	cancellationRepo interfaces.CancellationRepository
	logger           *logger.Logger
}

func NewDashboardService(
	bookingRepo interfaces.BookingRepository,
	carRepo interfaces.CarRepository,
	reviewRepo interfaces.ReviewRepository,
	cancellationRepo interfaces.CancellationRepository,
	log *logger.Logger,
) DashboardService {
	return &dashboardService{
		bookingRepo:      bookingRepo,
		carRepo:          carRepo,
		reviewRepo:       reviewRepo,
		cancellationRepo: cancellationRepo,
		logger:           log,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	cars, err := s.carRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, car := range cars {
		if car.IsAvailable {
			available++
		}
	}

	bookingCounts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	pendingReviews, err := s.reviewRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	pendingCancellations, err := s.cancellationRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		FleetSize:            len(cars),
		AvailableCars:        available,
		BookingsByStatus:     bookingCounts,
		PendingReviews:       len(pendingReviews),
		PendingCancellations: len(pendingCancellations),
	}, nil
}
