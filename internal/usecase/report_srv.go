package usecase

import (
	"context"
	"fmt"

	"airline-booking/internal/data/repository"

	"go.uber.org/zap"
)

type ReportService interface {
	Overview(ctx context.Context) (*repository.Overview, error)
	RevenueByMonth(ctx context.Context, months int) ([]*repository.RevenueRow, error)
	BookingsByStatus(ctx context.Context) ([]*repository.StatusCount, error)
	TopRoutes(ctx context.Context, limit int) ([]*repository.RouteStats, error)
	FlightPerformance(ctx context.Context, limit int) ([]*repository.FlightPerformance, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) Overview(ctx context.Context) (*repository.Overview, error) {
	overview, err := s.repo.Report.Overview(ctx)
	if err != nil {
		s.log.Error("Failed to build overview report", zap.Error(err))
		return nil, fmt.Errorf("overview report: %w", err)
	}
	return overview, nil
}

func (s *reportService) RevenueByMonth(ctx context.Context, months int) ([]*repository.RevenueRow, error) {
	if months <= 0 || months > 36 {
		months = 12
	}

	rows, err := s.repo.Report.RevenueByMonth(ctx, months)
	if err != nil {
		s.log.Error("Failed to build revenue report", zap.Error(err))
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	return rows, nil
}

func (s *reportService) BookingsByStatus(ctx context.Context) ([]*repository.StatusCount, error) {
	rows, err := s.repo.Report.BookingsByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to build bookings report", zap.Error(err))
		return nil, fmt.Errorf("bookings report: %w", err)
	}
	return rows, nil
}

func (s *reportService) TopRoutes(ctx context.Context, limit int) ([]*repository.RouteStats, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	rows, err := s.repo.Report.TopRoutes(ctx, limit)
	if err != nil {
		s.log.Error("Failed to build routes report", zap.Error(err))
		return nil, fmt.Errorf("routes report: %w", err)
	}
	return rows, nil
}

func (s *reportService) FlightPerformance(ctx context.Context, limit int) ([]*repository.FlightPerformance, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	rows, err := s.repo.Report.FlightPerformance(ctx, limit)
	if err != nil {
		s.log.Error("Failed to build performance report", zap.Error(err))
		return nil, fmt.Errorf("performance report: %w", err)
	}
	return rows, nil
}
