package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bini/internal/domain"
)

// MockPaymentService is a mock implementation of service.PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Breakdown(ctx context.Context, filters domain.ReportFilters) (*domain.PaymentReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReport), args.Error(1)
}

func (m *MockPaymentService) Details(ctx context.Context, method string, filters domain.ReportFilters) (*domain.PaymentMethodDetails, error) {
	args := m.Called(ctx, method, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethodDetails), args.Error(1)
}

func (m *MockPaymentService) Trends(ctx context.Context, year int) (*domain.TrendReport, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrendReport), args.Error(1)
}

func (m *MockPaymentService) Distribution(ctx context.Context, siteID *uuid.UUID) (*domain.DistributionReport, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionReport), args.Error(1)
}
