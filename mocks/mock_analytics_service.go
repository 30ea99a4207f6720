package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bini/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) AdvancedAnalytics(ctx context.Context) (*domain.AnalyticsReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsReport), args.Error(1)
}
