package service

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/internal/metrics"
	"github.com/MKhiriev/go-pass-auth/models"
)

// UserMetricsService counts registration outcomes of the wrapped
// UserService, validation failures included.
type UserMetricsService struct {
	inner UserService
}

func NewUserMetricsService() UserServiceWrapper {
	return &UserMetricsService{}
}

func (m *UserMetricsService) Register(ctx context.Context, user models.User) (models.User, error) {
	created, err := m.inner.Register(ctx, user)
	metrics.RecordRegistration(err)
	return created, err
}

func (m *UserMetricsService) Remove(ctx context.Context, id string) error {
	return m.inner.Remove(ctx, id)
}

func (m *UserMetricsService) Update(ctx context.Context, user models.User) error {
	return m.inner.Update(ctx, user)
}

func (m *UserMetricsService) Wrap(wrapper UserService) UserService {
	m.inner = wrapper
	return m
}
