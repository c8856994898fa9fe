package service

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/internal/validators"
	"github.com/MKhiriev/go-pass-auth/models"
)

// UserValidationService validates input before it reaches the wrapped
// UserService, so malformed requests never cost a hash or a store call.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) Register(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, user)
}

func (v *UserValidationService) Remove(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.User{UserID: id}, validators.FieldUserID); err != nil {
		return err
	}
	return v.inner.Remove(ctx, id)
}

func (v *UserValidationService) Update(ctx context.Context, user models.User) error {
	return v.inner.Update(ctx, user)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
