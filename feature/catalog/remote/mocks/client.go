package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of remote.API
type API struct {
	mock.Mock
}

func (m *API) List(ctx context.Context, limit int) ([]map[string]any, error) {
	args := m.Called(ctx, limit)
	if raws, ok := args.Get(0).([]map[string]any); ok {
		return raws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) Create(ctx context.Context, payload any) (map[string]any, error) {
	args := m.Called(ctx, payload)
	if raw, ok := args.Get(0).(map[string]any); ok {
		return raw, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) Update(ctx context.Context, id int, payload any) (map[string]any, error) {
	args := m.Called(ctx, id, payload)
	if raw, ok := args.Get(0).(map[string]any); ok {
		return raw, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
