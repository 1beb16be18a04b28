package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockAccessUseCase is a mock type for the AccessUseCase type
type MockAccessUseCase struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, password
func (_m *MockAccessUseCase) Login(ctx context.Context, password string) (*entity.Session, error) {
	ret := _m.Called(ctx, password)

	var r0 *entity.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Session)
	}
	return r0, ret.Error(1)
}

// Authorize provides a mock function with given fields: ctx, token
func (_m *MockAccessUseCase) Authorize(ctx context.Context, token string) (*entity.Session, error) {
	ret := _m.Called(ctx, token)

	var r0 *entity.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Session)
	}
	return r0, ret.Error(1)
}

// Logout provides a mock function with given fields: ctx, token
func (_m *MockAccessUseCase) Logout(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

// NewMockAccessUseCase creates a new instance of MockAccessUseCase and registers a cleanup
// function to assert the mocks expectations.
func NewMockAccessUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccessUseCase {
	m := &MockAccessUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
