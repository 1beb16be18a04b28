package core

import (
	context "context"
	time "time"

	core "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	mock "github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock type for the TimeProvider type
type MockTimeProvider struct {
	mock.Mock
}

// Now provides a mock function with no fields
func (_m *MockTimeProvider) Now() time.Time {
	ret := _m.Called()
	return ret.Get(0).(time.Time)
}

// Today provides a mock function with no fields
func (_m *MockTimeProvider) Today() time.Time {
	ret := _m.Called()
	return ret.Get(0).(time.Time)
}

// Since provides a mock function with given fields: t
func (_m *MockTimeProvider) Since(t time.Time) core.Duration {
	ret := _m.Called(t)
	return ret.Get(0).(core.Duration)
}

// WithTimeout provides a mock function with given fields: ctx, timeout
func (_m *MockTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	ret := _m.Called(ctx, timeout)

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, core.Duration) context.Context); ok {
		r0 = rf(ctx, timeout)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	var r1 context.CancelFunc
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(context.CancelFunc)
	}

	return r0, r1
}

// NewMockTimeProvider creates a new instance of MockTimeProvider and registers a cleanup
// function to assert the mocks expectations.
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
