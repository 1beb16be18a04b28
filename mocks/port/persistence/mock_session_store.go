package persistence

import (
	context "context"
	time "time"

	entity "github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockSessionStore is a mock type for the SessionStore type
type MockSessionStore struct {
	mock.Mock
}

// Save provides a mock function with given fields: ctx, session, ttl
func (_m *MockSessionStore) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	ret := _m.Called(ctx, session, ttl)
	return ret.Error(0)
}

// Get provides a mock function with given fields: ctx, token
func (_m *MockSessionStore) Get(ctx context.Context, token string) (*entity.Session, bool) {
	ret := _m.Called(ctx, token)

	var r0 *entity.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Session)
	}
	return r0, ret.Bool(1)
}

// Delete provides a mock function with given fields: ctx, token
func (_m *MockSessionStore) Delete(ctx context.Context, token string) {
	_m.Called(ctx, token)
}

// NewMockSessionStore creates a new instance of MockSessionStore and registers a cleanup
// function to assert the mocks expectations.
func NewMockSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionStore {
	m := &MockSessionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
