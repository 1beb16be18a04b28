package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

// EnsureSchema provides a mock function with given fields: ctx
func (_m *MockTransactionRepository) EnsureSchema(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// ListAll provides a mock function with given fields: ctx
func (_m *MockTransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Transaction)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	return r0, ret.Error(1)
}

// Insert provides a mock function with given fields: ctx, fields
func (_m *MockTransactionRepository) Insert(ctx context.Context, fields entity.Fields) (*entity.Transaction, error) {
	ret := _m.Called(ctx, fields)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, entity.Fields) *entity.Transaction); ok {
		r0 = rf(ctx, fields)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, fields
func (_m *MockTransactionRepository) Update(ctx context.Context, id uint64, fields entity.Fields) error {
	ret := _m.Called(ctx, id, fields)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) Delete(ctx context.Context, id uint64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository and registers a cleanup
// function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
