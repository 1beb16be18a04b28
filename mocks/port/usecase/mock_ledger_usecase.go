package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	mock "github.com/stretchr/testify/mock"
)

// MockLedgerUseCase is a mock type for the LedgerUseCase type
type MockLedgerUseCase struct {
	mock.Mock
}

// EnsureSchema provides a mock function with given fields: ctx
func (_m *MockLedgerUseCase) EnsureSchema(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// GetLedgerView provides a mock function with given fields: ctx
func (_m *MockLedgerUseCase) GetLedgerView(ctx context.Context) (*entity.LedgerView, error) {
	ret := _m.Called(ctx)

	var r0 *entity.LedgerView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.LedgerView)
	}
	return r0, ret.Error(1)
}

// ListOptions provides a mock function with given fields: ctx
func (_m *MockLedgerUseCase) ListOptions(ctx context.Context) ([]entity.LedgerOption, error) {
	ret := _m.Called(ctx)

	var r0 []entity.LedgerOption
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.LedgerOption)
	}
	return r0, ret.Error(1)
}

// GetEditForm provides a mock function with given fields: ctx, id
func (_m *MockLedgerUseCase) GetEditForm(ctx context.Context, id uint64) (*usecase.EditForm, error) {
	ret := _m.Called(ctx, id)

	var r0 *usecase.EditForm
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.EditForm)
	}
	return r0, ret.Error(1)
}

// CreateTransaction provides a mock function with given fields: ctx, input
func (_m *MockLedgerUseCase) CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*entity.Transaction, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	return r0, ret.Error(1)
}

// UpdateTransaction provides a mock function with given fields: ctx, id, input
func (_m *MockLedgerUseCase) UpdateTransaction(ctx context.Context, id uint64, input usecase.TransactionInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteTransaction provides a mock function with given fields: ctx, id
func (_m *MockLedgerUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewMockLedgerUseCase creates a new instance of MockLedgerUseCase and registers a cleanup
// function to assert the mocks expectations.
func NewMockLedgerUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerUseCase {
	m := &MockLedgerUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
