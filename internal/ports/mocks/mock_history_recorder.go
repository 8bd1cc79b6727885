package mocks

import (
	context "context"

	domain "hyprstash/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockHistoryRecorder is a mock type for the HistoryRecorder type
type MockHistoryRecorder struct {
	mock.Mock
}

type MockHistoryRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHistoryRecorder) EXPECT() *MockHistoryRecorder_Expecter {
	return &MockHistoryRecorder_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with no fields
func (_m *MockHistoryRecorder) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHistoryRecorder_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockHistoryRecorder_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockHistoryRecorder_Expecter) Close() *MockHistoryRecorder_Close_Call {
	return &MockHistoryRecorder_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockHistoryRecorder_Close_Call) Run(run func()) *MockHistoryRecorder_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockHistoryRecorder_Close_Call) Return(_a0 error) *MockHistoryRecorder_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHistoryRecorder_Close_Call) RunAndReturn(run func() error) *MockHistoryRecorder_Close_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, limit
func (_m *MockHistoryRecorder) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.HistoryEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.HistoryEntry, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.HistoryEntry); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.HistoryEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryRecorder_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockHistoryRecorder_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int
func (_e *MockHistoryRecorder_Expecter) List(ctx interface{}, limit interface{}) *MockHistoryRecorder_List_Call {
	return &MockHistoryRecorder_List_Call{Call: _e.mock.On("List", ctx, limit)}
}

func (_c *MockHistoryRecorder_List_Call) Run(run func(ctx context.Context, limit int)) *MockHistoryRecorder_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockHistoryRecorder_List_Call) Return(_a0 []domain.HistoryEntry, _a1 error) *MockHistoryRecorder_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryRecorder_List_Call) RunAndReturn(run func(context.Context, int) ([]domain.HistoryEntry, error)) *MockHistoryRecorder_List_Call {
	_c.Call.Return(run)
	return _c
}

// Record provides a mock function with given fields: ctx, entry
func (_m *MockHistoryRecorder) Record(ctx context.Context, entry domain.HistoryEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Record")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.HistoryEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHistoryRecorder_Record_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Record'
type MockHistoryRecorder_Record_Call struct {
	*mock.Call
}

// Record is a helper method to define mock.On call
//   - ctx context.Context
//   - entry domain.HistoryEntry
func (_e *MockHistoryRecorder_Expecter) Record(ctx interface{}, entry interface{}) *MockHistoryRecorder_Record_Call {
	return &MockHistoryRecorder_Record_Call{Call: _e.mock.On("Record", ctx, entry)}
}

func (_c *MockHistoryRecorder_Record_Call) Run(run func(ctx context.Context, entry domain.HistoryEntry)) *MockHistoryRecorder_Record_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.HistoryEntry))
	})
	return _c
}

func (_c *MockHistoryRecorder_Record_Call) Return(_a0 error) *MockHistoryRecorder_Record_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHistoryRecorder_Record_Call) RunAndReturn(run func(context.Context, domain.HistoryEntry) error) *MockHistoryRecorder_Record_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHistoryRecorder creates a new instance of MockHistoryRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHistoryRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryRecorder {
	mock := &MockHistoryRecorder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
