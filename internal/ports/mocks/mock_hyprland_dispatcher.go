package mocks

import (
	context "context"

	domain "hyprstash/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockHyprlandDispatcher is a mock type for the HyprlandDispatcher type
type MockHyprlandDispatcher struct {
	mock.Mock
}

type MockHyprlandDispatcher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHyprlandDispatcher) EXPECT() *MockHyprlandDispatcher_Expecter {
	return &MockHyprlandDispatcher_Expecter{mock: &_m.Mock}
}

// MoveWindowToWorkspace provides a mock function with given fields: ctx, address, workspace
func (_m *MockHyprlandDispatcher) MoveWindowToWorkspace(ctx context.Context, address domain.Address, workspace domain.WorkspaceID) error {
	ret := _m.Called(ctx, address, workspace)

	if len(ret) == 0 {
		panic("no return value specified for MoveWindowToWorkspace")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Address, domain.WorkspaceID) error); ok {
		r0 = rf(ctx, address, workspace)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHyprlandDispatcher_MoveWindowToWorkspace_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MoveWindowToWorkspace'
type MockHyprlandDispatcher_MoveWindowToWorkspace_Call struct {
	*mock.Call
}

// MoveWindowToWorkspace is a helper method to define mock.On call
//   - ctx context.Context
//   - address domain.Address
//   - workspace domain.WorkspaceID
func (_e *MockHyprlandDispatcher_Expecter) MoveWindowToWorkspace(ctx interface{}, address interface{}, workspace interface{}) *MockHyprlandDispatcher_MoveWindowToWorkspace_Call {
	return &MockHyprlandDispatcher_MoveWindowToWorkspace_Call{Call: _e.mock.On("MoveWindowToWorkspace", ctx, address, workspace)}
}

func (_c *MockHyprlandDispatcher_MoveWindowToWorkspace_Call) Run(run func(ctx context.Context, address domain.Address, workspace domain.WorkspaceID)) *MockHyprlandDispatcher_MoveWindowToWorkspace_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Address), args[2].(domain.WorkspaceID))
	})
	return _c
}

func (_c *MockHyprlandDispatcher_MoveWindowToWorkspace_Call) Return(_a0 error) *MockHyprlandDispatcher_MoveWindowToWorkspace_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHyprlandDispatcher_MoveWindowToWorkspace_Call) RunAndReturn(run func(context.Context, domain.Address, domain.WorkspaceID) error) *MockHyprlandDispatcher_MoveWindowToWorkspace_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHyprlandDispatcher creates a new instance of MockHyprlandDispatcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHyprlandDispatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHyprlandDispatcher {
	mock := &MockHyprlandDispatcher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
