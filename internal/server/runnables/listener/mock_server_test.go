package listener

import (
	"context"

	"github.com/stretchr/testify/mock"
)

var _ serverImplementation = (*MockServer)(nil)

// MockServer is a testify mock of the go-supervisor HTTP server runnable
type MockServer struct {
	mock.Mock
}

func (m *MockServer) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServer) Stop() {
	m.Called()
}

func (m *MockServer) GetState() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockServer) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockServer) GetStateChan(ctx context.Context) <-chan string {
	args := m.Called(ctx)
	return args.Get(0).(chan string)
}
