package config

import (
	"github.com/stretchr/testify/mock"
)

// MockService is a testify mock of ServiceInterface.
type MockService struct {
	mock.Mock
}

var _ ServiceInterface = (*MockService)(nil)

func (m *MockService) GetConfig() *Config {
	args := m.Called()
	return args.Get(0).(*Config)
}

func (m *MockService) Save() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockService) Clear() error {
	args := m.Called()
	return args.Error(0)
}
