package input

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockService provides a mock implementation of ServiceInterface for testing.
type MockService struct {
	mock.Mock
}

// Ensure MockService implements ServiceInterface.
var _ ServiceInterface = (*MockService)(nil)

// Prompt mocks the Prompt method.
func (m *MockService) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.String(0), args.Error(1)
}

// Confirm mocks the Confirm method.
func (m *MockService) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.Bool(0), args.Error(1)
}

// Select mocks the Select method.
func (m *MockService) Select(
	ctx context.Context,
	title, prompt string,
	options []string,
	defaultIndex int,
) (int, error) {
	args := m.Called(ctx, title, prompt, options, defaultIndex)
	return args.Int(0), args.Error(1)
}

// SelectString mocks the SelectString method.
func (m *MockService) SelectString(
	ctx context.Context,
	title, prompt string,
	options []string,
	defaultValue string,
) (string, error) {
	args := m.Called(ctx, title, prompt, options, defaultValue)
	return args.String(0), args.Error(1)
}
