package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

var (
	ErrInputCanceled = eris.New("input canceled")
	ErrInvalidInput  = eris.New("invalid input")
)

// ServiceInterface is the prompt surface commands depend on.
type ServiceInterface interface {
	Prompt(ctx context.Context, prompt, defaultValue string) (string, error)
	Confirm(ctx context.Context, prompt, defaultValue string) (bool, error)
	Select(ctx context.Context, title, prompt string, options []string, defaultIndex int) (int, error)
	SelectString(ctx context.Context, title, prompt string, options []string, defaultValue string) (string, error)
}

type Service struct {
	Input  io.Reader // nil means os.Stdin
	Output io.Writer // nil means the styled printer

	reader *bufio.Reader
}

var _ ServiceInterface = (*Service)(nil)

// NewService creates a new input service with standard stdin/stdout.
func NewService() *Service {
	return &Service{}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) *Service {
	return &Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		if prompt != "" {
			s.printf("%s", prompt)
		}
		if defaultValue != "" {
			s.printf(" [%s]: ", defaultValue)
		} else {
			s.printf(": ")
		}

		input, err := s.readLine()
		if err != nil {
			return "", eris.Wrap(err, "failed to read input")
		}

		input = strings.TrimSpace(input)
		if input == "" && defaultValue != "" {
			return defaultValue, nil
		}
		return input, nil
	}
}

// Confirm asks for Y/n confirmation with default.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			input, err := s.Prompt(ctx, prompt, defaultValue)
			if err != nil {
				return false, err
			}

			switch strings.ToLower(input) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			default:
				s.println("Invalid input. Please enter 'y' or 'n'")
				continue
			}
		}
	}
}

// Select allows user to select from multiple options by number. Entering "q"
// cancels with ErrInputCanceled.
//
//nolint:gocognit // This function is complex but separated into smaller functions would make it harder to read.
func (s *Service) Select(ctx context.Context, title, prompt string, options []string, defaultIndex int) (int, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			s.println("")
			if title != "" {
				s.println(" " + title)
			}
			for i, option := range options {
				s.printf("%d. %s\n", i+1, option)
			}

			defaultStr := ""
			if defaultIndex >= 0 && defaultIndex < len(options) {
				defaultStr = strconv.Itoa(defaultIndex + 1)
			}

			input, err := s.Prompt(ctx, prompt, defaultStr)
			if err != nil {
				return 0, err
			}

			if input == "q" || input == "quit" {
				return -1, ErrInputCanceled
			}

			num, err := strconv.Atoi(input)
			if err != nil || num < 1 || num > len(options) {
				s.printf("Please enter a number between 1 and %d\n", len(options))
				continue
			}

			return num - 1, nil // Convert to 0-based index
		}
	}
}

// SelectString allows user to select from multiple options, returns the selected string.
func (s *Service) SelectString(
	ctx context.Context,
	title, prompt string,
	options []string,
	defaultValue string,
) (string, error) {
	defaultIndex := -1
	for i, option := range options {
		if option == defaultValue {
			defaultIndex = i
			break
		}
	}

	selectedIndex, err := s.Select(ctx, title, prompt, options, defaultIndex)
	if err != nil {
		return "", err
	}
	if selectedIndex == -1 {
		return "", ErrInputCanceled
	}

	return options[selectedIndex], nil
}

// Helper methods for I/O operations

func (s *Service) readLine() (string, error) {
	if s.reader == nil {
		input := s.Input
		if input == nil {
			input = os.Stdin
		}
		s.reader = bufio.NewReader(input)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		// accept a final unterminated line
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	output := s.Output
	if output == nil {
		printer.Info(fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(output, format, args...)
}

func (s *Service) println(text string) {
	output := s.Output
	if output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(output, text)
}
