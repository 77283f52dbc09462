//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	"github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// RunnerCall records a single external tool invocation.
type RunnerCall struct {
	Dir  string
	Name string
	Args []string
}

// StubCommandRunner is a scripted implementation of
// repositories.CommandRunner. Outputs are keyed by the full command line
// ("name arg1 arg2 ..."); unmatched invocations fall back to DefaultOutput.
type StubCommandRunner struct {
	Outputs       map[string]*entities.CommandOutput
	DefaultOutput *entities.CommandOutput
	Err           error

	// spy: every invocation received, in order
	Calls []RunnerCall
}

var _ repositories.CommandRunner = (*StubCommandRunner)(nil)

func (s *StubCommandRunner) Run(
	_ context.Context,
	dir, name string,
	args ...string,
) (*entities.CommandOutput, error) {
	s.Calls = append(s.Calls, RunnerCall{Dir: dir, Name: name, Args: args})

	if s.Err != nil {
		return nil, s.Err
	}

	key := strings.Join(append([]string{name}, args...), " ")
	if out, ok := s.Outputs[key]; ok {
		return out, nil
	}
	if s.DefaultOutput != nil {
		return s.DefaultOutput, nil
	}
	return &entities.CommandOutput{}, nil
}

// CommandLines returns every recorded invocation as a single command line,
// convenient for order and dedupe assertions.
func (s *StubCommandRunner) CommandLines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, strings.Join(append([]string{call.Name}, call.Args...), " "))
	}
	return lines
}
