//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// SpyGitRepository is a configurable spy implementation of
// repositories.GitRepository. Configure the response fields for the methods
// your test exercises, then inspect the call-tracking fields.
type SpyGitRepository struct {
	// --- ResolveRef ---
	Ref             string
	RefErr          error
	ResolveRefCalls int

	// --- StagedFiles ---
	Files            []string
	FilesErr         error
	StagedFilesCalls int
	// spy: refs that were requested
	StagedFilesRefs []string

	// --- HeadMessage ---
	Message          string
	MessageErr       error
	HeadMessageCalls int

	// --- DiffCheck ---
	DiffCheckOutput string
	DiffCheckErr    error
	DiffCheckCalls  int
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) ResolveRef(_ context.Context) (string, error) {
	s.ResolveRefCalls++
	return s.Ref, s.RefErr
}

func (s *SpyGitRepository) StagedFiles(_ context.Context, ref string) ([]string, error) {
	s.StagedFilesCalls++
	s.StagedFilesRefs = append(s.StagedFilesRefs, ref)
	return s.Files, s.FilesErr
}

func (s *SpyGitRepository) HeadMessage(_ context.Context) (string, error) {
	s.HeadMessageCalls++
	return s.Message, s.MessageErr
}

func (s *SpyGitRepository) DiffCheck(_ context.Context, _ string) (string, error) {
	s.DiffCheckCalls++
	return s.DiffCheckOutput, s.DiffCheckErr
}
