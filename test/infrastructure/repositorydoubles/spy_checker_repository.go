//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	"github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// SpyCheckerRepository is a configurable spy implementation of
// repositories.CheckerRepository for pipeline tests.
type SpyCheckerRepository struct {
	LabelName     string
	AppliesResult bool
	Result        entities.CheckResult

	// spy: call tracking
	RunCount     int
	AppliesCount int
}

var _ repositories.CheckerRepository = (*SpyCheckerRepository)(nil)

func (s *SpyCheckerRepository) Label() string {
	return s.LabelName
}

func (s *SpyCheckerRepository) Applies(_ *entities.StagedChanges) bool {
	s.AppliesCount++
	return s.AppliesResult
}

func (s *SpyCheckerRepository) Run(
	_ context.Context,
	_ *entities.StagedChanges,
) entities.CheckResult {
	s.RunCount++
	return s.Result
}
