//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/commitgate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// StagedChangesBuilder helps create staged-change sets with a fluent interface.
type StagedChangesBuilder struct {
	*testkit.BaseBuilder
	ref   string
	files []string
}

// NewStagedChangesBuilder creates a new builder with sensible defaults.
func NewStagedChangesBuilder() *StagedChangesBuilder {
	return &StagedChangesBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		ref:         "0123456789abcdef0123456789abcdef01234567",
		files:       []string{"main.go"},
	}
}

// WithRef sets the tree reference.
func (b *StagedChangesBuilder) WithRef(ref string) *StagedChangesBuilder {
	b.ref = ref
	return b
}

// WithFiles replaces the staged file list.
func (b *StagedChangesBuilder) WithFiles(files ...string) *StagedChangesBuilder {
	b.files = files
	return b
}

// Build creates the staged-change set (satisfies testkit.Builder interface).
func (b *StagedChangesBuilder) Build() interface{} {
	return b.BuildStagedChanges()
}

// BuildStagedChanges creates the staged-change set with a concrete return type.
func (b *StagedChangesBuilder) BuildStagedChanges() *entities.StagedChanges {
	return &entities.StagedChanges{
		Ref:   b.ref,
		Files: append([]string(nil), b.files...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *StagedChangesBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.ref = "0123456789abcdef0123456789abcdef01234567"
	b.files = []string{"main.go"}
	return b
}

// Clone creates a deep copy of the StagedChangesBuilder.
func (b *StagedChangesBuilder) Clone() testkit.Builder {
	return &StagedChangesBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		ref:         b.ref,
		files:       append([]string(nil), b.files...),
	}
}
