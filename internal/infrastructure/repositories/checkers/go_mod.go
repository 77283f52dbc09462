package checkers

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// GoModChecker parses staged go.mod files and reports structural errors, so
// a broken module definition never reaches a commit.
type GoModChecker struct{}

// NewGoModChecker creates a new GoModChecker.
func NewGoModChecker() *GoModChecker {
	return &GoModChecker{}
}

func (it *GoModChecker) Label() string { return "gomod" }

func (it *GoModChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.ModFiles()) > 0
}

func (it *GoModChecker) Run(
	_ context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	var details []string
	for _, file := range changes.ModFiles() {
		data, err := os.ReadFile(file)
		if err != nil {
			details = append(details, fmt.Sprintf("failed to read %s: %v", file, err))
			continue
		}
		if _, parseErr := modfile.Parse(file, data, nil); parseErr != nil {
			details = append(details, parseErr.Error())
		}
	}

	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}
