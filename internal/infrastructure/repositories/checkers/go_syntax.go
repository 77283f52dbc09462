package checkers

import (
	"context"
	"go/parser"
	"go/scanner"
	"go/token"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
)

// GoSyntaxChecker parses every staged Go file and aggregates all syntax
// errors before failing, so one run reports every broken file.
type GoSyntaxChecker struct{}

// NewGoSyntaxChecker creates a new GoSyntaxChecker.
func NewGoSyntaxChecker() *GoSyntaxChecker {
	return &GoSyntaxChecker{}
}

func (it *GoSyntaxChecker) Label() string { return "go-syntax" }

func (it *GoSyntaxChecker) Applies(changes *entities.StagedChanges) bool {
	return len(changes.GoFiles()) > 0
}

func (it *GoSyntaxChecker) Run(
	_ context.Context,
	changes *entities.StagedChanges,
) entities.CheckResult {
	fset := token.NewFileSet()

	var details []string
	for _, file := range changes.GoFiles() {
		_, err := parser.ParseFile(fset, file, nil, parser.AllErrors|parser.SkipObjectResolution)
		if err == nil {
			continue
		}

		// parser.ParseFile returns the list as a plain value
		if list, ok := err.(scanner.ErrorList); ok {
			for _, e := range list {
				details = append(details, e.Error())
			}
			continue
		}
		details = append(details, err.Error())
	}

	if len(details) > 0 {
		return entities.FailResult(it.Label(), details...)
	}
	return entities.PassResult(it.Label())
}
