package commands

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitgate/internal/domain/entities"
	"github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// CommitMessage is the interface for the commit_message task.
type CommitMessage interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// CommitMessageCommand validates the most recent commit message against the
// subject-length, subject-pattern, and blank-second-line rules.
type CommitMessageCommand struct {
	gitRepo repositories.GitRepository
}

// NewCommitMessageCommand creates a new CommitMessageCommand.
func NewCommitMessageCommand(gitRepo repositories.GitRepository) *CommitMessageCommand {
	return &CommitMessageCommand{gitRepo: gitRepo}
}

// Execute reads the HEAD commit message and applies the rules in order,
// returning the first violation.
func (it *CommitMessageCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) error {
	raw, err := it.gitRepo.HeadMessage(ctx)
	if err != nil {
		return fmt.Errorf("failed to read commit message: %w", err)
	}

	msg := entities.NewCommitMessage(raw)
	if validateErr := validateMessage(&settings.Message, msg); validateErr != nil {
		return validateErr
	}

	logger.Debugf("Commit message %q passed all rules", msg.Subject())
	return nil
}

// validateMessage applies the three message rules in order and returns the
// first violation, or nil when the message is compliant.
func validateMessage(rules *entities.MessageSettings, msg entities.CommitMessage) error {
	subject := msg.Subject()

	if length := utf8.RuneCountInString(subject); length > rules.SubjectLimit {
		return fmt.Errorf(
			"subject line is %d characters, the limit is %d:\n\n    %s",
			length, rules.SubjectLimit, subject,
		)
	}

	if !subjectPattern(rules.Types).MatchString(subject) {
		return fmt.Errorf(
			"subject line does not follow \"type(scope): description\":\n\n    %s\n\n"+
				"allowed types: %s; the description must be non-empty and must not "+
				"end in a period or trailing space",
			subject, strings.Join(rules.Types, ", "),
		)
	}

	if second, ok := msg.SecondLine(); ok && second != "" {
		return fmt.Errorf(
			"second line must be empty to separate subject and body, got:\n\n    %s",
			second,
		)
	}

	return nil
}

// subjectPattern builds the subject regex from the configured type tags:
// one of the tags, an optional parenthesized scope of 2-20 characters, then
// ": " and a description that does not end in a period or whitespace.
func subjectPattern(types []string) *regexp.Regexp {
	return regexp.MustCompile(
		fmt.Sprintf(`^(%s)(\(.{2,20}\))?: .*[^.\s]$`, strings.Join(types, "|")),
	)
}
