package commands

// SubjectPattern exports subjectPattern for testing.
var SubjectPattern = subjectPattern //nolint:gochecknoglobals // test export
