package repositories

import (
	domainRepos "github.com/rios0rios0/commitgate/internal/domain/repositories"
)

// CheckerRegistry holds the pipeline checks in execution order. Unlike a
// map-backed registry, order is part of the contract: later checks never run
// when an earlier one fails.
type CheckerRegistry struct {
	checkers []domainRepos.CheckerRepository
}

// NewCheckerRegistry creates an empty checker registry.
func NewCheckerRegistry() *CheckerRegistry {
	return &CheckerRegistry{}
}

// Register appends a checker to the end of the pipeline.
func (r *CheckerRegistry) Register(c domainRepos.CheckerRepository) {
	r.checkers = append(r.checkers, c)
}

// All returns every registered checker in registration order.
func (r *CheckerRegistry) All() []domainRepos.CheckerRepository {
	return r.checkers
}

// Names returns the labels of all registered checkers in pipeline order.
func (r *CheckerRegistry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for _, c := range r.checkers {
		names = append(names, c.Label())
	}
	return names
}
