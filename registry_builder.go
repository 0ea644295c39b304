package election

import (
	"errors"
	"fmt"
)

// RegistryBuilder exposes a simple builder-pattern DSL for setting up a Registry progressively.
type RegistryBuilder struct {
	Candidates []Candidate
	Voters     []*Voter
	Ballots    []Ballot
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// Candidate appends a candidate. Candidates keep the order they were added in.
func (builder *RegistryBuilder) Candidate(id, name, party string) *RegistryBuilder {
	builder.Candidates = append(builder.Candidates, Candidate{ID: id, Name: name, Party: party})
	return builder
}

// Voter queues a voter to be registered once the Registry is built.
func (builder *RegistryBuilder) Voter(id, name string, age int) *RegistryBuilder {
	builder.Voters = append(builder.Voters, &Voter{ID: id, Name: name, Age: age})
	return builder
}

// Vote queues a ballot to be cast after every queued voter has been registered.
func (builder *RegistryBuilder) Vote(voterID, candidateID string) *RegistryBuilder {
	builder.Ballots = append(builder.Ballots, Ballot{VoterID: voterID, CandidateID: candidateID})
	return builder
}

// Registry builds a new Registry, registers the queued voters and casts the queued votes in order. Every
// rejected registration or vote is reported in the joined error; the Registry is returned either way.
func (builder *RegistryBuilder) Registry() (*Registry, error) {
	registry := NewRegistry(builder.Candidates)

	var errs []error
	for _, voter := range builder.Voters {
		if !registry.RegisterVoter(voter) {
			errs = append(errs, fmt.Errorf("voter %q was not registered", voter.ID))
		}
	}
	for _, ballot := range builder.Ballots {
		if _, err := registry.CastVote(ballot.VoterID, ballot.CandidateID); err != nil {
			errs = append(errs, fmt.Errorf("vote by %q for %q: %w", ballot.VoterID, ballot.CandidateID, err))
		}
	}

	return registry, errors.Join(errs...)
}

// Results is simply a shorthand for Registry() followed by Results(nil), ignoring rejected steps.
func (builder *RegistryBuilder) Results() []CandidateResult {
	registry, _ := builder.Registry()
	return registry.Results(nil)
}
