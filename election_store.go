package election

import "errors"

var (
	ErrElectionNotFound = errors.New("election not found")
	ErrElectionExists   = errors.New("election already exists")
)

// ElectionStore keeps named elections and forwards registry operations to them by election ID.
type ElectionStore interface {
	GetElections() []string
	GetElection(string) (*Registry, error)

	CreateElection(string, []Candidate) (*Registry, error)
	RemoveElection(string)

	RegisterVoter(string, *Voter) (bool, error)
	CastVote(electionID, voterID, candidateID string) (*Receipt, error)

	Results(string, Comparator) ([]CandidateResult, error)
	Winner(string) (*CandidateResult, error)
}
