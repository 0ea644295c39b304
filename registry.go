package election

import (
	"errors"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// MinimumVotingAge is the youngest age RegisterVoter accepts.
const MinimumVotingAge = 18

// The three reasons a vote can be refused. CastVote checks them in this order and returns the first that applies.
var (
	ErrWrongCandidate    = errors.New("Wrong candidate!")
	ErrUnauthorizedVoter = errors.New("Unauthorized voter!")
	ErrAlreadyVoted      = errors.New("Already voted!")
)

// Candidate is someone standing in the election. Identity is ID.
type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
}

// Voter is a person asking to be put on the electoral roll.
type Voter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Ballot records which candidate a voter chose. Ballots are final once recorded.
type Ballot struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
}

// Receipt is handed back for every accepted vote.
type Receipt struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
}

// CandidateResult is a candidate together with the number of ballots cast for them.
type CandidateResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// Registry owns the roll, the ballot box and the count for a single election. Nothing outside its methods can
// reach the registered voters or the recorded ballots.
//
// A Registry does no locking of its own. Callers sharing one between goroutines must serialize access, as
// MemoryStore does.
type Registry struct {
	candidates   []Candidate
	candidateIDs mapset.Set[string]
	voters       map[string]Voter
	ballots      map[string]Ballot
}

// NewRegistry starts an election with an empty roll. The order of candidates is kept and used to break ties
// in Results and Winner.
func NewRegistry(candidates []Candidate) *Registry {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	ids := mapset.NewThreadUnsafeSet[string]()
	for _, c := range ordered {
		ids.Add(c.ID)
	}

	return &Registry{
		candidates:   ordered,
		candidateIDs: ids,
		voters:       map[string]Voter{},
		ballots:      map[string]Ballot{},
	}
}

// RegisterVoter adds voter to the roll. It returns false, leaving the roll untouched, when voter is nil, has no
// ID, is already registered or is under MinimumVotingAge.
func (r *Registry) RegisterVoter(voter *Voter) bool {
	if voter == nil || voter.ID == "" {
		return false
	}
	if _, registered := r.voters[voter.ID]; registered {
		return false
	}
	if voter.Age < MinimumVotingAge {
		return false
	}
	r.voters[voter.ID] = *voter
	return true
}

// CastVote records a ballot for voterID. On failure the receipt is nil and the error is one of
// ErrWrongCandidate, ErrUnauthorizedVoter or ErrAlreadyVoted.
func (r *Registry) CastVote(voterID, candidateID string) (*Receipt, error) {
	if !r.candidateIDs.Contains(candidateID) {
		return nil, ErrWrongCandidate
	}
	if _, registered := r.voters[voterID]; !registered {
		return nil, ErrUnauthorizedVoter
	}
	if _, voted := r.ballots[voterID]; voted {
		return nil, ErrAlreadyVoted
	}

	r.ballots[voterID] = Ballot{VoterID: voterID, CandidateID: candidateID}
	return &Receipt{VoterID: voterID, CandidateID: candidateID}, nil
}

// Reason returns the human-readable reason behind a CastVote error, or "" for any other error.
func Reason(err error) string {
	for _, known := range []error{ErrWrongCandidate, ErrUnauthorizedVoter, ErrAlreadyVoted} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ""
}

// Results counts the ballots for every candidate and orders them with cmp, or ByVotes when cmp is nil. The sort
// is stable so candidates that compare equal stay in the order they were given to NewRegistry.
func (r *Registry) Results(cmp Comparator) []CandidateResult {
	counts := r.counts()

	results := make([]CandidateResult, 0, len(r.candidates))
	for _, c := range r.candidates {
		results = append(results, CandidateResult{
			ID:    c.ID,
			Name:  c.Name,
			Party: c.Party,
			Votes: counts[c.ID],
		})
	}

	sortResults(results, cmp)
	return results
}

// Winner returns the top entry of Results(nil), or nil when that candidate has no votes. An election without
// candidates has no winner.
func (r *Registry) Winner() *CandidateResult {
	results := r.Results(nil)
	if len(results) == 0 || results[0].Votes == 0 {
		return nil
	}
	winner := results[0]
	return &winner
}

// Candidates returns a copy of the candidate list in its original order.
func (r *Registry) Candidates() []Candidate {
	candidates := make([]Candidate, len(r.candidates))
	copy(candidates, r.candidates)
	return candidates
}

func (r *Registry) IsRegistered(voterID string) bool {
	_, registered := r.voters[voterID]
	return registered
}

func (r *Registry) VoterCount() int {
	return len(r.voters)
}

func (r *Registry) HasVoted(voterID string) bool {
	_, voted := r.ballots[voterID]
	return voted
}

// Ballot returns a copy of the ballot recorded for voterID.
func (r *Registry) Ballot(voterID string) (Ballot, bool) {
	ballot, voted := r.ballots[voterID]
	return ballot, voted
}

func (r *Registry) BallotCount() int {
	return len(r.ballots)
}

// counts tallies ballots per candidate ID.
func (r *Registry) counts() map[string]int {
	counts := make(map[string]int, len(r.candidates))
	for _, ballot := range r.ballots {
		counts[ballot.CandidateID]++
	}
	return counts
}

func sortResults(results []CandidateResult, cmp Comparator) {
	if cmp == nil {
		cmp = ByVotes
	}
	sort.SliceStable(results, func(i, j int) bool {
		return cmp(results[i], results[j]) < 0
	})
}
