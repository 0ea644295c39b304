package election

import (
	"fmt"
	"strings"
)

// Comparator orders two results: negative when a sorts before b, positive when after, zero when equal.
type Comparator func(a, b CandidateResult) int

// ByVotes puts the candidate with more votes first. It is the default ordering of Results.
func ByVotes(a, b CandidateResult) int {
	return b.Votes - a.Votes
}

func ByName(a, b CandidateResult) int {
	return strings.Compare(a.Name, b.Name)
}

func ByParty(a, b CandidateResult) int {
	return strings.Compare(a.Party, b.Party)
}

// Reverse flips the order of cmp.
func Reverse(cmp Comparator) Comparator {
	return func(a, b CandidateResult) int {
		return cmp(b, a)
	}
}

var namedComparators = map[string]Comparator{
	"votes": ByVotes,
	"name":  ByName,
	"party": ByParty,
}

// ComparatorByName looks up a comparator by the names used on the command line and in query strings: "votes",
// "name" or "party", optionally prefixed with "-" to reverse it. An empty name yields a nil Comparator, which
// Results treats as ByVotes.
func ComparatorByName(name string) (Comparator, error) {
	if name == "" {
		return nil, nil
	}

	reversed := strings.HasPrefix(name, "-")
	cmp, found := namedComparators[strings.TrimPrefix(name, "-")]
	if !found {
		return nil, fmt.Errorf("unknown sort order %q", name)
	}
	if reversed {
		return Reverse(cmp), nil
	}
	return cmp, nil
}
