package internal

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// SortedUniques hands collect a channel to send names into and returns the distinct names it sent, sorted. It
// keeps traversal code inline at the call site while the caller gets set semantics and a stable order.
func SortedUniques(collect func(chan<- string)) []string {
	names := make(chan string)
	go func() {
		defer close(names)
		collect(names)
	}()

	seen := mapset.NewThreadUnsafeSet[string]()
	for name := range names {
		seen.Add(name)
	}

	sorted := seen.ToSlice()
	sort.Strings(sorted)
	return sorted
}
