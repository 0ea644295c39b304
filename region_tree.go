package election

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/jicksta/village-election/internal"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	ErrRegionNotFound = errors.New("region not found")
	ErrRegionCycle    = errors.New("region would create a cycle")
)

// RegionTree nests regions (a village, its wards, their booths) so votes can be counted at any level. Each
// region may have one Registry attached; a region's tally is its own Registry's count plus the tallies of all
// of its children.
type RegionTree struct {
	root       string
	g          *simple.DirectedGraph
	names      map[int64]string
	registries map[int64]*Registry
}

func NewRegionTree(root string) *RegionTree {
	tree := &RegionTree{
		root:       root,
		g:          simple.NewDirectedGraph(),
		names:      map[int64]string{},
		registries: map[int64]*Registry{},
	}
	tree.addNode(root)
	return tree
}

func (tree *RegionTree) Root() string {
	return tree.root
}

// AddRegion adds child beneath parent. The parent must already be in the tree and the child must not already
// have a parent. An edge that would close a cycle is rolled back and reported as ErrRegionCycle.
func (tree *RegionTree) AddRegion(parent, child string) error {
	parentID, childID := regionID(parent), regionID(child)

	if tree.g.Node(parentID) == nil {
		return fmt.Errorf("parent %q: %w", parent, ErrRegionNotFound)
	}
	if parentID == childID {
		return fmt.Errorf("%q under itself: %w", child, ErrRegionCycle)
	}
	if tree.g.Node(childID) != nil && tree.g.To(childID).Len() > 0 {
		return fmt.Errorf("region %q already has a parent", child)
	}

	tree.addNode(child)
	tree.g.SetEdge(simple.Edge{F: simple.Node(parentID), T: simple.Node(childID)})

	if _, err := topo.Sort(tree.g); err != nil {
		tree.g.RemoveEdge(parentID, childID)
		return fmt.Errorf("%q under %q: %w", child, parent, ErrRegionCycle)
	}
	return nil
}

// AttachRegistry makes r the ballot box of region, replacing any Registry attached before.
func (tree *RegionTree) AttachRegistry(region string, r *Registry) error {
	id := regionID(region)
	if tree.g.Node(id) == nil {
		return fmt.Errorf("%q: %w", region, ErrRegionNotFound)
	}
	tree.registries[id] = r
	return nil
}

// Tally returns the votes per candidate ID for region and everything below it.
func (tree *RegionTree) Tally(region string) (map[string]int, error) {
	id := regionID(region)
	if tree.g.Node(id) == nil {
		return nil, fmt.Errorf("%q: %w", region, ErrRegionNotFound)
	}
	totals := map[string]int{}
	tree.tally(id, totals)
	return totals, nil
}

func (tree *RegionTree) tally(id int64, totals map[string]int) {
	if r := tree.registries[id]; r != nil {
		for candidateID, votes := range r.counts() {
			totals[candidateID] += votes
		}
	}
	for _, child := range tree.childIDs(id) {
		tree.tally(child, totals)
	}
}

// Results turns the tally of region into ordered results. Candidates are listed in the order they are first met
// walking the tree depth first, which is the tie-break order.
func (tree *RegionTree) Results(region string, cmp Comparator) ([]CandidateResult, error) {
	totals, err := tree.Tally(region)
	if err != nil {
		return nil, err
	}

	var results []CandidateResult
	seen := map[string]bool{}
	tree.walk(regionID(region), func(r *Registry) {
		for _, c := range r.candidates {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			results = append(results, CandidateResult{ID: c.ID, Name: c.Name, Party: c.Party, Votes: totals[c.ID]})
		}
	})

	sortResults(results, cmp)
	return results, nil
}

func (tree *RegionTree) walk(id int64, visit func(*Registry)) {
	if r := tree.registries[id]; r != nil {
		visit(r)
	}
	for _, child := range tree.childIDs(id) {
		tree.walk(child, visit)
	}
}

// Regions returns the name of every region in the tree, sorted.
func (tree *RegionTree) Regions() []string {
	return internal.SortedUniques(func(q chan<- string) {
		for _, name := range tree.names {
			q <- name
		}
	})
}

// Children returns the direct children of region, sorted. Unknown regions have none.
func (tree *RegionTree) Children(region string) []string {
	var names []string
	for _, id := range tree.childIDs(regionID(region)) {
		names = append(names, tree.names[id])
	}
	return names
}

// childIDs lists the children of id ordered by name so traversal is deterministic.
func (tree *RegionTree) childIDs(id int64) []int64 {
	if tree.g.Node(id) == nil {
		return nil
	}
	var ids []int64
	nodes := tree.g.From(id)
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool {
		return tree.names[ids[i]] < tree.names[ids[j]]
	})
	return ids
}

func (tree *RegionTree) addNode(name string) {
	id := regionID(name)
	if tree.g.Node(id) == nil {
		tree.g.AddNode(simple.Node(id))
		tree.names[id] = name
	}
}

func regionID(name string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(name))
	return int64(hasher.Sum64())
}
