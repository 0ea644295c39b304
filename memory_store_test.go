package election

import (
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryStore", func() {

	var store *MemoryStore
	var candidates []Candidate

	BeforeEach(func() {
		store = NewMemoryStore()
		candidates = []Candidate{
			{ID: "C1", Name: "Ram", Party: "Janata"},
			{ID: "C2", Name: "Sita", Party: "Lok"},
		}
	})

	It("implements the ElectionStore interface", func() {
		var _ = ElectionStore(store)
	})

	Describe("#GetElections", func() {
		It("returns sorted IDs of elections that have been created", func() {
			store.CreateElection("sarpanch", candidates)
			store.CreateElection("panch", candidates)
			Expect(store.GetElections()).To(Equal([]string{"panch", "sarpanch"}))
		})
	})

	Describe("#GetElection", func() {
		It("returns an error when an election hasn't been created", func() {
			result, err := store.GetElection("doesn't exist")
			Expect(result).To(BeNil())
			Expect(err).To(MatchError(ErrElectionNotFound))
		})

		It("returns an election if it has been previously created", func() {
			created, _ := store.CreateElection("sarpanch", candidates)
			get, err := store.GetElection("sarpanch")
			Expect(err).To(Succeed())
			Expect(get).To(BeIdenticalTo(created))
		})
	})

	Describe("#CreateElection", func() {
		It("refuses to replace an existing election", func() {
			_, err := store.CreateElection("sarpanch", candidates)
			Expect(err).To(Succeed())
			_, err = store.CreateElection("sarpanch", nil)
			Expect(err).To(MatchError(ErrElectionExists))
			Expect(store.Results("sarpanch", nil)).To(HaveLen(2))
		})
	})

	Describe("#RemoveElection", func() {
		It("deletes an election in the memory store", func() {
			store.CreateElection("sarpanch", candidates)
			store.CreateElection("panch", candidates)
			store.RemoveElection("panch")
			Expect(store.GetElections()).To(Equal([]string{"sarpanch"}))
			_, err := store.GetElection("panch")
			Expect(err).To(MatchError(ErrElectionNotFound))
		})
	})

	Describe("voting through the store", func() {

		BeforeEach(func() {
			store.CreateElection("sarpanch", candidates)
		})

		It("registers voters, casts votes and reports results", func() {
			Expect(store.RegisterVoter("sarpanch", &Voter{ID: "V1", Name: "Mohan", Age: 25})).To(BeTrue())
			Expect(store.RegisterVoter("sarpanch", &Voter{ID: "V2", Name: "Chotu", Age: 9})).To(BeFalse())

			receipt, err := store.CastVote("sarpanch", "V1", "C2")
			Expect(err).To(Succeed())
			Expect(receipt.CandidateID).To(Equal("C2"))

			_, err = store.CastVote("sarpanch", "V1", "C2")
			Expect(err).To(MatchError(ErrAlreadyVoted))

			winner, err := store.Winner("sarpanch")
			Expect(err).To(Succeed())
			Expect(winner.Name).To(Equal("Sita"))

			results, err := store.Results("sarpanch", ByName)
			Expect(err).To(Succeed())
			Expect(results[0].Name).To(Equal("Ram"))
		})

		It("returns an error for every operation on a missing election", func() {
			_, err := store.RegisterVoter("missing", &Voter{ID: "V1", Age: 30})
			Expect(err).To(MatchError(ErrElectionNotFound))
			_, err = store.CastVote("missing", "V1", "C1")
			Expect(err).To(MatchError(ErrElectionNotFound))
			_, err = store.Results("missing", nil)
			Expect(err).To(MatchError(ErrElectionNotFound))
			_, err = store.Winner("missing")
			Expect(err).To(MatchError(ErrElectionNotFound))
		})

		It("accepts exactly one vote per voter under concurrent casting", func() {
			store.RegisterVoter("sarpanch", &Voter{ID: "V1", Name: "Mohan", Age: 25})

			var wg sync.WaitGroup
			accepted := make(chan *Receipt, 20)
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(candidateID string) {
					defer wg.Done()
					if receipt, err := store.CastVote("sarpanch", "V1", candidateID); err == nil {
						accepted <- receipt
					}
				}([]string{"C1", "C2"}[i%2])
			}
			wg.Wait()
			close(accepted)

			Expect(accepted).To(HaveLen(1))
			registry, _ := store.GetElection("sarpanch")
			Expect(registry.BallotCount()).To(Equal(1))
		})
	})
})
