package election

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Comparators", func() {

	ram := CandidateResult{ID: "C1", Name: "Ram", Party: "Janata", Votes: 2}
	sita := CandidateResult{ID: "C2", Name: "Sita", Party: "Lok", Votes: 5}

	It("ranks more votes first with ByVotes", func() {
		Expect(ByVotes(sita, ram)).To(BeNumerically("<", 0))
		Expect(ByVotes(ram, sita)).To(BeNumerically(">", 0))
		Expect(ByVotes(ram, ram)).To(BeZero())
	})

	It("orders alphabetically with ByName and ByParty", func() {
		Expect(ByName(ram, sita)).To(BeNumerically("<", 0))
		Expect(ByParty(sita, ram)).To(BeNumerically(">", 0))
	})

	It("flips a comparator with Reverse", func() {
		Expect(Reverse(ByName)(ram, sita)).To(BeNumerically(">", 0))
	})

	DescribeTable("looks comparators up by name",
		func(name string, firstID string) {
			cmp, err := ComparatorByName(name)
			Expect(err).To(Succeed())
			registry, _ := NewRegistryBuilder().
				Candidate("C1", "Ram", "Lok").
				Candidate("C2", "Sita", "Janata").
				Voter("V1", "Mohan", 25).
				Vote("V1", "C2").
				Registry()
			Expect(registry.Results(cmp)[0].ID).To(Equal(firstID))
		},
		Entry("empty means the default", "", "C2"),
		Entry("votes", "votes", "C2"),
		Entry("reversed votes", "-votes", "C1"),
		Entry("name", "name", "C1"),
		Entry("reversed name", "-name", "C2"),
		Entry("party", "party", "C2"),
	)

	It("rejects an unknown name", func() {
		cmp, err := ComparatorByName("age")
		Expect(cmp).To(BeNil())
		Expect(err).To(MatchError(ContainSubstring(`unknown sort order "age"`)))
	})
})
