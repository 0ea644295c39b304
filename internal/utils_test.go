package internal

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SortedUniques()", func() {
	It("returns the sorted unique strings sent to the chan", func() {
		actual := SortedUniques(func(q chan<- string) {
			q <- "Rampur"
			q <- "Booth 2"
			q <- "Rampur"
			q <- "booth 1"
			q <- "Booth 2"
		})
		Expect(actual).To(Equal([]string{"Booth 2", "Rampur", "booth 1"})) // capitals sort before lower case
	})

	It("returns an empty slice when nothing is sent", func() {
		Expect(SortedUniques(func(chan<- string) {})).To(BeEmpty())
	})
})
