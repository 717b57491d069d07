package guid_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/guid"
)

func TestGuid(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Guid Suite")
}

// ── Parse ─────────────────────────────────────────────────────────────────────

var _ = Describe("Parse", func() {
	It("keeps valid pairs and drops unregistered namespaces", func() {
		set := guid.Parse(map[string]string{
			"imdb":     "tt1234567",
			"tmdb":     "550",
			"freebase": "m.abc123", // not in the registry
		})
		Expect(set).To(Equal(guid.Set{"imdb": "tt1234567", "tmdb": "550"}))
	})

	DescribeTable("drops values that fail the namespace validator",
		func(ns, value string) {
			Expect(guid.Parse(map[string]string{ns: value})).To(BeEmpty())
		},
		Entry("imdb id without tt prefix", "imdb", "1234567"),
		Entry("imdb id with trailing letter", "imdb", "tt1234567a"),
		Entry("non-numeric tmdb id", "tmdb", "550x"),
		Entry("non-numeric tvdb id", "tvdb", "d123456"),
		Entry("empty value", "tvdb", ""),
	)

	It("is idempotent: parsing a parsed set changes nothing", func() {
		raw := map[string]string{"imdb": "tt1234567", "tvdb": "77398", "tmdb": "bad id"}
		once := guid.Parse(raw)
		twice := guid.Parse(map[string]string(once))
		Expect(twice).To(Equal(once))
	})

	It("returns an empty set, not an error, when nothing survives", func() {
		Expect(guid.Parse(map[string]string{"tmdb": "not-a-number"})).To(BeEmpty())
		Expect(guid.Has(map[string]string{"tmdb": "not-a-number"})).To(BeFalse())
	})
})

// ── Validate ──────────────────────────────────────────────────────────────────

var _ = Describe("Validate", func() {
	It("accepts well-formed ids", func() {
		Expect(guid.Validate("imdb", "tt1234567")).To(Succeed())
		Expect(guid.Validate("tvdb", "77398")).To(Succeed())
	})

	It("rejects unknown namespaces", func() {
		Expect(guid.Validate("letterboxd", "123")).To(HaveOccurred())
	})

	It("rejects malformed values", func() {
		Expect(guid.Validate("imdb", "77398")).To(HaveOccurred())
	})
})

// ── Pointers ──────────────────────────────────────────────────────────────────

var _ = Describe("Pointers", func() {
	It("formats namespace://value keys in sorted order", func() {
		set := guid.Set{"tvdb": "77398", "imdb": "tt0364845"}
		Expect(set.Pointers()).To(Equal([]string{"imdb://tt0364845", "tvdb://77398"}))
	})

	It("returns nil for an empty set", func() {
		Expect(guid.Set{}.Pointers()).To(BeNil())
	})

	It("prefixes relative pointers with r and appends season/episode", func() {
		set := guid.Set{"tvdb": "77398"}
		Expect(set.RelativePointers(2, 14)).To(Equal([]string{"rtvdb://77398/2/14"}))
	})
})

// ── Set operations ────────────────────────────────────────────────────────────

var _ = Describe("Set", func() {
	It("merges with the other set winning on conflict", func() {
		a := guid.Set{"imdb": "tt1", "tvdb": "10"}
		b := guid.Set{"tvdb": "20", "tmdb": "30"}
		Expect(a.Merge(b)).To(Equal(guid.Set{"imdb": "tt1", "tvdb": "20", "tmdb": "30"}))
		// merge does not mutate the receiver
		Expect(a).To(Equal(guid.Set{"imdb": "tt1", "tvdb": "10"}))
	})

	It("compares sets by content", func() {
		Expect(guid.Set{"imdb": "tt1"}.Equal(guid.Set{"imdb": "tt1"})).To(BeTrue())
		Expect(guid.Set{"imdb": "tt1"}.Equal(guid.Set{"imdb": "tt2"})).To(BeFalse())
		Expect(guid.Set{"imdb": "tt1"}.Equal(guid.Set{})).To(BeFalse())
	})
})
