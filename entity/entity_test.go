package entity_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

func TestEntity(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Entity Suite")
}

func movieState(via string, watched bool, updatedAt int64) *entity.State {
	return &entity.State{
		Type:      entity.TypeMovie,
		Title:     "Heat",
		Year:      1995,
		Watched:   watched,
		UpdatedAt: updatedAt,
		Via:       via,
		GUIDs:     guid.Set{"imdb": "tt0113277"},
		Metadata: map[string]entity.Metadata{
			via: {ID: via + "-101", Type: entity.TypeMovie, Watched: watched},
		},
	}
}

// ── Apply ─────────────────────────────────────────────────────────────────────

var _ = Describe("Apply", func() {
	It("never decreases updatedAt unless ignoreDate is set", func() {
		s := movieState("plex1", true, 100)
		older := movieState("emby1", false, 50)

		s.Apply(older, entity.ApplyOptions{})
		Expect(s.UpdatedAt).To(Equal(int64(100)))
		Expect(s.Watched).To(BeTrue())

		s.Apply(older, entity.ApplyOptions{IgnoreDate: true})
		Expect(s.UpdatedAt).To(Equal(int64(50)))
		Expect(s.Watched).To(BeFalse())
		Expect(s.Via).To(Equal("emby1"))
	})

	It("adopts watched and updatedAt together from a newer observation", func() {
		s := movieState("plex1", false, 100)
		newer := movieState("emby1", true, 200)

		s.Apply(newer, entity.ApplyOptions{})
		Expect(s.Watched).To(BeTrue())
		Expect(s.UpdatedAt).To(Equal(int64(200)))
		Expect(s.Via).To(Equal("emby1"))
	})

	It("replaces per-backend metadata slots unconditionally", func() {
		s := movieState("plex1", true, 200)
		older := movieState("emby1", false, 50)

		s.Apply(older, entity.ApplyOptions{})
		// scalar state kept, but emby1's slot recorded
		Expect(s.Watched).To(BeTrue())
		Expect(s.Metadata).To(HaveKey("emby1"))
		Expect(s.Metadata["emby1"].ID).To(Equal("emby1-101"))
	})

	It("is commutative over metadata when backends are disjoint", func() {
		a := movieState("plex1", false, 100)
		b := movieState("emby1", false, 100)

		left := movieState("seed", false, 100)
		left.Apply(a, entity.ApplyOptions{})
		left.Apply(b, entity.ApplyOptions{})

		right := movieState("seed", false, 100)
		right.Apply(b, entity.ApplyOptions{})
		right.Apply(a, entity.ApplyOptions{})

		Expect(left.Metadata).To(Equal(right.Metadata))
	})

	It("keeps watched state untouched in metadata-only mode", func() {
		s := movieState("plex1", false, 100)
		newer := movieState("emby1", true, 200)

		s.Apply(newer, entity.ApplyOptions{MetadataOnly: true})
		Expect(s.Watched).To(BeFalse())
		Expect(s.UpdatedAt).To(Equal(int64(100)))
		Expect(s.Metadata).To(HaveKey("emby1"))
	})

	It("ORs tainted in and clears it only on a newer untainted update", func() {
		s := movieState("plex1", false, 100)

		heartbeat := movieState("emby1", false, 150)
		heartbeat.Tainted = true
		s.Apply(heartbeat, entity.ApplyOptions{})
		Expect(s.Tainted).To(BeTrue())

		stale := movieState("emby1", false, 50)
		s.Apply(stale, entity.ApplyOptions{})
		Expect(s.Tainted).To(BeTrue(), "an older untainted update must not clear the flag")

		fresh := movieState("emby1", false, 300)
		s.Apply(fresh, entity.ApplyOptions{})
		Expect(s.Tainted).To(BeFalse())
	})
})

// ── Diff ──────────────────────────────────────────────────────────────────────

var _ = Describe("Diff", func() {
	It("reports no change against an identical clone", func() {
		s := movieState("plex1", true, 100)
		Expect(s.Diff(s.Clone())).To(BeFalse())
	})

	It("detects scalar changes", func() {
		s := movieState("plex1", true, 100)
		orig := s.Clone()
		s.Watched = false
		Expect(s.Diff(orig)).To(BeTrue())
	})

	It("detects a new backend metadata slot", func() {
		s := movieState("plex1", true, 100)
		orig := s.Clone()
		s.Metadata["emby1"] = entity.Metadata{ID: "emby1-7", Type: entity.TypeMovie}
		Expect(s.Diff(orig)).To(BeTrue())
	})

	It("detects a changed slot value", func() {
		s := movieState("plex1", true, 100)
		orig := s.Clone()
		m := s.Metadata["plex1"]
		m.Watched = !m.Watched
		s.Metadata["plex1"] = m
		Expect(s.Diff(orig)).To(BeTrue())
	})
})

// ── Identity pointers ─────────────────────────────────────────────────────────

var _ = Describe("Pointers", func() {
	It("derives relative pointers for episodes from the parent identity", func() {
		ep := &entity.State{
			Type:        entity.TypeEpisode,
			Title:       "Firefly",
			Season:      1,
			Episode:     11,
			ParentGUIDs: guid.Set{"tvdb": "78874"},
		}
		Expect(ep.HasGUIDs()).To(BeFalse())
		Expect(ep.HasRelativeGUIDs()).To(BeTrue())
		Expect(ep.AllPointers()).To(Equal([]string{"rtvdb://78874/1/11"}))
	})

	It("never derives relative pointers for movies", func() {
		m := movieState("plex1", false, 10)
		m.ParentGUIDs = guid.Set{"tvdb": "1"}
		Expect(m.RelativePointers()).To(BeNil())
	})
})

// ── ShouldMarkUnplayed ────────────────────────────────────────────────────────

var _ = Describe("ShouldMarkUnplayed", func() {
	build := func() (*entity.State, *entity.State) {
		s := &entity.State{
			Type: entity.TypeMovie, Watched: true, UpdatedAt: 500, Via: "plex1",
			Metadata: map[string]entity.Metadata{
				"emby1": {ID: "e-9", Watched: true, PlayedAt: 500, AddedAt: 400},
			},
		}
		remote := &entity.State{
			Type: entity.TypeMovie, Watched: false, UpdatedAt: 400, Via: "emby1",
			Metadata: map[string]entity.Metadata{
				"emby1": {ID: "e-9", Watched: false},
			},
		}
		return s, remote
	}

	It("matches the deliberate-unplay fingerprint", func() {
		s, remote := build()
		Expect(s.ShouldMarkUnplayed(remote)).To(BeTrue())
	})

	It("rejects when the backend re-created the item (added-at mismatch)", func() {
		s, remote := build()
		remote.UpdatedAt = 999
		Expect(s.ShouldMarkUnplayed(remote)).To(BeFalse())
	})

	It("rejects when the native id changed", func() {
		s, remote := build()
		rm := remote.Metadata["emby1"]
		rm.ID = "e-10"
		remote.Metadata["emby1"] = rm
		Expect(s.ShouldMarkUnplayed(remote)).To(BeFalse())
	})

	It("rejects when the canonical record is not watched", func() {
		s, remote := build()
		s.Watched = false
		Expect(s.ShouldMarkUnplayed(remote)).To(BeFalse())
	})
})
