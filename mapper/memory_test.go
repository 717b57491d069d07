package mapper_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/ddevcap/watchsync/mapper"
	"github.com/ddevcap/watchsync/storage"
)

func TestMapper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mapper Suite")
}

// fakeStore is an in-memory storage.Store tracking call counts.
type fakeStore struct {
	seq     int64
	items   map[int64]*entity.State
	inserts int
	updates int
	removes int

	failWrites bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[int64]*entity.State)}
}

func (f *fakeStore) Get(_ context.Context, e *entity.State) (*entity.State, error) {
	want := make(map[string]struct{})
	for _, p := range e.Pointers() {
		want[p+"/"+string(e.Type)] = struct{}{}
	}
	for _, p := range e.RelativePointers() {
		want[p] = struct{}{}
	}
	for _, st := range f.items {
		for _, p := range st.Pointers() {
			if _, ok := want[p+"/"+string(st.Type)]; ok {
				return st.Clone(), nil
			}
		}
		for _, p := range st.RelativePointers() {
			if _, ok := want[p]; ok {
				return st.Clone(), nil
			}
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) GetAll(_ context.Context, since *time.Time) ([]*entity.State, error) {
	var out []*entity.State
	for _, st := range f.items {
		if since != nil && st.UpdatedAt <= since.Unix() {
			continue
		}
		out = append(out, st.Clone())
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, e *entity.State) (*entity.State, error) {
	if f.failWrites {
		return nil, fmt.Errorf("store down")
	}
	f.inserts++
	f.seq++
	saved := e.Clone()
	saved.ID = f.seq
	f.items[saved.ID] = saved.Clone()
	return saved, nil
}

func (f *fakeStore) Update(_ context.Context, e *entity.State) error {
	if f.failWrites {
		return fmt.Errorf("store down")
	}
	f.updates++
	f.items[e.ID] = e.Clone()
	return nil
}

func (f *fakeStore) Remove(_ context.Context, e *entity.State) error {
	f.removes++
	delete(f.items, e.ID)
	return nil
}

func movieFrom(via string, watched bool, updatedAt int64) *entity.State {
	return &entity.State{
		Type:      entity.TypeMovie,
		Title:     "Heat",
		Year:      1995,
		Watched:   watched,
		UpdatedAt: updatedAt,
		Via:       via,
		GUIDs:     guid.Set{guid.IMDB: "tt0113277", guid.TMDB: "949"},
		Metadata: map[string]entity.Metadata{
			via: {ID: "m-" + via, Type: entity.TypeMovie, Watched: watched},
		},
	}
}

var _ = Describe("Memory", func() {
	var (
		ctx   context.Context
		store *fakeStore
		mm    *mapper.Memory
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newFakeStore()
		mm = mapper.NewMemory(store, mapper.Options{}, nil)
	})

	// ── New items ────────────────────────────────────────────────────────

	It("buffers an unknown item and inserts it on commit", func() {
		Expect(mm.Add(ctx, movieFrom("plex_home", true, 1000), mapper.AddOptions{})).To(Succeed())
		Expect(mm.Count()).To(Equal(1))

		summary, err := mm.Commit(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary[entity.TypeMovie].Added).To(Equal(1))
		Expect(store.inserts).To(Equal(1))
	})

	It("drops items that carry no usable identity", func() {
		orphan := movieFrom("plex_home", true, 1000)
		orphan.GUIDs = nil
		Expect(mm.Add(ctx, orphan, mapper.AddOptions{})).To(Succeed())
		Expect(mm.Count()).To(BeZero())
	})

	It("does not create records from a metadata-only source", func() {
		Expect(mm.Add(ctx, movieFrom("plex_home", true, 1000),
			mapper.AddOptions{MetadataOnly: true})).To(Succeed())
		Expect(mm.Count()).To(BeZero())
	})

	It("drops episodes without an episode number", func() {
		ep := movieFrom("plex_home", true, 1000)
		ep.Type = entity.TypeEpisode
		ep.Season = 1
		ep.Episode = 0
		ep.ParentGUIDs = guid.Set{guid.TVDB: "78874"}
		Expect(mm.Add(ctx, ep, mapper.AddOptions{})).To(Succeed())
		Expect(mm.Count()).To(BeZero())
	})

	// ── Merging against stored state ─────────────────────────────────────

	Context("with a stored unwatched record", func() {
		BeforeEach(func() {
			_, err := store.Insert(ctx, movieFrom("plex_home", false, 500))
			Expect(err).NotTo(HaveOccurred())
		})

		It("adopts a newer watched observation and updates on commit", func() {
			Expect(mm.Add(ctx, movieFrom("jellyfin_home", true, 1000),
				mapper.AddOptions{})).To(Succeed())

			got, err := mm.Get(ctx, movieFrom("jellyfin_home", true, 1000))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Watched).To(BeTrue())
			Expect(got.UpdatedAt).To(Equal(int64(1000)))
			Expect(got.Via).To(Equal("jellyfin_home"))

			summary, err := mm.Commit(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary[entity.TypeMovie].Updated).To(Equal(1))
			Expect(store.updates).To(Equal(1))
			Expect(store.inserts).To(Equal(1)) // only the seed
		})

		It("does not trust a tainted observation with play state", func() {
			incoming := movieFrom("jellyfin_home", true, 1000)
			incoming.Tainted = true
			Expect(mm.Add(ctx, incoming, mapper.AddOptions{})).To(Succeed())

			got, err := mm.Get(ctx, incoming)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Watched).To(BeFalse(), "tainted event must not flip watched")
			Expect(got.Metadata).To(HaveKey("jellyfin_home"), "metadata slot still lands")
		})

		It("treats observations older than the checkpoint as metadata-only", func() {
			after := time.Unix(2000, 0)
			Expect(mm.Add(ctx, movieFrom("jellyfin_home", true, 1000),
				mapper.AddOptions{After: &after})).To(Succeed())

			got, err := mm.Get(ctx, movieFrom("jellyfin_home", true, 1000))
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Watched).To(BeFalse())
			Expect(got.Metadata).To(HaveKey("jellyfin_home"))
		})

		It("reports no change when the observation is identical", func() {
			Expect(mm.Add(ctx, movieFrom("plex_home", false, 500),
				mapper.AddOptions{})).To(Succeed())
			Expect(mm.Count()).To(BeZero())
		})
	})

	Context("mark-as-unplayed fingerprint", func() {
		It("unplays a watched record when the backend re-added the item fresh", func() {
			seed := movieFrom("plex_home", true, 1000)
			seed.Metadata["plex_home"] = entity.Metadata{
				ID:       "m-plex_home",
				Type:     entity.TypeMovie,
				Watched:  true,
				PlayedAt: 1000,
				AddedAt:  900,
			}
			_, err := store.Insert(ctx, seed)
			Expect(err).NotTo(HaveOccurred())

			// Backend now reports the same item unwatched, with the remote
			// date equal to the recorded added-at: the played copy was
			// replaced, not merely unsynced.
			incoming := movieFrom("plex_home", false, 900)
			after := time.Unix(2000, 0)
			Expect(mm.Add(ctx, incoming, mapper.AddOptions{After: &after})).To(Succeed())

			got, err := mm.Get(ctx, incoming)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Watched).To(BeFalse())
			Expect(got.Via).To(Equal("plex_home"))
			Expect(mm.Count()).To(Equal(1))
		})
	})

	// ── Commit behaviour ─────────────────────────────────────────────────

	It("counts what a dry run would write without touching the store", func() {
		mm.SetOptions(mapper.Options{DryRun: true})
		Expect(mm.Add(ctx, movieFrom("plex_home", true, 1000), mapper.AddOptions{})).To(Succeed())

		summary, err := mm.Commit(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary[entity.TypeMovie].Added).To(Equal(1))
		Expect(store.inserts).To(BeZero())
	})

	It("counts write failures without aborting the batch", func() {
		Expect(mm.Add(ctx, movieFrom("plex_home", true, 1000), mapper.AddOptions{})).To(Succeed())
		store.failWrites = true

		summary, err := mm.Commit(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary[entity.TypeMovie].Failed).To(Equal(1))
		Expect(summary[entity.TypeMovie].Added).To(BeZero())
	})

	// ── Change computation ───────────────────────────────────────────────

	It("computes per-backend divergence from metadata slots", func() {
		st := movieFrom("plex_home", true, 1000)
		st.Metadata["jellyfin_home"] = entity.Metadata{
			ID: "jf-1", Type: entity.TypeMovie, Watched: false,
		}
		_, err := store.Insert(ctx, st)
		Expect(err).NotTo(HaveOccurred())
		Expect(mm.Load(ctx, nil)).To(Succeed())

		changes := mm.ComputeChanges([]string{"plex_home", "jellyfin_home", "emby_home"})
		Expect(changes["plex_home"]).To(BeEmpty(), "plex agrees")
		Expect(changes["jellyfin_home"]).To(HaveLen(1), "jellyfin disagrees")
		Expect(changes["emby_home"]).To(BeEmpty(), "emby has never seen it")
	})
})
