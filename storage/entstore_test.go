package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/ent/enttest"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/ddevcap/watchsync/storage"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers as "sqlite"; ent expects "sqlite3".
	tmp, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	drv := tmp.Driver()
	_ = tmp.Close()
	sql.Register("sqlite3", drv)
}

var db *ent.Client

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:storage_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
})

var _ = AfterSuite(func() {
	if db != nil {
		Expect(db.Close()).To(Succeed())
	}
})

func cleanDB() {
	ctx := context.Background()
	db.GuidPointer.Delete().ExecX(ctx)
	db.MediaState.Delete().ExecX(ctx)
	db.Server.Delete().ExecX(ctx)
}

func movie(title string, imdb string, watched bool, updated int64) *entity.State {
	return &entity.State{
		Type:      entity.TypeMovie,
		Title:     title,
		Year:      1995,
		Watched:   watched,
		UpdatedAt: updated,
		Via:       "home",
		GUIDs:     guid.Set{guid.IMDB: imdb},
		Metadata: map[string]entity.Metadata{
			"home": {ID: "m1", Type: entity.TypeMovie, Watched: watched},
		},
	}
}

var _ = Describe("EntStore", func() {
	var store *storage.EntStore
	ctx := context.Background()

	BeforeEach(func() {
		cleanDB()
		store = storage.NewEntStore(db)
	})

	It("round-trips a record through insert and pointer lookup", func() {
		stored, err := store.Insert(ctx, movie("Heat", "tt0113277", true, 1000))
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.ID).NotTo(BeZero())

		probe := &entity.State{Type: entity.TypeMovie, GUIDs: guid.Set{guid.IMDB: "tt0113277"}}
		got, err := store.Get(ctx, probe)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(stored.ID))
		Expect(got.Title).To(Equal("Heat"))
		Expect(got.Watched).To(BeTrue())
		Expect(got.Metadata).To(HaveKey("home"))
	})

	It("reports a miss as ErrNotFound", func() {
		probe := &entity.State{Type: entity.TypeMovie, GUIDs: guid.Set{guid.IMDB: "tt0000001"}}
		_, err := store.Get(ctx, probe)
		Expect(err).To(MatchError(storage.ErrNotFound))
	})

	It("refuses lookups without any pointer", func() {
		_, err := store.Get(ctx, &entity.State{Type: entity.TypeMovie, Title: "Heat"})
		Expect(err).To(MatchError(storage.ErrNotFound))
	})

	It("finds episodes through relative pointers", func() {
		ep := &entity.State{
			Type: entity.TypeEpisode, Title: "The Wire", Year: 2002,
			Season: 1, Episode: 5,
			Watched: true, UpdatedAt: 2000, Via: "home",
			ParentGUIDs: guid.Set{guid.IMDB: "tt0306414"},
		}
		_, err := store.Insert(ctx, ep)
		Expect(err).NotTo(HaveOccurred())

		probe := &entity.State{
			Type: entity.TypeEpisode, Season: 1, Episode: 5,
			ParentGUIDs: guid.Set{guid.IMDB: "tt0306414"},
		}
		got, err := store.Get(ctx, probe)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Title).To(Equal("The Wire"))
	})

	It("re-points a record when an update adds identities", func() {
		stored, err := store.Insert(ctx, movie("Heat", "tt0113277", false, 1000))
		Expect(err).NotTo(HaveOccurred())

		stored.Watched = true
		stored.UpdatedAt = 2000
		stored.GUIDs = stored.GUIDs.Merge(guid.Set{guid.TMDB: "949"})
		Expect(store.Update(ctx, stored)).To(Succeed())

		probe := &entity.State{Type: entity.TypeMovie, GUIDs: guid.Set{guid.TMDB: "949"}}
		got, err := store.Get(ctx, probe)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Watched).To(BeTrue())
		Expect(got.UpdatedAt).To(Equal(int64(2000)))
	})

	It("rejects updates for unpersisted records", func() {
		Expect(store.Update(ctx, movie("Heat", "tt0113277", true, 1000))).To(HaveOccurred())
	})

	It("filters GetAll by the change timestamp", func() {
		_, err := store.Insert(ctx, movie("Heat", "tt0113277", true, 1000))
		Expect(err).NotTo(HaveOccurred())
		_, err = store.Insert(ctx, movie("Ronin", "tt0122690", true, 5000))
		Expect(err).NotTo(HaveOccurred())

		since := time.Unix(3000, 0)
		rows, err := store.GetAll(ctx, &since)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Title).To(Equal("Ronin"))

		all, err := store.GetAll(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))
	})

	It("removes a record and its pointers", func() {
		stored, err := store.Insert(ctx, movie("Heat", "tt0113277", true, 1000))
		Expect(err).NotTo(HaveOccurred())

		Expect(store.Remove(ctx, stored)).To(Succeed())

		probe := &entity.State{Type: entity.TypeMovie, GUIDs: guid.Set{guid.IMDB: "tt0113277"}}
		_, err = store.Get(ctx, probe)
		Expect(err).To(MatchError(storage.ErrNotFound))

		// Removing what is already gone stays quiet.
		Expect(store.Remove(ctx, probe)).To(Succeed())
	})
})
