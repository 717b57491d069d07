// Package e2e exercises a full sync cycle in-process: fake media servers
// behind httptest, a real ent store on SQLite, and the production registry,
// mapper and runner wired together the way main wires them.
package e2e

import (
	"context"
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/ent/enttest"
	_ "modernc.org/sqlite"

	_ "github.com/ddevcap/watchsync/backend/jellyfin"
	_ "github.com/ddevcap/watchsync/backend/plex"
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

func TestSyncE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sync E2E Suite")
}

var _ = BeforeSuite(func() {
	db = enttest.Open(GinkgoT(), "sqlite3", "file:e2e_test?mode=memory&cache=shared&_pragma=foreign_keys(1)")
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
