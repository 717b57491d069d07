package backend

import "time"

// Default knobs for a run. Overridable per server via Options.
const (
	// DefaultLibrarySegment is how many items one paginated content request
	// asks for.
	DefaultLibrarySegment = 1000

	// DefaultMaxEpisodeRange caps multi-episode file expansion. A file
	// spanning more indexes than this keeps only its first episode.
	DefaultMaxEpisodeRange = 3

	// DefaultExportTimeMargin is the slack granted to a backend's own
	// timestamp before export considers our canonical state newer. Absorbs
	// clock skew between servers.
	DefaultExportTimeMargin = 10 * time.Second

	// ProgressDriftAllowance is subtracted from a sender's event date when
	// comparing against a target during progress propagation.
	ProgressDriftAllowance = 30 * time.Second
)

// Options tunes one backend's sync behaviour. The zero value plus
// withDefaults is a sane production configuration.
type Options struct {
	// IgnoreDate disables timestamp guards: imports always adopt incoming
	// state and exports skip the date comparison.
	IgnoreDate bool

	// DryRun logs every write that would happen without queueing it.
	DryRun bool

	// DebugTrace enables verbose per-request logging.
	DebugTrace bool

	// MetadataOnly restricts imports to metadata slots; watched state and
	// timestamps are left untouched.
	MetadataOnly bool

	// LibrarySegment is the page size for library content requests.
	LibrarySegment int

	// MaxEpisodeRange caps IndexNumber..IndexNumberEnd expansion.
	MaxEpisodeRange int

	// ExportTimeMargin is the clock-skew slack for export date comparisons.
	ExportTimeMargin time.Duration

	// RawResponse keeps unparsed backend payloads on entity metadata for
	// debugging.
	RawResponse bool

	// NoCache bypasses the show-parent arena and metadata cache.
	NoCache bool

	// Ignore lists library names excluded from sync.
	Ignore []string
}

func (o Options) withDefaults() Options {
	if o.LibrarySegment <= 0 {
		o.LibrarySegment = DefaultLibrarySegment
	}
	if o.MaxEpisodeRange <= 0 {
		o.MaxEpisodeRange = DefaultMaxEpisodeRange
	}
	if o.ExportTimeMargin <= 0 {
		o.ExportTimeMargin = DefaultExportTimeMargin
	}
	return o
}

// Ignored reports whether a library name is on the ignore list.
func (o Options) Ignored(library string) bool {
	for _, name := range o.Ignore {
		if name == library {
			return true
		}
	}
	return false
}
