package jellyfin

import (
	"strings"

	"github.com/ddevcap/watchsync/guid"
)

// guidMap translates the API's ProviderIds keys (lowercased) into universal
// GUID namespaces. Unlisted providers are dropped.
var guidMap = map[string]string{
	"imdb":         guid.IMDB,
	"tmdb":         guid.TMDB,
	"tvdb":         guid.TVDB,
	"tvmaze":       guid.TVMaze,
	"tvrage":       guid.TVRage,
	"anidb":        guid.AniDB,
	"ytinforeader": guid.YouTube,
	"cmdb":         guid.CMDB,
}

// parseGUIDs converts a ProviderIds payload into a validated GUID set.
func parseGUIDs(providerIDs map[string]string, logCtx ...any) guid.Set {
	raw := make(map[string]string, len(providerIDs))
	for key, value := range providerIDs {
		ns, ok := guidMap[strings.ToLower(key)]
		if !ok || value == "" {
			continue
		}
		raw[ns] = value
	}
	return guid.Parse(raw, logCtx...)
}

// hasGUIDs reports whether the payload carries at least one usable id.
func hasGUIDs(providerIDs map[string]string) bool {
	return len(parseGUIDs(providerIDs)) > 0
}
