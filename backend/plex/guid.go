package plex

import (
	"strings"

	"github.com/ddevcap/watchsync/guid"
)

// guidMap translates the schemes modern Guid entries use ("imdb://tt123")
// into universal namespaces.
var guidMap = map[string]string{
	"imdb":   guid.IMDB,
	"tmdb":   guid.TMDB,
	"tvdb":   guid.TVDB,
	"tvmaze": guid.TVMaze,
	"tvrage": guid.TVRage,
	"anidb":  guid.AniDB,
	"cmdb":   guid.CMDB,
}

// legacyAgentMap translates the old agent-style item guid
// ("com.plexapp.agents.imdb://tt123?lang=en") still present on libraries
// that never migrated to the new agents.
var legacyAgentMap = map[string]string{
	"com.plexapp.agents.imdb":       guid.IMDB,
	"com.plexapp.agents.tmdb":       guid.TMDB,
	"com.plexapp.agents.themoviedb": guid.TMDB,
	"com.plexapp.agents.thetvdb":    guid.TVDB,
	"com.plexapp.agents.hama":       guid.AniDB,
}

// localAgents never carry a usable external identity.
var localAgents = []string{"plex://", "local://", "com.plexapp.agents.none://", "collection://"}

// parseGUIDs normalizes an item's Guid entries plus its legacy item guid
// into a validated set.
func parseGUIDs(entries []guidEntry, itemGUID string, logCtx ...any) guid.Set {
	raw := make(map[string]string, len(entries)+1)

	for _, entry := range entries {
		scheme, value, ok := strings.Cut(entry.ID, "://")
		if !ok || value == "" {
			continue
		}
		ns, ok := guidMap[strings.ToLower(scheme)]
		if !ok {
			continue
		}
		if _, dup := raw[ns]; !dup {
			raw[ns] = value
		}
	}

	if ns, value, ok := parseLegacyGUID(itemGUID); ok {
		if _, dup := raw[ns]; !dup {
			raw[ns] = value
		}
	}

	return guid.Parse(raw, logCtx...)
}

// parseLegacyGUID extracts an identity from an agent-style guid. Local
// agents and unknown agents resolve to nothing.
func parseLegacyGUID(itemGUID string) (ns, value string, ok bool) {
	if itemGUID == "" || isLocalAgent(itemGUID) {
		return "", "", false
	}
	agent, rest, found := strings.Cut(itemGUID, "://")
	if !found {
		return "", "", false
	}
	ns, known := legacyAgentMap[strings.ToLower(agent)]
	if !known {
		return "", "", false
	}
	// Strip the ?lang=en suffix and any season/episode path the agent
	// appended.
	if idx := strings.IndexAny(rest, "?/"); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return "", "", false
	}
	return ns, rest, true
}

func isLocalAgent(itemGUID string) bool {
	for _, prefix := range localAgents {
		if strings.HasPrefix(itemGUID, prefix) {
			return true
		}
	}
	return false
}
