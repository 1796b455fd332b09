package curseforge

import "context"

// API defines the interface for CurseForge operations, one method per
// remote endpoint. *Client satisfies it; consumers can swap in a mock.
type API interface {
	// GetGames retrieves all games available to the API key, paginated
	GetGames(ctx context.Context, opts *GetGamesOptions) ([]Game, *Response, error)

	// GetGame retrieves a single game by id
	GetGame(ctx context.Context, gameID int) (*Game, *Response, error)

	// GetGameVersions retrieves a game's versions grouped by type
	GetGameVersions(ctx context.Context, gameID int) ([]GameVersionsByType, *Response, error)

	// GetGameVersionTypes retrieves a game's version types
	GetGameVersionTypes(ctx context.Context, gameID int) ([]GameVersionType, *Response, error)

	// GetCategories retrieves categories, optionally filtered by game or class
	GetCategories(ctx context.Context, opts *GetCategoriesOptions) ([]Category, *Response, error)

	// SearchMods searches mods matching the supplied filters
	SearchMods(ctx context.Context, opts *SearchModsOptions) ([]Mod, *Response, error)

	// GetMod retrieves a single mod by id
	GetMod(ctx context.Context, modID int) (*Mod, *Response, error)

	// GetMods retrieves a batch of mods by id
	GetMods(ctx context.Context, modIDs []int) ([]Mod, *Response, error)

	// GetFeaturedMods retrieves featured, popular and recently updated mods
	GetFeaturedMods(ctx context.Context, opts GetFeaturedModsOptions) (*FeaturedMods, *Response, error)

	// GetModDescription retrieves a mod's HTML description
	GetModDescription(ctx context.Context, modID int) (string, *Response, error)

	// GetModFile retrieves a single file of a mod
	GetModFile(ctx context.Context, modID, fileID int) (*File, *Response, error)

	// GetModFiles retrieves a mod's files, paginated and filtered
	GetModFiles(ctx context.Context, modID int, opts *GetModFilesOptions) ([]File, *Response, error)

	// GetFiles retrieves a batch of files by id
	GetFiles(ctx context.Context, fileIDs []int) ([]File, *Response, error)

	// GetFileChangelog retrieves a file's HTML changelog
	GetFileChangelog(ctx context.Context, modID, fileID int) (string, *Response, error)

	// GetFileDownloadURL retrieves a file's download URL
	GetFileDownloadURL(ctx context.Context, modID, fileID int) (string, *Response, error)

	// GetFingerprintsMatches looks up files by exact content fingerprints
	GetFingerprintsMatches(ctx context.Context, fingerprints []uint32) (*FingerprintsMatches, *Response, error)

	// GetFingerprintsFuzzyMatches looks up files by approximate fingerprints
	GetFingerprintsFuzzyMatches(ctx context.Context, opts GetFuzzyMatchesOptions) ([]FuzzyMatch, *Response, error)
}

var _ API = (*Client)(nil)
