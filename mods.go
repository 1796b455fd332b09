package curseforge

import (
	"context"
	"fmt"
)

// SearchModsOptions are the query parameters for SearchMods. GameID is
// required by the remote API; everything else is an optional filter that
// is omitted from the query string when unset. Index is always sent since
// 0 is a meaningful zero-based start position.
type SearchModsOptions struct {
	GameID            int                 `url:"gameId"`
	ClassID           int                 `url:"classId,omitempty"`
	CategoryID        int                 `url:"categoryId,omitempty"`
	GameVersion       string              `url:"gameVersion,omitempty"`
	SearchFilter      string              `url:"searchFilter,omitempty"`
	SortField         ModsSearchSortField `url:"sortField,omitempty"`
	SortOrder         SortOrder           `url:"sortOrder,omitempty"`
	ModLoaderType     ModLoaderType       `url:"modLoaderType,omitempty"`
	GameVersionTypeID int                 `url:"gameVersionTypeId,omitempty"`
	AuthorID          int                 `url:"authorId,omitempty"`
	Slug              string              `url:"slug,omitempty"`
	Index             int                 `url:"index"`
	PageSize          int                 `url:"pageSize,omitempty"`
}

// GetFeaturedModsOptions is the request body for GetFeaturedMods.
type GetFeaturedModsOptions struct {
	GameID            int   `json:"gameId"`
	ExcludedModIDs    []int `json:"excludedModIds"`
	GameVersionTypeID int   `json:"gameVersionTypeId,omitempty"`
}

type getModsRequest struct {
	ModIDs []int `json:"modIds"`
}

// SearchMods searches mods matching the supplied filters. Filtering,
// sorting and pagination all happen server-side; the options pass through
// verbatim.
func (c *Client) SearchMods(ctx context.Context, opts *SearchModsOptions) ([]Mod, *Response, error) {
	var mods []Mod
	resp, err := c.get(ctx, "/v1/mods/search", opts, &mods)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().Int("count", len(mods)).Msg("Searched mods on CurseForge")
	return mods, resp, nil
}

// GetMod retrieves a single mod by its id.
func (c *Client) GetMod(ctx context.Context, modID int) (*Mod, *Response, error) {
	var mod Mod
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d", modID), nil, &mod)
	if err != nil {
		return nil, resp, err
	}
	return &mod, resp, nil
}

// GetMods retrieves a batch of mods by id in a single call.
func (c *Client) GetMods(ctx context.Context, modIDs []int) ([]Mod, *Response, error) {
	var mods []Mod
	resp, err := c.post(ctx, "/v1/mods", getModsRequest{ModIDs: modIDs}, &mods)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().Int("requested", len(modIDs)).Int("count", len(mods)).Msg("Retrieved mods from CurseForge")
	return mods, resp, nil
}

// GetFeaturedMods retrieves the featured, popular and recently updated
// mods for a game.
func (c *Client) GetFeaturedMods(ctx context.Context, opts GetFeaturedModsOptions) (*FeaturedMods, *Response, error) {
	// The API rejects a null exclusion list.
	if opts.ExcludedModIDs == nil {
		opts.ExcludedModIDs = []int{}
	}

	var featured FeaturedMods
	resp, err := c.post(ctx, "/v1/mods/featured", opts, &featured)
	if err != nil {
		return nil, resp, err
	}
	return &featured, resp, nil
}

// GetModDescription retrieves the full HTML description of a mod.
func (c *Client) GetModDescription(ctx context.Context, modID int) (string, *Response, error) {
	var description string
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/description", modID), nil, &description)
	if err != nil {
		return "", resp, err
	}
	return description, resp, nil
}
