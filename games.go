package curseforge

import (
	"context"
	"fmt"
)

// GetGamesOptions are the query parameters for GetGames. Index is always
// sent (0 is a meaningful zero-based start); PageSize is omitted when
// unset so the server default applies.
type GetGamesOptions struct {
	Index    int `url:"index"`
	PageSize int `url:"pageSize,omitempty"`
}

// GetGames retrieves all games available to the supplied API key,
// paginated.
func (c *Client) GetGames(ctx context.Context, opts *GetGamesOptions) ([]Game, *Response, error) {
	var games []Game
	resp, err := c.get(ctx, "/v1/games", opts, &games)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().Int("count", len(games)).Msg("Retrieved games from CurseForge")
	return games, resp, nil
}

// GetGame retrieves a single game by its id.
func (c *Client) GetGame(ctx context.Context, gameID int) (*Game, *Response, error) {
	var game Game
	resp, err := c.get(ctx, fmt.Sprintf("/v1/games/%d", gameID), nil, &game)
	if err != nil {
		return nil, resp, err
	}
	return &game, resp, nil
}

// GetGameVersions retrieves the known version strings of a game grouped
// by version type.
func (c *Client) GetGameVersions(ctx context.Context, gameID int) ([]GameVersionsByType, *Response, error) {
	var versions []GameVersionsByType
	resp, err := c.get(ctx, fmt.Sprintf("/v1/games/%d/versions", gameID), nil, &versions)
	if err != nil {
		return nil, resp, err
	}
	return versions, resp, nil
}

// GetGameVersionTypes retrieves the version types of a game.
func (c *Client) GetGameVersionTypes(ctx context.Context, gameID int) ([]GameVersionType, *Response, error) {
	var types []GameVersionType
	resp, err := c.get(ctx, fmt.Sprintf("/v1/games/%d/version-types", gameID), nil, &types)
	if err != nil {
		return nil, resp, err
	}
	return types, resp, nil
}
