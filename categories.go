package curseforge

import "context"

// GetCategoriesOptions are the query parameters for GetCategories. All
// fields are optional filters.
type GetCategoriesOptions struct {
	GameID      int  `url:"gameId,omitempty"`
	ClassID     int  `url:"classId,omitempty"`
	ClassesOnly bool `url:"classesOnly,omitempty"`
}

// GetCategories retrieves mod categories, optionally filtered by game or
// class.
func (c *Client) GetCategories(ctx context.Context, opts *GetCategoriesOptions) ([]Category, *Response, error) {
	var categories []Category
	resp, err := c.get(ctx, "/v1/categories", opts, &categories)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().Int("count", len(categories)).Msg("Retrieved categories from CurseForge")
	return categories, resp, nil
}
