package curseforge

import (
	"context"
	"fmt"
)

// GetModFilesOptions are the query parameters for GetModFiles. Filters
// are optional; Index is always sent since 0 is a meaningful zero-based
// start position.
type GetModFilesOptions struct {
	GameVersion       string        `url:"gameVersion,omitempty"`
	ModLoaderType     ModLoaderType `url:"modLoaderType,omitempty"`
	GameVersionTypeID int           `url:"gameVersionTypeId,omitempty"`
	Index             int           `url:"index"`
	PageSize          int           `url:"pageSize,omitempty"`
}

type getFilesRequest struct {
	FileIDs []int `json:"fileIds"`
}

// GetModFile retrieves a single file of a mod.
func (c *Client) GetModFile(ctx context.Context, modID, fileID int) (*File, *Response, error) {
	var file File
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/files/%d", modID, fileID), nil, &file)
	if err != nil {
		return nil, resp, err
	}
	return &file, resp, nil
}

// GetModFiles retrieves the files of a mod, paginated and optionally
// filtered by game version or loader.
func (c *Client) GetModFiles(ctx context.Context, modID int, opts *GetModFilesOptions) ([]File, *Response, error) {
	var files []File
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/files", modID), opts, &files)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().Int("mod_id", modID).Int("count", len(files)).Msg("Retrieved mod files from CurseForge")
	return files, resp, nil
}

// GetFiles retrieves a batch of files by id in a single call. The files
// may belong to different mods.
func (c *Client) GetFiles(ctx context.Context, fileIDs []int) ([]File, *Response, error) {
	var files []File
	resp, err := c.post(ctx, "/v1/mods/files", getFilesRequest{FileIDs: fileIDs}, &files)
	if err != nil {
		return nil, resp, err
	}
	return files, resp, nil
}

// GetFileChangelog retrieves the HTML changelog of a file.
func (c *Client) GetFileChangelog(ctx context.Context, modID, fileID int) (string, *Response, error) {
	var changelog string
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/files/%d/changelog", modID, fileID), nil, &changelog)
	if err != nil {
		return "", resp, err
	}
	return changelog, resp, nil
}

// GetFileDownloadURL retrieves the download URL of a file. The URL is
// returned as-is; downloading is the caller's job.
func (c *Client) GetFileDownloadURL(ctx context.Context, modID, fileID int) (string, *Response, error) {
	var downloadURL string
	resp, err := c.get(ctx, fmt.Sprintf("/v1/mods/%d/files/%d/download-url", modID, fileID), nil, &downloadURL)
	if err != nil {
		return "", resp, err
	}
	return downloadURL, resp, nil
}
