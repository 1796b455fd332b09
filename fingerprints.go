package curseforge

import "context"

type matchFingerprintsRequest struct {
	Fingerprints []uint32 `json:"fingerprints"`
}

// GetFuzzyMatchesOptions is the request body for GetFingerprintsFuzzyMatches.
type GetFuzzyMatchesOptions struct {
	GameID       int                  `json:"gameId"`
	Fingerprints []FolderFingerprints `json:"fingerprints"`
}

type fuzzyMatchesResult struct {
	FuzzyMatches []FuzzyMatch `json:"fuzzyMatches"`
}

// GetFingerprintsMatches looks up files by their exact content
// fingerprints. The matching itself is entirely server-side.
func (c *Client) GetFingerprintsMatches(ctx context.Context, fingerprints []uint32) (*FingerprintsMatches, *Response, error) {
	var matches FingerprintsMatches
	resp, err := c.post(ctx, "/v1/fingerprints", matchFingerprintsRequest{Fingerprints: fingerprints}, &matches)
	if err != nil {
		return nil, resp, err
	}

	c.logger.Debug().
		Int("requested", len(fingerprints)).
		Int("exact", len(matches.ExactMatches)).
		Msg("Matched fingerprints on CurseForge")
	return &matches, resp, nil
}

// GetFingerprintsFuzzyMatches looks up files by approximate fingerprint
// agreement, tolerating partial matches within each folder.
func (c *Client) GetFingerprintsFuzzyMatches(ctx context.Context, opts GetFuzzyMatchesOptions) ([]FuzzyMatch, *Response, error) {
	var result fuzzyMatchesResult
	resp, err := c.post(ctx, "/v1/fingerprints/fuzzy", opts, &result)
	if err != nil {
		return nil, resp, err
	}
	return result.FuzzyMatches, resp, nil
}
