package curseforge

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFingerprintsMatches(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/fingerprints", r.URL.Path)

		var body struct {
			Fingerprints []uint32 `json:"fingerprints"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []uint32{2864166173, 123456789}, body.Fingerprints)

		w.Write([]byte(`{"data":{
			"isCacheBuilt":true,
			"exactMatches":[{"id":238222,"file":{"id":5678,"modId":238222}}],
			"exactFingerprints":[2864166173],
			"partialMatches":[],
			"unmatchedFingerprints":[123456789]
		}}`))
	})

	matches, _, err := client.GetFingerprintsMatches(context.Background(), []uint32{2864166173, 123456789})
	require.NoError(t, err)
	assert.True(t, matches.IsCacheBuilt)
	require.Len(t, matches.ExactMatches, 1)
	assert.Equal(t, 238222, matches.ExactMatches[0].ID)
	assert.Equal(t, 5678, matches.ExactMatches[0].File.ID)
	assert.Equal(t, []uint32{123456789}, matches.UnmatchedFingerprints)
}

func TestGetFingerprintsFuzzyMatches(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/fingerprints/fuzzy", r.URL.Path)

		var body GetFuzzyMatchesOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 432, body.GameID)
		require.Len(t, body.Fingerprints, 1)
		assert.Equal(t, "mods", body.Fingerprints[0].FolderName)

		w.Write([]byte(`{"data":{
			"fuzzyMatches":[{"id":238222,"file":{"id":5678},"fingerprints":[111,222]}]
		}}`))
	})

	matches, _, err := client.GetFingerprintsFuzzyMatches(context.Background(), GetFuzzyMatchesOptions{
		GameID: 432,
		Fingerprints: []FolderFingerprints{
			{FolderName: "mods", Fingerprints: []uint32{111, 222, 333}},
		},
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 238222, matches[0].ID)
	assert.Equal(t, []uint32{111, 222}, matches[0].Fingerprints)
}
