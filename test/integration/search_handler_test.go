//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/dto"
)

func TestSearchHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router)

	t.Run("Search - Missing Query Rejected", func(t *testing.T) {
		resp, err := client.GET("/search")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		require.NoError(t, resp.DecodeJSON(&body))
		assert.Equal(t, "Search query is required", body["message"])
	})

	t.Run("Search - Case Insensitive Across Entities", func(t *testing.T) {
		resp, err := client.GET("/search?query=ALICE")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var results dto.SearchResults
		require.NoError(t, resp.DecodeJSON(&results))
		require.NotEmpty(t, results.Users)
		assert.Equal(t, "alice", results.Users[0].Username)
	})

	t.Run("Search - No Matches Returns Empty Slices", func(t *testing.T) {
		resp, err := client.GET("/search?query=zzzznomatch")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var results dto.SearchResults
		require.NoError(t, resp.DecodeJSON(&results))
		assert.Empty(t, results.Tasks)
		assert.Empty(t, results.Projects)
		assert.Empty(t, results.Users)
	})
}
