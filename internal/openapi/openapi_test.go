package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	doc := Document("https://kolotebe.org")

	assert.Equal(t, "3.1.0", doc["openapi"])

	info, ok := doc["info"].(Spec)
	require.True(t, ok)
	assert.Equal(t, "Kolotebe API", info["title"])

	paths, ok := doc["paths"].(Spec)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/books")
	assert.Contains(t, paths, "/api/listings")
	// Same plural path the router serves.
	assert.Contains(t, paths, "/api/uploads")
	assert.Contains(t, paths, "/api/auth/register")
	assert.Contains(t, paths, "/api/auth/check-user")

	// The document must serialize cleanly since it is returned as-is.
	_, err := json.Marshal(doc)
	require.NoError(t, err)
}

func TestPublicDocument_OnlyGETOperations(t *testing.T) {
	doc := PublicDocument("https://kolotebe.org")

	info, ok := doc["info"].(Spec)
	require.True(t, ok)
	assert.Equal(t, "Kolotebe Public API", info["title"])

	paths, ok := doc["paths"].(Spec)
	require.True(t, ok)

	// Write-only paths disappear entirely.
	assert.NotContains(t, paths, "/api/uploads")
	assert.NotContains(t, paths, "/api/auth/register")

	for path, rawOps := range paths {
		ops, ok := rawOps.(Spec)
		require.True(t, ok, "path %s", path)
		assert.Len(t, ops, 1, "path %s", path)
		assert.Contains(t, ops, "get", "path %s", path)
	}
}

func TestExtractPublicEndpoints(t *testing.T) {
	paths := Spec{
		"/both":      Spec{"get": Spec{"summary": "read"}, "post": Spec{"summary": "write"}},
		"/read-only": Spec{"get": Spec{"summary": "read"}},
		"/write":     Spec{"post": Spec{"summary": "write"}},
	}

	public := extractPublicEndpoints(paths)

	assert.Len(t, public, 2)
	assert.Contains(t, public, "/both")
	assert.Contains(t, public, "/read-only")
	assert.NotContains(t, public, "/write")

	both, ok := public["/both"].(Spec)
	require.True(t, ok)
	assert.NotContains(t, both, "post")
}

func TestServers_DefaultBaseURL(t *testing.T) {
	doc := Document("")

	servers, ok := doc["servers"].([]Spec)
	require.True(t, ok)
	require.NotEmpty(t, servers)
	assert.Equal(t, "http://localhost:8080", servers[0]["url"])
}
