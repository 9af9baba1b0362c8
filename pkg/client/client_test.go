package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

func TestNewClientValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http ok", "http://localhost:3000", false},
		{"https ok", "https://api.example.com", false},
		{"missing scheme", "localhost:3000", true},
		{"bad scheme", "ftp://example.com", true},
		{"empty", "", true},
		{"garbage", "://nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.NewClient(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"pagination":{"total":0,"page":1,"limit":10,"totalPages":0,"next":false,"prev":false}}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL, client.WithToken("my-token"))
	require.NoError(t, err)

	_, err = c.Tags.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestLoginSkipsAuthAndInstallsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"fresh-jwt","user":{"id":"u1","role":"admin"}}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL, client.WithToken("stale-token"))
	require.NoError(t, err)

	result, err := c.Auth.Login(context.Background(), "ana@example.com", "hunter22")
	require.NoError(t, err)

	// login never sends a stale token and swaps in the fresh one
	assert.Empty(t, gotAuth)
	assert.Equal(t, "fresh-jwt", result.Token)
	assert.Equal(t, "fresh-jwt", c.Token())
}

func TestDeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	assert.NoError(t, c.Tags.Delete(context.Background(), "t1"))
}

func TestAPIErrorDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"tag name already in use"}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Tags.Create(context.Background(), client.CreateTag{Name: "Romance"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "tag name already in use", apiErr.Message)
}

func TestAPIErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Tags.Get(context.Background(), "t1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestListQueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "piece", q.Get("search"))
		assert.Equal(t, "ongoing", q.Get("status"))
		assert.Equal(t, "c1,c2", q.Get("categories"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"pagination":{"total":0,"page":3,"limit":25,"totalPages":0,"next":false,"prev":false}}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Mangas.List(context.Background(), 3, 25, client.MangaFilters{
		Search:      "piece",
		Status:      "ongoing",
		CategoryIDs: []string{"c1", "c2"},
	})
	assert.NoError(t, err)
}

// The API returns playlist tags as join rows; the SDK must hand callers a
// flat tag slice.
func TestPlaylistTagsFlattened(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{
				"id": "p1",
				"name": "Best of 2026",
				"tags": [
					{"tag": {"id": "t1", "name": "Romance", "color": "#ff0000"}},
					{"tag": {"id": "t2", "name": "Drama", "color": null}}
				]
			}],
			"pagination": {"total":1,"page":1,"limit":10,"totalPages":1,"next":false,"prev":false}
		}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	result, err := c.Playlists.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	tags := result.Data[0].Tags
	require.Len(t, tags, 2)
	assert.Equal(t, "Romance", tags[0].Name)
	assert.Equal(t, "#ff0000", *tags[0].Color)
	assert.Equal(t, "Drama", tags[1].Name)
	assert.Nil(t, tags[1].Color)
}

func TestStatisticsDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/statistics", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"mangas":5,"chapters":120,"users":9,"mangasByStatus":{"ongoing":3,"completed":2}}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL)
	require.NoError(t, err)

	stats, err := c.Statistics.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Mangas)
	assert.Equal(t, int64(3), stats.MangasByStatus["ongoing"])
}

func TestUserCreatePayloadCarriesUsername(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"u1","name":"Ana Souza","username":"ana-souza","email":"ana@example.com","role":"admin","coins":0,"emailVerified":false}`))
	}))
	defer srv.Close()

	c, err := client.NewClient(srv.URL, client.WithToken("admin-token"))
	require.NoError(t, err)

	u, err := c.Users.Create(context.Background(), client.CreateUser{
		Name:     "Ana Souza",
		Username: "ana-souza",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	require.NoError(t, err)

	// the server binding requires a username, so the wire payload must carry it
	assert.Equal(t, "ana-souza", payload["username"])
	assert.Equal(t, "ana-souza", u.Username)
}
