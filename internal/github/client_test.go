package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kilupskalvis/reposeed/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewHTTPClient(RepoRef{Owner: "octocat", Name: "demo", Branch: "main"}, auth.Static("tok-123"))
	c.SetBaseURL(srv.URL)
	return c
}

func TestPutFile_Created(t *testing.T) {
	var gotReq PutFileRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/repos/octocat/demo/contents/config.json", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"content":{"path":"config.json","sha":"blob1"},"commit":{"sha":"commit1"}}`))
	})

	res, err := c.PutFile(context.Background(), "config.json", &PutFileRequest{
		Message: "Add config.json",
		Content: EncodeContent([]byte("{}")),
		Branch:  "main",
	})

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "blob1", res.BlobSHA)
	assert.Equal(t, "commit1", res.CommitSHA)
	assert.Equal(t, "main", gotReq.Branch)

	decoded, err := DecodeContent(gotReq.Content)
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), decoded)
}

func TestPutFile_Updated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"content":{"path":"a.txt","sha":"blob2"},"commit":{"sha":"commit2"}}`))
	})

	res, err := c.PutFile(context.Background(), "a.txt", &PutFileRequest{
		Message: "Update a.txt",
		Content: EncodeContent([]byte("hi")),
		Branch:  "main",
		SHA:     "blob1",
	})

	require.NoError(t, err)
	assert.False(t, res.Created)
}

func TestPutFile_ConflictDecoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"is at abc but expected def","documentation_url":"https://docs.github.com"}`))
	})

	_, err := c.PutFile(context.Background(), "a.txt", &PutFileRequest{Branch: "main"})

	require.Error(t, err)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusConflict, ae.Status)
	assert.Contains(t, ae.Message, "expected def")
	assert.True(t, IsConflict(err))
}

func TestPutFile_MalformedErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream choked"))
	})

	_, err := c.PutFile(context.Background(), "a.txt", &PutFileRequest{Branch: "main"})

	require.Error(t, err)
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusBadGateway, ae.Status)
	assert.Equal(t, "Bad Gateway", ae.Message)
}

func TestGetFile_ReturnsSHA(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		w.Write([]byte(`{"path":"a.txt","sha":"blob9","size":2,"content":"aGk=\n"}`))
	})

	info, err := c.GetFile(context.Background(), "a.txt", "main")

	require.NoError(t, err)
	assert.Equal(t, "blob9", info.SHA)

	decoded, err := DecodeContent(info.Content)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), decoded)
}

func TestGetFile_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := c.GetFile(context.Background(), "missing.txt", "main")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBranch_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/demo/branches/main", r.URL.Path)
		w.Write([]byte(`{"name":"main","commit":{"sha":"tip1"}}`))
	})

	b, err := c.GetBranch(context.Background(), "main")

	require.NoError(t, err)
	assert.Equal(t, "main", b.Name)
	assert.Equal(t, "tip1", b.Commit.SHA)
}

func TestGetBranch_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Branch not found"}`))
	})

	_, err := c.GetBranch(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CredentialFailureBeforeNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.tokens = auth.Static("")

	_, err := c.PutFile(context.Background(), "a.txt", &PutFileRequest{Branch: "main"})

	require.Error(t, err)
	assert.False(t, called)
}
