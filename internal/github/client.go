// Package github implements the small slice of the GitHub REST API that
// reposeed needs: the Contents API (create/update/read a file) and a branch
// lookup for pre-flight checks.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kilupskalvis/reposeed/internal/auth"
)

const defaultBaseURL = "https://api.github.com"

// ErrNotFound is returned when the requested path or branch does not exist.
var ErrNotFound = errors.New("not found")

// RepoRef identifies the target repository.
type RepoRef struct {
	Owner  string
	Name   string
	Branch string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// PutFileRequest is the JSON body for the Contents API create-or-update call.
type PutFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"` // base64
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// PutFileResult is the decoded response of a successful PUT.
type PutFileResult struct {
	Created   bool   // 201 created a new file, 200 updated an existing one
	Path      string
	BlobSHA   string
	CommitSHA string
}

// FileInfo describes an existing file, as returned by a contents GET.
type FileInfo struct {
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Size    int64  `json:"size"`
	Content string `json:"content,omitempty"` // base64, possibly with newlines
}

// BranchInfo describes an existing branch.
type BranchInfo struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// ContentsClient defines the contract the writer depends on.
type ContentsClient interface {
	PutFile(ctx context.Context, path string, req *PutFileRequest) (*PutFileResult, error)
	GetFile(ctx context.Context, path, ref string) (*FileInfo, error)
	GetBranch(ctx context.Context, branch string) (*BranchInfo, error)
}

// HTTPClient implements ContentsClient against api.github.com.
type HTTPClient struct {
	baseURL    string
	repo       RepoRef
	tokens     auth.TokenProvider
	httpClient *http.Client
}

// NewHTTPClient creates a Contents API client for the given repository.
func NewHTTPClient(repo RepoRef, tokens auth.TokenProvider) *HTTPClient {
	return &HTTPClient{
		baseURL:    defaultBaseURL,
		repo:       repo,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Used for GitHub Enterprise hosts
// and for tests against httptest servers.
func (c *HTTPClient) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *HTTPClient) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.repo.Owner, c.repo.Name, path)
}

func (c *HTTPClient) do(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("resolve credential: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// PutFile creates or updates a file through the Contents API. The request
// content must already be base64-encoded (see EncodeContent).
func (c *HTTPClient) PutFile(ctx context.Context, path string, req *PutFileRequest) (*PutFileResult, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var body struct {
		Content *struct {
			Path string `json:"path"`
			SHA  string `json:"sha"`
		} `json:"content"`
		Commit struct {
			SHA string `json:"sha"`
		} `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &PutFileResult{
		Created:   resp.StatusCode == http.StatusCreated,
		Path:      path,
		CommitSHA: body.Commit.SHA,
	}
	if body.Content != nil {
		result.BlobSHA = body.Content.SHA
	}
	return result, nil
}

// GetFile fetches metadata (notably the blob SHA) for an existing file.
func (c *HTTPClient) GetFile(ctx context.Context, path, ref string) (*FileInfo, error) {
	u := c.contentsURL(path)
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}

	resp, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("get %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var info FileInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &info, nil
}

// GetBranch fetches branch metadata, or ErrNotFound if the branch is missing.
func (c *HTTPClient) GetBranch(ctx context.Context, branch string) (*BranchInfo, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/branches/%s", c.baseURL, c.repo.Owner, c.repo.Name, url.PathEscape(branch))

	resp, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("branch %s: %w", branch, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var info BranchInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &info, nil
}
