package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

const (
	DefaultGitHubAPI = "https://api.github.com"
	ReposPerPage     = 100
)

// Repository is the subset of the GitHub repository listing we care about
type Repository struct {
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Fork         bool   `json:"fork"`
	LanguagesURL string `json:"languages_url"`
}

// APIError is returned when GitHub answers with anything other than 200 OK
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

type GitHubClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGitHubClient returns a client for the API at baseURL. When token is non-empty every request carries
// it as a bearer token.
func NewGitHubClient(ctx context.Context, baseURL string, token string) *GitHubClient {
	httpClient := http.DefaultClient

	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	return &GitHubClient{
		BaseURL:    strings.TrimRight(FirstNonEmpty(baseURL, DefaultGitHubAPI), "/"),
		HTTPClient: httpClient,
	}
}

// ListRepositories pages through every repository owned by username and returns the ones that aren't forks.
// Paging stops at the first empty page. Any non-200 page aborts the listing with an *APIError.
func (c *GitHubClient) ListRepositories(ctx context.Context, username string) ([]Repository, error) {
	var repos []Repository

	for page := 1; ; page++ {
		pageURL := fmt.Sprintf("%s/users/%s/repos?%s", c.BaseURL, url.PathEscape(username), url.Values{
			"page":     []string{strconv.Itoa(page)},
			"per_page": []string{strconv.Itoa(ReposPerPage)},
		}.Encode())

		var pageRepos []Repository

		if err := c.getJSON(ctx, pageURL, &pageRepos); err != nil {
			return nil, fmt.Errorf("error listing repositories for %s (page %d): %w", username, page, err)
		}

		log.Debug("Fetched repository page", "page", page, "count", len(pageRepos))

		if len(pageRepos) == 0 {
			break
		}

		for _, repo := range pageRepos {
			if repo.Fork {
				continue
			}

			repos = append(repos, repo)
		}
	}

	return repos, nil
}

// RepositoryLanguages returns the byte count per language for repo
func (c *GitHubClient) RepositoryLanguages(ctx context.Context, repo Repository) (map[string]uint64, error) {
	languages := map[string]uint64{}

	if err := c.getJSON(ctx, repo.LanguagesURL, &languages); err != nil {
		return nil, fmt.Errorf("error fetching languages for %s: %w", repo.Name, err)
	}

	return languages, nil
}

func (c *GitHubClient) getJSON(ctx context.Context, requestURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)

	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTPClient.Do(req)

	if err != nil {
		return fmt.Errorf("error calling GitHub API: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{URL: requestURL, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err = json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("error parsing JSON response: %w", err)
	}

	return nil
}
