package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kelllyy1/tools/internal"
)

const (
	readmeHeading = "## Top Languages from My GitHub"
	badgesPerLine = 4
)

// logoMap maps a GitHub language name to its shields.io logo slug
var logoMap = map[string]string{
	"Python":           "python",
	"JavaScript":       "javascript",
	"Go":               "go",
	"HTML":             "html5",
	"Ruby":             "ruby",
	"TypeScript":       "typescript",
	"C++":              "cplusplus",
	"C":                "c",
	"Swift":            "swift",
	"Shell":            "gnu-bash",
	"CSS":              "css3",
	"Objective-C":      "apple",
	"Jupyter Notebook": "jupyter",
	"Java":             "java",
}

// LanguageFetcher returns the language breakdown of a single repository
type LanguageFetcher interface {
	RepositoryLanguages(ctx context.Context, repo internal.Repository) (map[string]uint64, error)
}

// LanguageTally is the running byte count per language
type LanguageTally map[string]uint64

type LanguageCount struct {
	Name  string
	Bytes uint64
}

func (t LanguageTally) Add(languages map[string]uint64) {
	for name, bytes := range languages {
		t[name] += bytes
	}
}

// Top returns the n languages with the most bytes, ties broken by name
func (t LanguageTally) Top(n int) []LanguageCount {
	counts := make([]LanguageCount, 0, len(t))

	for name, bytes := range t {
		counts = append(counts, LanguageCount{Name: name, Bytes: bytes})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Bytes != counts[j].Bytes {
			return counts[i].Bytes > counts[j].Bytes
		}

		return counts[i].Name < counts[j].Name
	})

	if n < 0 {
		n = 0
	}

	if n < len(counts) {
		counts = counts[:n]
	}

	return counts
}

// AggregateLanguages sums the language breakdown of every repo. A repository whose languages request is
// rejected by the API contributes nothing, any other failure aborts.
func AggregateLanguages(ctx context.Context, fetcher LanguageFetcher, repos []internal.Repository) (LanguageTally, error) {
	tally := LanguageTally{}

	for _, repo := range repos {
		languages, err := fetcher.RepositoryLanguages(ctx, repo)

		var apiErr *internal.APIError

		if errors.As(err, &apiErr) {
			log.Debug("Skipping repository", "repo", repo.Name, "status", apiErr.StatusCode)
			continue
		}

		if err != nil {
			return nil, err
		}

		tally.Add(languages)
	}

	return tally, nil
}

// escapeLabel percent-encodes everything but unreserved characters and "/"
func escapeLabel(label string) string {
	escaped := url.QueryEscape(label)

	// QueryEscape turns spaces into "+" and escapes "/", neither of which we want in a path
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	escaped = strings.ReplaceAll(escaped, "%2F", "/")

	return escaped
}

// GenerateBadge renders a shields.io markdown badge for a language. Languages without a known logo still
// get a badge, just without an icon.
func GenerateBadge(label string) string {
	logo := logoMap[label]

	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-informational?style=for-the-badge&logo=%s&logoColor=white)",
		label, escapeLabel(label), logo)
}

// WriteBadges writes the heading and the badges for the top n languages, four to a line
func WriteBadges(w io.Writer, tally LanguageTally, n int) error {
	var builder strings.Builder

	builder.WriteString(readmeHeading + "\n\n")

	for i, language := range tally.Top(n) {
		builder.WriteString(GenerateBadge(language.Name) + " ")

		if (i+1)%badgesPerLine == 0 {
			builder.WriteString("\n")
		}
	}

	builder.WriteString("\n")

	_, err := io.WriteString(w, builder.String())

	return err
}

// WriteReadme replaces the file at path with the badge listing and returns the number of bytes written
func WriteReadme(path string, tally LanguageTally, n int) (uint64, error) {
	file, err := os.Create(path)

	if err != nil {
		return 0, fmt.Errorf("error creating %s: %w", path, err)
	}

	counter := internal.NewByteCounterWriter(file)

	if err = WriteBadges(counter, tally, n); err != nil {
		file.Close()
		return counter.Count(), fmt.Errorf("error writing %s: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return counter.Count(), fmt.Errorf("error closing %s: %w", path, err)
	}

	return counter.Count(), nil
}
