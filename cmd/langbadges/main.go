package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kelllyy1/tools/internal"
	"github.com/kelllyy1/tools/internal/version"
)

func main() {
	var username string
	var outputPath string
	var apiURL string
	var envPath string
	var topCount int
	var debug bool
	var showVersion bool

	flag.StringVar(&username, "user", "", "GitHub username (defaults to GITHUB_USERNAME)")
	flag.StringVar(&outputPath, "output", "README.md", "Markdown file to write")
	flag.StringVar(&apiURL, "api", internal.DefaultGitHubAPI, "GitHub API base URL")
	flag.StringVar(&envPath, "env", ".env", "Environment file to load GITHUB_TOKEN and GITHUB_USERNAME from")
	flag.IntVar(&topCount, "top", 10, "Number of languages to include")
	flag.BoolVar(&debug, "debug", false, "Log every API page and skipped repository")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String("langbadges"))
		os.Exit(0)
	}

	if topCount < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := internal.LoadDotEnv(envPath); err != nil {
		log.Fatal("Couldn't load the environment file", "path", envPath, "error", err)
	}

	username = internal.FirstNonEmpty(username, os.Getenv("GITHUB_USERNAME"))

	if username == "" {
		log.Fatal("No GitHub username, set GITHUB_USERNAME or pass -user")
	}

	token := internal.GetEnv("GITHUB_TOKEN", "")

	if token == "" {
		log.Warn("GITHUB_TOKEN is not set, requests will be unauthenticated and rate limited")
	}

	ctx := context.Background()
	client := internal.NewGitHubClient(ctx, apiURL, token)

	log.Info("Fetching repos", "user", username)

	repos, err := client.ListRepositories(ctx, username)

	if err != nil {
		log.Fatal("Couldn't list repositories", "error", err)
	}

	log.Info("Found repos (excluding forks)", "count", len(repos))

	tally, err := AggregateLanguages(ctx, client, repos)

	if err != nil {
		log.Fatal("Couldn't fetch repository languages", "error", err)
	}

	log.Info("Detected unique languages", "count", len(tally))

	for _, language := range tally.Top(topCount) {
		log.Debug("Language", "name", language.Name, "bytes", internal.PrettyPrintInt(language.Bytes))
	}

	written, err := WriteReadme(outputPath, tally, topCount)

	if err != nil {
		log.Fatal("Couldn't write badges", "error", err)
	}

	log.Info("Generated badges", "path", outputPath, "size", internal.PrettyPrintBytes(written))
}
