package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/joescharf/ghissues/internal/github"
	"github.com/joescharf/ghissues/internal/output"
	"github.com/joescharf/ghissues/internal/rank"
)

// issueColumns is the fixed column set of the issue table.
var issueColumns = []string{"number", "created_at", "title"}

// exitFunc is replaceable in tests.
var exitFunc = os.Exit

// issuesRun is the main pipeline: parse, fetch, decode, rank, limit,
// render. An API error prints its message and exits 2; help and usage
// errors print usage and exit 0.
func issuesRun(args []string) error {
	defaultCount := viper.GetInt("default_count")

	parsed, err := parseArgs(args, defaultCount)
	if err != nil {
		return err
	}
	if parsed.Help {
		printUsage()
		return nil
	}

	client := newGitHubClient()
	ui.VerboseLog("GET %s/repos/%s/%s/issues", client.BaseURL, parsed.User, parsed.Repo)

	result, err := client.Issues(context.Background(), parsed.User, parsed.Repo)
	if err != nil {
		return err
	}

	issues, err := github.Decode(result)
	if err != nil {
		var apiErr *github.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(ui.Out, "Error fetching from Github: %s\n", apiErr.Message)
			exitFunc(2)
			return nil
		}
		return err
	}

	selected := rank.Latest(rank.ByCreatedDesc(issues), parsed.Count)
	return output.RenderTable(ui.Out, issueColumns, rowsOf(selected))
}

func rowsOf(issues []github.Issue) []map[string]any {
	rows := make([]map[string]any, len(issues))
	for i, issue := range issues {
		rows[i] = issue
	}
	return rows
}

func printUsage() {
	fmt.Fprintf(ui.Out, "Usage: ghissues <user> <repository> [count | default: %d]\n",
		viper.GetInt("default_count"))
}
