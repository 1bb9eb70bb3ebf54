package reporters

import (
	"fmt"
	"io"
	"os"

	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/reportstorage"
	"github.com/reaandrew/snapreview/utils"
)

const (
	FormatWorkflow     = "workflow"
	FormatJson         = "json"
	FormatSarif        = "sarif"
	FormatGithubChecks = "github-checks"
)

// Options carries what the individual reporters need.
type Options struct {
	Writer         io.Writer
	OutputDir      string
	ArtifactPrefix string
	Version        string
	// Repository is "owner/repo", usually GITHUB_REPOSITORY.
	Repository string
	HeadSHA    string
	Workspace  string
	GithubApi  utils.GithubApi
}

// OptionsFromEnv fills the GitHub specific options from the runner
// environment.
func OptionsFromEnv() Options {
	return Options{
		Writer:     os.Stdout,
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		HeadSHA:    os.Getenv("GITHUB_SHA"),
		Workspace:  os.Getenv("GITHUB_WORKSPACE"),
	}
}

func CreateReporter(reportFormat string, opts Options) (core.Reporter, error) {
	storage := reportstorage.CreateFileReportStorage(opts.ArtifactPrefix, opts.OutputDir)

	switch reportFormat {
	case FormatWorkflow:
		if opts.Writer == nil {
			return NewWorkflowCommandReporter(), nil
		}
		return WorkflowCommandReporter{Writer: opts.Writer}, nil
	case FormatJson:
		return NewJsonReporter(storage), nil
	case FormatSarif:
		return SarifReporter{Storage: storage, ToolVersion: opts.Version}, nil
	case FormatGithubChecks:
		owner, repo, err := utils.SplitRepository(opts.Repository)
		if err != nil {
			return nil, err
		}
		api := opts.GithubApi
		if api == nil {
			api = utils.NewGithubApiClient()
		}
		return GithubChecksReporter{Api: api, Owner: owner, Repo: repo, HeadSHA: opts.HeadSHA, Workspace: opts.Workspace}, nil
	}

	return nil, fmt.Errorf("unknown report format: %s", reportFormat)
}

// CreateReporters builds one reporter per distinct format, defaulting to
// workflow commands.
func CreateReporters(formats []string, opts Options) (core.Reporter, error) {
	if len(formats) == 0 {
		formats = []string{FormatWorkflow}
	}

	var seen []string
	var multi MultiReporter
	for _, format := range formats {
		if utils.Contains(seen, format) {
			continue
		}
		seen = append(seen, format)

		reporter, err := CreateReporter(format, opts)
		if err != nil {
			return nil, err
		}
		multi = append(multi, reporter)
	}
	return multi, nil
}
