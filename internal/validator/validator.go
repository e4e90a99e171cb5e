// Package validator runs a full validation pass over a model manifest:
// load once, then resolve and check every declared asset.
//
// Per-asset failures never surface as errors; they are recorded as issues on
// the asset's result. Only manifest load failures abort a run.
package validator

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mangastudio/internal/checker"
	"mangastudio/internal/manifest"
	"mangastudio/internal/resolver"
	"mangastudio/pkg/types"
)

const defaultWorkers = 1

// Options configures a Validator. Zero values select defaults.
type Options struct {
	// ManifestPath is used when Validate is called with an empty path.
	// Empty means <ProjectRoot>/config/models.json.
	ManifestPath string
	// ProjectRoot is the fallback resolution root. Empty means the working directory.
	ProjectRoot string
	// Getenv reads the models root override. Defaults to os.Getenv.
	Getenv func(string) string
	// FS is the filesystem checkers inspect. Defaults to the host filesystem.
	FS checker.FS
	// Workers bounds concurrent asset checks. Values below 1 mean 1.
	Workers int
	// Logger receives per-asset debug and per-run summary logs. Nil disables logging.
	Logger *zerolog.Logger
}

// Validator validates manifests against the filesystem. It holds no state
// across runs and is safe for concurrent use.
type Validator struct {
	manifestPath string
	projectRoot  string
	getenv       func(string) string
	fs           checker.FS
	workers      int
	log          zerolog.Logger
}

// New constructs a Validator from opts, applying defaults.
func New(opts Options) *Validator {
	v := &Validator{
		manifestPath: opts.ManifestPath,
		projectRoot:  opts.ProjectRoot,
		getenv:       opts.Getenv,
		fs:           opts.FS,
		workers:      opts.Workers,
		log:          zerolog.Nop(),
	}
	if v.projectRoot == "" {
		if wd, err := os.Getwd(); err == nil {
			v.projectRoot = wd
		} else {
			v.projectRoot = "."
		}
	}
	if v.getenv == nil {
		v.getenv = os.Getenv
	}
	if v.fs == nil {
		v.fs = checker.OS
	}
	if v.workers < 1 {
		v.workers = defaultWorkers
	}
	if opts.Logger != nil {
		v.log = *opts.Logger
	}
	return v
}

// ValidateModels validates the manifest at configPath with default options.
// The project root is the process working directory at call time: an empty
// configPath reads <cwd>/config/models.json, and relative declarations fall
// back to <cwd> when neither MANGA_MODELS_PATH nor root_models_path is set.
// Results therefore depend on where the process runs; use New with
// Options.ProjectRoot for a fixed root.
func ValidateModels(configPath string) (*types.Report, error) {
	return New(Options{}).Validate(configPath)
}

// ManifestPath returns the manifest location Validate("") would read.
func (v *Validator) ManifestPath() string {
	if v.manifestPath != "" {
		return v.manifestPath
	}
	return manifest.DefaultPath(v.projectRoot)
}

// Validate loads the manifest at manifestPath (or the configured default) and
// checks every declared asset. It returns an error only when the manifest
// cannot be loaded; in that case there is no report.
func (v *Validator) Validate(manifestPath string) (*types.Report, error) {
	start := time.Now()
	if manifestPath == "" {
		manifestPath = v.ManifestPath()
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		manifestErrorsTotal.WithLabelValues(manifestErrorReason(err)).Inc()
		v.log.Error().Err(err).Str("manifest", manifestPath).Msg("manifest load failed")
		return nil, err
	}

	rc := resolver.NewContext(m.Root, v.projectRoot, v.getenv)
	rootUsed, source := rc.RootUsed()
	decls := m.Declarations()

	// Results are stored by index so declaration order survives any completion order.
	results := make([]types.Result, len(decls))
	var g errgroup.Group
	g.SetLimit(v.workers)
	for i, d := range decls {
		i, d := i, d
		g.Go(func() error {
			results[i] = v.validateOne(d, rc)
			return nil
		})
	}
	_ = g.Wait()

	report := &types.Report{
		RootUsed:   rootUsed,
		RootSource: source,
		ConfigPath: m.Source,
		Results:    results,
	}
	dur := time.Since(start)
	validationDuration.Observe(dur.Seconds())
	present, missing := report.Summary()
	v.log.Info().
		Str("manifest", m.Source).
		Str("root_source", string(source)).
		Int("present", present).
		Int("missing", missing).
		Dur("dur", dur).
		Msg("models validated")
	return report, nil
}

// Ready reports whether the configured manifest can be loaded.
func (v *Validator) Ready() bool {
	_, err := manifest.Load(v.ManifestPath())
	return err == nil
}

func (v *Validator) validateOne(d manifest.Declaration, rc resolver.Context) types.Result {
	res := types.Result{Key: d.Key, Type: d.Type, Name: d.Name}
	resolved, err := resolver.Resolve(d.Path, rc)
	switch {
	case errors.Is(err, resolver.ErrMissingPath):
		res.Errors = []types.Issue{{Kind: types.IssueMissingPath, Message: "entry has no 'path' field"}}
	case err != nil:
		res.Errors = []types.Issue{{Kind: types.IssueNotFound, Message: err.Error()}}
	default:
		res.ResolvedPath = resolved
		res.Present, res.Errors = checker.Check(v.fs, d.Family, resolved)
	}
	res = settle(res)

	outcome := "present"
	gauge := 1.0
	if !res.Present {
		outcome = string(res.Errors[0].Kind)
		gauge = 0
	}
	assetChecksTotal.WithLabelValues(d.Family.String(), outcome).Inc()
	assetPresent.WithLabelValues(d.Key).Set(gauge)

	ev := v.log.Debug().Str("asset", d.Key).Str("family", d.Family.String()).Str("path", res.ResolvedPath)
	if res.Present {
		ev.Msg("asset ok")
	} else {
		ev.Strs("errors", res.Messages()).Msg("asset missing")
	}
	return res
}

// settle enforces present <=> no issues and a non-nil Errors slice.
func settle(res types.Result) types.Result {
	if len(res.Errors) > 0 {
		res.Present = false
		return res
	}
	if !res.Present {
		res.Errors = []types.Issue{{Kind: types.IssueNotFound, Message: "path does not exist"}}
		return res
	}
	res.Errors = []types.Issue{}
	return res
}
