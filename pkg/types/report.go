package types

import (
	"bytes"
	"encoding/json"
)

// IssueKind classifies a per-asset validation failure so callers can branch
// on it without matching message text.
type IssueKind string

const (
	// IssueMissingPath: the declaration has no usable path.
	IssueMissingPath IssueKind = "missing_path"
	// IssueNotFound: the resolved location does not exist.
	IssueNotFound IssueKind = "not_found"
	// IssueStructural: the location exists but does not have the shape its family expects.
	IssueStructural IssueKind = "structural_mismatch"
)

// Issue is a single human-readable diagnostic tagged with its kind.
type Issue struct {
	// example: not_found
	Kind IssueKind `json:"kind" example:"not_found"`
	// example: path does not exist
	Message string `json:"message" example:"path does not exist"`
}

func (i Issue) String() string { return i.Message }

// RootSource names which resolution root was in effect for a run.
type RootSource string

const (
	RootEnv      RootSource = "env"
	RootManifest RootSource = "manifest"
	RootNone     RootSource = "none"
)

// Result is the validation outcome of one declared asset.
// Present is true exactly when Errors is empty.
type Result struct {
	// Manifest key of the asset.
	// example: sd15
	Key string `json:"key" example:"sd15"`
	// example: true
	Present bool `json:"present" example:"true"`
	// Diagnostics in the order they were discovered.
	Errors []Issue `json:"errors"`
	// Absolute, normalized location that was checked. Empty when the
	// declaration had no path.
	// example: /srv/models/sd15
	ResolvedPath string `json:"resolved_path" example:"/srv/models/sd15"`
	// Lowercased family tag as declared.
	// example: diffusers
	Type string `json:"type" example:"diffusers"`
	// Optional display name.
	// example: Stable Diffusion 1.5
	Name string `json:"name,omitempty" example:"Stable Diffusion 1.5"`
}

// Messages returns the plain error strings of r.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// Report is the outcome of a full validation pass. Results follow manifest
// declaration order.
type Report struct {
	// Root that relative paths were resolved against, if any.
	// example: /srv/models
	RootUsed string `json:"root_used,omitempty" example:"/srv/models"`
	// example: env
	RootSource RootSource `json:"root_source" example:"env"`
	// Manifest the report was built from.
	// example: /opt/manga/config/models.json
	ConfigPath string   `json:"config_path" example:"/opt/manga/config/models.json"`
	Results    []Result `json:"results"`
}

// Lookup returns the result for key.
func (r *Report) Lookup(key string) (Result, bool) {
	for _, res := range r.Results {
		if res.Key == key {
			return res, true
		}
	}
	return Result{}, false
}

// Summary counts present and missing assets.
func (r *Report) Summary() (present, missing int) {
	for _, res := range r.Results {
		if res.Present {
			present++
		} else {
			missing++
		}
	}
	return present, missing
}

// FlatEntry is the per-asset record of the flat report document.
type FlatEntry struct {
	Present      bool     `json:"present"`
	Type         string   `json:"type"`
	Name         string   `json:"name,omitempty"`
	Errors       []string `json:"errors"`
	ResolvedPath string   `json:"resolved_path"`
}

// FlatResults is an ordered key -> FlatEntry mapping. It marshals as a JSON
// object whose keys keep declaration order.
type FlatResults struct {
	Keys    []string
	Entries map[string]FlatEntry
}

func (f FlatResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(f.Entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FlatReport is the machine-oriented rendering of a Report.
type FlatReport struct {
	RootUsed   *string     `json:"root_used"`
	ConfigPath string      `json:"config_path"`
	Results    FlatResults `json:"results"`
}

// Flatten converts r into the flat key -> entry document.
func (r *Report) Flatten() FlatReport {
	flat := FlatReport{
		ConfigPath: r.ConfigPath,
		Results: FlatResults{
			Keys:    make([]string, 0, len(r.Results)),
			Entries: make(map[string]FlatEntry, len(r.Results)),
		},
	}
	if r.RootUsed != "" {
		root := r.RootUsed
		flat.RootUsed = &root
	}
	for _, res := range r.Results {
		flat.Results.Keys = append(flat.Results.Keys, res.Key)
		flat.Results.Entries[res.Key] = FlatEntry{
			Present:      res.Present,
			Type:         res.Type,
			Name:         res.Name,
			Errors:       res.Messages(),
			ResolvedPath: res.ResolvedPath,
		}
	}
	return flat
}
