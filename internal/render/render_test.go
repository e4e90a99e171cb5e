package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mangastudio/pkg/types"
)

func sampleReport() *types.Report {
	return &types.Report{
		RootUsed:   "/srv/models",
		RootSource: types.RootManifest,
		ConfigPath: "/opt/manga/config/models.json",
		Results: []types.Result{
			{Key: "sd", Type: "diffusers", Present: true, Errors: []types.Issue{}, ResolvedPath: "/srv/models/sd"},
			{Key: "voz", Type: "coqui", ResolvedPath: "/srv/models/voz", Errors: []types.Issue{
				{Kind: types.IssueStructural, Message: "first"},
				{Kind: types.IssueStructural, Message: "second"},
			}},
		},
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, sampleReport()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Model Manager - model status", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Model"))
	assert.True(t, strings.HasPrefix(lines[2], "-----"))
	assert.Contains(t, lines[3], "OK")
	assert.Contains(t, lines[4], "MISSING")
	assert.True(t, strings.HasSuffix(lines[4], "first; second"))
	// columns line up: "Type" starts where "diffusers" starts
	assert.Equal(t, strings.Index(lines[1], "Type"), strings.Index(lines[3], "diffusers"))
	assert.Equal(t, strings.Index(lines[1], "Type"), strings.Index(lines[4], "coqui"))
}

func TestTable_WideRunes(t *testing.T) {
	r := &types.Report{Results: []types.Result{
		{Key: "漫画", Type: "ggml", Present: true},
		{Key: "ab", Type: "ggml", Present: true},
	}}
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, r))
	lines := strings.Split(buf.String(), "\n")
	// each rune of "漫画" takes two cells, so it pads like a 4-letter key
	assert.True(t, strings.HasPrefix(lines[3], "漫画   ggml"), "%q", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "ab     ggml"), "%q", lines[4])
}

func TestJSON_KeepsOrderAndShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleReport()))
	out := buf.String()
	assert.Less(t, strings.Index(out, `"sd"`), strings.Index(out, `"voz"`))

	var doc struct {
		RootUsed   *string                    `json:"root_used"`
		ConfigPath string                     `json:"config_path"`
		Results    map[string]types.FlatEntry `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.NotNil(t, doc.RootUsed)
	assert.Equal(t, "/srv/models", *doc.RootUsed)
	assert.Equal(t, []string{}, doc.Results["sd"].Errors)
	assert.Equal(t, []string{"first", "second"}, doc.Results["voz"].Errors)
	assert.False(t, doc.Results["voz"].Present)
	assert.Equal(t, "coqui", doc.Results["voz"].Type)
}

func TestJSON_NullRootWhenNone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, &types.Report{RootSource: types.RootNone}))
	assert.Contains(t, buf.String(), `"root_used": null`)
	assert.Contains(t, buf.String(), `"results": {}`)
}

func TestEstimate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Estimate(&buf, types.Estimate{Words: 5, Shots: 1, Keyframes: 3, DurationSeconds: 30}))
	assert.Contains(t, buf.String(), `"duration_seconds": 30`)
}
