package verify_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/eqcolor/builder"
	"github.com/katalvlaran/eqcolor/coloring"
	"github.com/katalvlaran/eqcolor/dimacs"
	"github.com/katalvlaran/eqcolor/report"
	"github.com/katalvlaran/eqcolor/validity"
	"github.com/katalvlaran/eqcolor/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path3 = "c path on three vertices\np edge 3 2\ne 1 2\ne 2 3\n"

// writeFile stores body under dir/name and returns the path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func newVerifier(t *testing.T, opts ...verify.Option) *verify.Verifier {
	t.Helper()
	v, err := verify.NewVerifier(opts...)
	require.NoError(t, err)
	return v
}

// TestConfig_Validate covers the struct-tag rules.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  verify.Config
		ok   bool
	}{
		{"text", verify.Config{GraphPath: "g.col", ColoringText: "0 1"}, true},
		{"file", verify.Config{GraphPath: "g.col", ColoringPath: "c.txt", ExpectedK: 3}, true},
		{"no graph", verify.Config{ColoringText: "0"}, false},
		{"no coloring", verify.Config{GraphPath: "g.col"}, false},
		{"both colorings", verify.Config{GraphPath: "g.col", ColoringText: "0", ColoringPath: "c.txt"}, false},
		{"negative k", verify.Config{GraphPath: "g.col", ColoringText: "0", ExpectedK: -1}, false},
		{"negative preview", verify.Config{GraphPath: "g.col", ColoringText: "0", PreviewLimit: -2}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, verify.ErrInvalidConfig)
		})
	}
}

// TestLoadConfig decodes, rejects unknown keys and validates.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	p := writeFile(t, dir, "run.yaml", "graph_path: g.col\ncoloring_text: \"0 1 0\"\nexpected_k: 2\ntruncate_extra: true\npreview_limit: 7\n")
	cfg, err := verify.LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, verify.Config{
		GraphPath: "g.col", ColoringText: "0 1 0", ExpectedK: 2, TruncateExtra: true, PreviewLimit: 7,
	}, *cfg)

	p = writeFile(t, dir, "typo.yaml", "graph_path: g.col\ncoloring: \"0\"\n")
	_, err = verify.LoadConfig(p)
	require.ErrorIs(t, err, verify.ErrInvalidConfig)

	p = writeFile(t, dir, "neg.yaml", "graph_path: g.col\ncoloring_text: \"0\"\nexpected_k: -4\n")
	_, err = verify.LoadConfig(p)
	require.ErrorIs(t, err, verify.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ExpectedK")

	_, err = verify.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRun_Outcomes drives the path3 scenarios through files and text.
func TestRun_Outcomes(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "path3.col", path3)
	cf := writeFile(t, dir, "colors.txt", "0 1\n2\n")
	v := newVerifier(t)
	ctx := context.Background()

	r, err := v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.NoError(t, err)
	assert.Equal(t, report.Success, r.Outcome)
	assert.Nil(t, r.ExpectedK)

	r, err = v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 0 1"})
	require.NoError(t, err)
	assert.Equal(t, report.Failed, r.Outcome)
	assert.Equal(t, []validity.Violation{{U: 1, V: 2, Color: 0}}, r.Violations)

	r, err = v.Run(ctx, verify.Config{GraphPath: g, ColoringPath: cf, ExpectedK: 3})
	require.NoError(t, err)
	assert.Equal(t, report.Success, r.Outcome)
	assert.Equal(t, 3, r.NumColorsUsed)

	r, err = v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 1 0", ExpectedK: 3})
	require.NoError(t, err)
	assert.Equal(t, report.PartialWrongK, r.Outcome)
}

// TestRun_Errors checks that stage errors stay matchable.
func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "path3.col", path3)
	bad := writeFile(t, dir, "bad.col", "p edge 0 0\n")
	v := newVerifier(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  verify.Config
		want error
	}{
		{"missing graph", verify.Config{GraphPath: filepath.Join(dir, "nope.col"), ColoringText: "0"}, dimacs.ErrFileNotFound},
		{"malformed graph", verify.Config{GraphPath: bad, ColoringText: "0"}, dimacs.ErrMalformedInput},
		{"malformed coloring", verify.Config{GraphPath: g, ColoringText: "0 x 1"}, coloring.ErrMalformedInput},
		{"short coloring", verify.Config{GraphPath: g, ColoringText: "0 1"}, validity.ErrLengthMismatch},
		{"long coloring", verify.Config{GraphPath: g, ColoringText: "0 1 0 1"}, validity.ErrLengthMismatch},
		{"invalid config", verify.Config{GraphPath: g}, verify.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := v.Run(ctx, tc.cfg)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, r)
		})
	}

	_, err := v.Run(ctx, verify.Config{GraphPath: g, ColoringPath: filepath.Join(dir, "none.txt")})
	require.ErrorIs(t, err, os.ErrNotExist)

	var lm *validity.LengthMismatchError
	_, err = v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0"})
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 3, lm.Expected)
	assert.Equal(t, 1, lm.Actual)
}

// TestRun_Truncate keeps the first |V| colors only when asked, and logs it.
func TestRun_Truncate(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "path3.col", path3)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := newVerifier(t, verify.WithLogger(logger))

	r, err := v.Run(context.Background(), verify.Config{GraphPath: g, ColoringText: "0 1 0 7 7", TruncateExtra: true})
	require.NoError(t, err)
	assert.Equal(t, report.Success, r.Outcome)
	assert.Equal(t, []int{0, 1}, r.ColorsUsed)
	assert.Contains(t, logs.String(), "truncating coloring to vertex count")
	assert.Contains(t, logs.String(), "outcome=SUCCESS")
}

// TestRun_LoadWarnings logs skipped lines, dropped edges and header drift.
func TestRun_LoadWarnings(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "odd.col", "x junk\np edge 3 5\ne 1 2\ne 2 9\n")

	var logs bytes.Buffer
	v := newVerifier(t, verify.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	r, err := v.Run(context.Background(), verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Edges)

	out := logs.String()
	assert.Contains(t, out, "skipped unrecognized lines")
	assert.Contains(t, out, "dropped out-of-range edges")
	assert.Contains(t, out, "edge count differs from header")
}

// TestRun_DroppedEdgeKeepsHeaderCount counts dropped e lines against the
// declared edge count.
func TestRun_DroppedEdgeKeepsHeaderCount(t *testing.T) {
	g := writeFile(t, t.TempDir(), "drop.col", "p edge 3 2\ne 1 2\ne 2 9\n")

	var logs bytes.Buffer
	v := newVerifier(t, verify.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	_, err := v.Run(context.Background(), verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "dropped out-of-range edges")
	assert.NotContains(t, logs.String(), "edge count differs from header")
}

// TestRun_Canceled stops at the first stage boundary.
func TestRun_Canceled(t *testing.T) {
	g := writeFile(t, t.TempDir(), "path3.col", path3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newVerifier(t).Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.ErrorIs(t, err, context.Canceled)
}

// TestVerifier_Cache serves repeated runs from memory.
func TestVerifier_Cache(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "path3.col", path3)
	v := newVerifier(t, verify.WithCacheSize(1))
	ctx := context.Background()

	_, err := v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.NoError(t, err)
	require.Equal(t, 1, v.CacheLen())

	require.NoError(t, os.Remove(g))
	r, err := v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "1 0 1"})
	require.NoError(t, err, "second run must not touch the file")
	assert.Equal(t, report.Success, r.Outcome)

	other := writeFile(t, dir, "other.col", path3)
	_, err = v.Run(ctx, verify.Config{GraphPath: other, ColoringText: "0 1 0"})
	require.NoError(t, err)
	assert.Equal(t, 1, v.CacheLen(), "capacity bounds the cache")

	_, err = v.Run(ctx, verify.Config{GraphPath: g, ColoringText: "0 1 0"})
	require.ErrorIs(t, err, dimacs.ErrFileNotFound, "evicted entry reloads from disk")
}

// TestRunBatch_Order returns one report per candidate in input order.
func TestRunBatch_Order(t *testing.T) {
	dir := t.TempDir()
	gr, err := builder.BuildGraph(nil, builder.CompleteMultipartite(4, 5))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, gr))
	g := writeFile(t, dir, "k4x5.col", buf.String())

	partition := make([]byte, 0, 64)
	merged := make([]byte, 0, 64)
	for i := 0; i < 20; i++ {
		partition = fmt.Appendf(partition, "%d ", i/5)
		merged = fmt.Appendf(merged, "%d ", min(i/5, 2))
	}

	var cfgs []verify.Config
	want := []report.Outcome{}
	for i := 0; i < 12; i++ {
		cfg := verify.Config{GraphPath: g, ColoringText: string(partition), ExpectedK: 4}
		out := report.Success
		switch i % 3 {
		case 1:
			cfg.ColoringText, out = string(merged), report.Failed
		case 2:
			cfg.ExpectedK, out = 5, report.PartialWrongK
		}
		cfgs = append(cfgs, cfg)
		want = append(want, out)
	}

	v := newVerifier(t, verify.WithConcurrency(4))
	reports, err := v.RunBatch(context.Background(), cfgs)
	require.NoError(t, err)
	require.Len(t, reports, len(cfgs))
	for i, r := range reports {
		assert.Equal(t, want[i], r.Outcome, "candidate %d", i)
	}
	assert.Equal(t, 1, v.CacheLen())
	assert.Equal(t, 25, reports[1].NumViolations(), "merged parts 2 and 3 form K_{5,5}")
}

// TestRunBatch_Error returns no partial results.
func TestRunBatch_Error(t *testing.T) {
	g := writeFile(t, t.TempDir(), "path3.col", path3)
	cfgs := []verify.Config{
		{GraphPath: g, ColoringText: "0 1 0"},
		{GraphPath: g, ColoringText: "0 1"},
		{GraphPath: g, ColoringText: "1 0 1"},
	}

	reports, err := newVerifier(t, verify.WithConcurrency(1)).RunBatch(context.Background(), cfgs)
	require.ErrorIs(t, err, validity.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "candidate 1")
	assert.Nil(t, reports)

	reports, err = newVerifier(t).RunBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

// TestWithLogger_Nil panics like the other nil-option constructors.
func TestWithLogger_Nil(t *testing.T) {
	assert.Panics(t, func() { verify.WithLogger(nil) })
}

// TestDecodeConfig leaves validation to the caller.
func TestDecodeConfig(t *testing.T) {
	cfg, err := verify.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, verify.Config{}, cfg)

	cfg, err = verify.DecodeConfig(strings.NewReader("expected_k: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ExpectedK)
	require.ErrorIs(t, cfg.Validate(), verify.ErrInvalidConfig)

	_, err = verify.DecodeConfig(strings.NewReader("expected_k: [1]\n"))
	require.ErrorIs(t, err, verify.ErrInvalidConfig)
}
