package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/generate"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
)

func TestRunRoundTrip(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "graph.json")

	var out bytes.Buffer
	require.NoError(t, c.runRoundTrip(context.Background(), &out, 5, 42, path))

	want := generate.New(42).Generate(5).Matrix().String()
	assert.True(t, strings.HasPrefix(out.String(), want+"\n"))
	assert.True(t, strings.HasSuffix(out.String(), successMessage+"\n"))

	g, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Matrix().Size())
}

func TestRunRoundTripSaveFailure(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "missing", "graph.json")

	var out bytes.Buffer
	err := c.runRoundTrip(context.Background(), &out, 3, 1, path)

	assert.True(t, errors.IsIO(err))
	assert.NotContains(t, out.String(), successMessage)
}

func TestRunCommandZeroNodes(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "empty.json")

	require.NoError(t, execute(t, c, "run", "-n", "0", "-o", path))

	g, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Matrix().Size())
}

func TestGenerateCommand(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "g.json")

	require.NoError(t, execute(t, c, "generate", "-n", "6", "--seed", "9", "-o", path))

	g, err := graphio.Load(path)
	require.NoError(t, err)
	assert.True(t, g.Matrix().Equal(generate.New(9).Generate(6).Matrix()))
}

func TestGenerateRejectsNegativeNodes(t *testing.T) {
	c := newTestCLI(t)
	err := execute(t, c, "generate", "-n", "-2", "-o", filepath.Join(t.TempDir(), "g.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestStoreCommands(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "dst.json")

	require.NoError(t, graphio.Save(generate.New(5).Generate(4), src))
	require.NoError(t, execute(t, c, "store", "put", src, "--key", "sample"))

	stored, err := storeDir()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(stored, "sample.json"))

	require.NoError(t, execute(t, c, "store", "get", "sample", "-o", dst))
	want, err := graphio.Load(src)
	require.NoError(t, err)
	got, err := graphio.Load(dst)
	require.NoError(t, err)
	assert.True(t, want.Matrix().Equal(got.Matrix()))

	require.NoError(t, execute(t, c, "store", "list"))
	require.NoError(t, execute(t, c, "store", "delete", "sample"))
	assert.NoFileExists(t, filepath.Join(stored, "sample.json"))

	err = execute(t, c, "store", "get", "sample", "-o", dst)
	assert.True(t, errors.IsNotFound(err))
}

func TestGenerateToStore(t *testing.T) {
	c := newTestCLI(t)

	require.NoError(t, execute(t, c, "generate", "-n", "3", "--store", "--key", "fresh"))

	stored, err := storeDir()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(stored, "fresh.json"))
	assert.NoFileExists(t, "graph.json", "--store alone must not write the default output file")
}

func TestStoreRejectsBadKey(t *testing.T) {
	c := newTestCLI(t)
	err := execute(t, c, "store", "delete", "../etc")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidKey))
}

func TestShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, graphio.Save(generate.New(2).Generate(3), path))

	var raw bytes.Buffer
	require.NoError(t, runShow(context.Background(), &raw, path, true))
	assert.Equal(t, generate.New(2).Generate(3).Matrix().String()+"\n", raw.String())

	var table bytes.Buffer
	require.NoError(t, runShow(context.Background(), &table, path, false))
	assert.Contains(t, table.String(), "Adjacency matrix")
	assert.Contains(t, table.String(), "╭")
}

func TestShowMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runShow(context.Background(), &out, filepath.Join(t.TempDir(), "none.json"), false)
	assert.True(t, errors.IsIO(err))
}

func TestRenderDOT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	require.NoError(t, graphio.Save(generate.New(4).Generate(5), path))

	require.NoError(t, runRender(context.Background(), path, renderOpts{format: formatDOT}))

	data, err := os.ReadFile(filepath.Join(dir, "g.dot"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph G {"))
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("dot"))
	assert.NoError(t, validateFormat("svg"))
	assert.True(t, errors.Is(validateFormat("png"), errors.ErrCodeUnsupported))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, output, format, want string
	}{
		{"graph.json", "", "svg", "graph.svg"},
		{"dir/graph.json", "", "dot", "dir/graph.dot"},
		{"graph", "", "dot", "graph.dot"},
		{"graph.json", "custom.svg", "svg", "custom.svg"},
		{"graph.json", "-", "dot", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.input, tt.output, tt.format))
	}
}

func TestMatrixTable(t *testing.T) {
	m := generate.New(3).Generate(4).Matrix()

	full := matrixTable(m, 0, 4)
	assert.Contains(t, full, "╭")

	part := matrixTable(m, 2, 99)
	assert.Less(t, strings.Count(part, "\n"), strings.Count(full, "\n"))
}
