package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcombine/internal/cli"
	"github.com/benoitkugler/svgcombine/svgdoc"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

func noOpen(string) error { return nil }

func TestRootCmd(t *testing.T) {
	t.Parallel()

	tc := cli.NewRootCmd("test_root", "", "", noOpen)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	outFile := filepath.Join(t.TempDir(), "result.svg")
	tc.SetArgs([]string{
		"--input", filepath.Join(testDataDir, "four.svg"),
		"--output", outFile,
	})
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	require.NoError(t, err)
	assert.Empty(t, stderr.String(), "stderr should be empty")
	assert.Empty(t, stdout.String(), "stdout should be empty")

	doc, err := svgdoc.ReadDocument(outFile, svgdoc.StrictErrorMode, svgdoc.DocumentOrder)
	require.NoError(t, err)
	require.Len(t, doc.Elements, 1)
	assert.Len(t, doc.Paths()[0], 5)
	assert.Equal(t, "#000000", doc.Attributes()[0]["fill"])
}

func TestRootCmdSelectAndOpen(t *testing.T) {
	t.Parallel()

	var opened []string
	tc := cli.NewRootCmd("test_root", "", "", func(path string) error {
		opened = append(opened, path)
		return nil
	})

	dir := t.TempDir()
	outFile := filepath.Join(dir, "result.svg")
	pngFile := filepath.Join(dir, "result.png")
	tc.SetArgs([]string{
		"-i", filepath.Join(testDataDir, "four.svg"),
		"-o", outFile,
		"-s", "2,0,2",
		"--png", pngFile,
		"--open",
	})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	require.NoError(t, tc.Execute())
	assert.Equal(t, []string{outFile}, opened)
	assert.FileExists(t, pngFile)

	doc, err := svgdoc.ReadDocument(outFile, svgdoc.StrictErrorMode, svgdoc.DocumentOrder)
	require.NoError(t, err)
	assert.Len(t, doc.Paths()[0], 1+2+1)
}

func TestRootCmdConfig(t *testing.T) {
	t.Parallel()

	tc := cli.NewRootCmd("test_root", "", "", noOpen)
	outFile := filepath.Join(t.TempDir(), "result.svg")
	tc.SetArgs([]string{
		"--config", filepath.Join(testDataDir, "config.yaml"),
		"-i", filepath.Join(testDataDir, "four.svg"),
		"-o", outFile,
	})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	require.NoError(t, tc.Execute())

	doc, err := svgdoc.ReadDocument(outFile, svgdoc.StrictErrorMode, svgdoc.DocumentOrder)
	require.NoError(t, err)
	assert.Len(t, doc.Paths()[0], 2+1)
	assert.Equal(t, "#ff0000", doc.Attributes()[0]["fill"])
}

func TestRootCmdErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		err  error
	}{
		"too few paths": {
			args: []string{"-i", filepath.Join(testDataDir, "three.svg")},
		},
		"missing input": {
			args: []string{"-i", filepath.Join(testDataDir, "missing.svg")},
		},
		"invalid order": {
			args: []string{"-i", filepath.Join(testDataDir, "four.svg"), "--order", "random"},
		},
		"invalid log level": {
			args: []string{"-i", filepath.Join(testDataDir, "four.svg"), "--log_level", "loud"},
			err:  cli.ErrLogHandlerFailed,
		},
		"unexpected argument": {
			args: []string{"four.svg"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			cmd := cli.NewRootCmd("test_root", "", "", noOpen)
			cmd.SetArgs(append(tc.args, "-o", filepath.Join(dir, "result.svg")))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no output should be written")
		})
	}
}

func TestSplitCmd(t *testing.T) {
	t.Parallel()

	tc := cli.NewRootCmd("test_split", "", "", noOpen)
	stdout := &bytes.Buffer{}
	dir := t.TempDir()
	tc.SetArgs([]string{
		"split",
		"-i", filepath.Join(testDataDir, "four.svg"),
		"--pattern", filepath.Join(dir, "path_%d.svg"),
	})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	require.NoError(t, tc.Execute())
	for i := range 4 {
		assert.FileExists(t, filepath.Join(dir, "path_"+string(rune('0'+i))+".svg"))
	}
	assert.Contains(t, stdout.String(), filepath.Join(dir, "path_3.svg"))
}

func TestListCmd(t *testing.T) {
	t.Parallel()

	tc := cli.NewRootCmd("test_list", "", "", noOpen)
	stdout := &bytes.Buffer{}
	tc.SetArgs([]string{"list", "-i", filepath.Join(testDataDir, "four.svg")})
	tc.SetOut(stdout)
	tc.SetErr(&bytes.Buffer{})

	require.NoError(t, tc.Execute())
	out := stdout.String()
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "p3")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "30,30 10x10")
}
