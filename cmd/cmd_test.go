package cmd_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/konig-graphs/konig/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. cmd's subcommands write their result with
// fmt.Print/Println directly to stdout, mirroring graph.ToString()'s own
// plain-text contract, so tests observe output the same way a shell
// pipeline would.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestBuildCycleCommand(t *testing.T) {
	out := captureStdout(t, func() {
		os.Args = []string{"konig", "build", "--shape=cycle", "--n=5", "--seed=1"}
		cmd.Execute("test")
	})
	lines := bytes.Split(bytes.TrimRight([]byte(out), "\n"), []byte("\n"))
	assert.Equal(t, "5 5", string(lines[0]))
}

func TestSampleCommand(t *testing.T) {
	out := captureStdout(t, func() {
		os.Args = []string{"konig", "sample", "--k=3", "--lo=0", "--hi=10", "--excl=2,5", "--seed=1"}
		cmd.Execute("test")
	})
	assert.NotEmpty(t, out)
}

func TestDSUCommand(t *testing.T) {
	out := captureStdout(t, func() {
		os.Args = []string{"konig", "dsu", "--n=5", "--merge=0-1,1-2"}
		cmd.Execute("test")
	})
	assert.Contains(t, out, "0 1 2")
}
