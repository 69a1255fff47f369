package cmd

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// mu serialises TestExecute, as it swaps the process wide os.Stdout and os.Stderr.
var mu sync.Mutex

// Output is everything a command wrote while executed by TestExecute.
type Output struct {
	Stdout string
	Stderr string
}

// String returns stdout followed by stderr.
func (o Output) String() string {
	return o.Stdout + o.Stderr
}

// TestExecute executes a cobra command with args and returns its output and error.
// Output written directly to os.Stdout and os.Stderr is captured as well.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (Output, error) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	stdout, stderr := new(syncBuffer), new(syncBuffer)
	command.SetOut(stdout)
	command.SetErr(stderr)

	restore := captureOS(t, stdout, stderr)

	command.SetArgs(args)
	_, cmdErr := command.ExecuteC()

	restore()

	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, cmdErr
}

// captureOS redirects os.Stdout and os.Stderr into the given buffers,
// until the returned func is called.
func captureOS(t *testing.T, stdout io.Writer, stderr io.Writer) func() {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr

	rOut, wOut, err := os.Pipe()
	require.NoError(t, err)
	rErr, wErr, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = wOut, wErr

	// drain concurrently, so a command writing a lot does not block on a full pipe
	var wg sync.WaitGroup

	wg.Add(2) //nolint:mnd // stdout and stderr

	go func() { defer wg.Done(); _, _ = io.Copy(stdout, rOut) }()
	go func() { defer wg.Done(); _, _ = io.Copy(stderr, rErr) }()

	return func() {
		_ = wOut.Close()
		_ = wErr.Close()

		wg.Wait()

		os.Stdout, os.Stderr = origOut, origErr
	}
}

// syncBuffer is an io.Writer safe for concurrent use.
type syncBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}
