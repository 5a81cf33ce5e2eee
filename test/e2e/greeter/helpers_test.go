//go:build e2e

package greeter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/atlanticdynamic/greeter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles cmd/greeter into a temp directory and returns its path
func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "greeter")
	cmd := exec.Command("go", "build", "-o", bin, "../../../cmd/greeter")
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run(), "Failed to build greeter binary")
	return bin
}

// process is a running greeter binary with captured output streams
type process struct {
	cmd    *exec.Cmd
	stdout *testutil.ThreadSafeBuffer
	stderr *testutil.ThreadSafeBuffer
}

// startProcess runs bin with the given PORT value; an empty port leaves PORT unset
func startProcess(t *testing.T, ctx context.Context, bin string, port string) *process {
	t.Helper()
	p := &process{
		stdout: &testutil.ThreadSafeBuffer{},
		stderr: &testutil.ThreadSafeBuffer{},
	}

	p.cmd = exec.CommandContext(ctx, bin)
	p.cmd.Env = []string{"PATH=" + os.Getenv("PATH")}
	if port != "" {
		p.cmd.Env = append(p.cmd.Env, "PORT="+port)
	}
	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	p.cmd.Cancel = func() error {
		return p.cmd.Process.Signal(os.Interrupt)
	}
	p.cmd.WaitDelay = 5 * time.Second

	require.NoError(t, p.cmd.Start(), "Failed to start greeter")
	t.Cleanup(func() {
		if p.cmd.ProcessState == nil {
			_ = p.cmd.Process.Kill()
			_ = p.cmd.Wait()
		}
		t.Logf("stdout:\n%s\nstderr:\n%s", p.stdout, p.stderr)
	})
	return p
}

// waitForStartup waits for stdout to hold exactly the startup line for port
func waitForStartup(t *testing.T, p *process, port int) bool {
	t.Helper()
	want := "Server is running on port " + strconv.Itoa(port) + "\n"
	return assert.Eventually(t, func() bool {
		return p.stdout.String() == want
	}, 10*time.Second, 50*time.Millisecond, "startup line %q never written", want)
}

// getRoot requests / on port and returns the status code and body
func getRoot(t *testing.T, port int) (int, string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	defer func() { assert.NoError(t, resp.Body.Close()) }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}
