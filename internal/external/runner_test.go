package external

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It is re-executed as a child process
// by the runner tests and behaves according to its arguments.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("RENDEZVOUS_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "no helper command")
		os.Exit(2)
	}

	switch args[1] {
	case "echo":
		fmt.Println(strings.Join(args[2:], " "))
		os.Exit(0)
	case "fail":
		fmt.Print("partial")
		fmt.Fprintln(os.Stderr, "  something broke  ")
		os.Exit(3)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
	os.Exit(2)
}

func helperRunner() *ExecRunner {
	return &ExecRunner{Env: []string{"RENDEZVOUS_HELPER_PROCESS=1"}}
}

func helperArgs(args ...string) []string {
	return append([]string{"-test.run=TestHelperProcess", "--"}, args...)
}

func TestExecRunner_Success(t *testing.T) {
	out, err := helperRunner().Run(context.Background(), os.Args[0], helperArgs("echo", "hello", "world")...)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(out))
}

func TestExecRunner_NonzeroExit(t *testing.T) {
	out, err := helperRunner().Run(context.Background(), os.Args[0], helperArgs("fail")...)
	require.Error(t, err)
	assert.Equal(t, "partial", string(out))

	var cerr *CommandError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 3, cerr.ExitCode)
	assert.Equal(t, "something broke", cerr.Stderr)
	assert.Contains(t, cerr.Error(), "exited with status 3")
	assert.Contains(t, cerr.Error(), "something broke")

	assert.Equal(t, ReasonExitStatus, Failure[string](err).Reason())
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), "rendezvous-definitely-missing-binary")
	require.Error(t, err)

	var cerr *CommandError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, -1, cerr.ExitCode)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Equal(t, ReasonNotFound, Failure[string](err).Reason())
}

func TestExecRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := helperRunner().Run(ctx, os.Args[0], helperArgs("sleep")...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, ReasonCanceled, Failure[string](err).Reason())
}

func TestRunnerFunc(t *testing.T) {
	var gotName string
	var gotArgs []string
	r := RunnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte("ok"), nil
	})

	out, err := r.Run(context.Background(), "gog", "calendar", "events")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
	assert.Equal(t, "gog", gotName)
	assert.Equal(t, []string{"calendar", "events"}, gotArgs)
}

func TestCommandError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *CommandError
		expected string
	}{
		{
			name:     "exit status with stderr",
			err:      &CommandError{Name: "goplaces", ExitCode: 1, Stderr: "quota exceeded"},
			expected: "command goplaces exited with status 1: quota exceeded",
		},
		{
			name:     "start failure",
			err:      &CommandError{Name: "gog", ExitCode: -1, Err: errors.New("no such file")},
			expected: "command gog failed: no such file",
		},
		{
			name:     "bare",
			err:      &CommandError{Name: "gog", ExitCode: 2},
			expected: "command gog exited with status 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
