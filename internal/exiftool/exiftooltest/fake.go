// Package exiftooltest provides a scripted exiftool.Runner for tests.
package exiftooltest

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/vvka-141/xmptag/internal/exiftool"
)

// DefaultVersion is what the fake prints for "-ver".
const DefaultVersion = "12.76"

// Call records one invocation.
type Call struct {
	Name string
	Args []string
}

type rule struct {
	arg    string
	result exiftool.Result
	err    error
}

// FakeRunner answers invocations from a list of rules. The first rule whose
// argument appears in the call wins; unmatched calls exit 0 with no output.
// Safe for concurrent use.
type FakeRunner struct {
	mu      sync.Mutex
	calls   []Call
	rules   []rule
	missing bool
}

// New creates a FakeRunner that behaves like an installed ExifTool.
func New() *FakeRunner {
	return &FakeRunner{}
}

// Missing makes every invocation fail as if the binary did not exist.
func (f *FakeRunner) Missing() *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing = true
	return f
}

// On answers calls containing arg with res.
func (f *FakeRunner) On(arg string, res exiftool.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, rule{arg: arg, result: res})
	return f
}

// OnStdout answers calls containing arg with a successful exit and stdout.
func (f *FakeRunner) OnStdout(arg, stdout string) *FakeRunner {
	return f.On(arg, exiftool.Result{Stdout: stdout})
}

// Fail makes calls containing arg exit with code 1 and stderr.
func (f *FakeRunner) Fail(arg, stderr string) *FakeRunner {
	return f.On(arg, exiftool.Result{Stderr: stderr, ExitCode: 1})
}

// Run implements exiftool.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (exiftool.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Name: name, Args: slices.Clone(args)})

	if f.missing {
		return exiftool.Result{}, errors.New("executable file not found in $PATH")
	}
	for _, r := range f.rules {
		if slices.Contains(args, r.arg) {
			return r.result, r.err
		}
	}
	if slices.Equal(args, []string{"-ver"}) {
		return exiftool.Result{Stdout: DefaultVersion + "\n"}, nil
	}
	return exiftool.Result{}, nil
}

// Calls returns a copy of all recorded invocations.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// WriteCalls returns the invocations that carried -overwrite_original.
func (f *FakeRunner) WriteCalls() []Call {
	var out []Call
	for _, c := range f.Calls() {
		if slices.Contains(c.Args, exiftool.OverwriteOriginal) {
			out = append(out, c)
		}
	}
	return out
}

var _ exiftool.Runner = (*FakeRunner)(nil)
