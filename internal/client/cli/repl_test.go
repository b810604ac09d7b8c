package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/timeline/internal/client/client"
	"github.com/dmitrijs2005/timeline/internal/common"
)

type fakeExec struct {
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) AddEvent(context.Context) error                { return f.record("add", nil) }
func (f *fakeExec) EditEvent(_ context.Context, a []string) error { return f.record("edit", a) }
func (f *fakeExec) Show(_ context.Context, a []string) error      { return f.record("show", a) }
func (f *fakeExec) List(context.Context) error                    { return f.record("list", nil) }
func (f *fakeExec) Refs(context.Context) error                    { return f.record("refs", nil) }
func (f *fakeExec) AddRef(_ context.Context, a []string) error    { return f.record("addref", a) }
func (f *fakeExec) Select(_ context.Context, a []string) error    { return f.record("select", a) }
func (f *fakeExec) Timeline(context.Context) error                { return f.record("timeline", nil) }
func (f *fakeExec) Range(_ context.Context, a []string) error     { return f.record("range", a) }
func (f *fakeExec) Watch(_ context.Context, a []string) error     { return f.record("watch", a) }
func (f *fakeExec) Map(_ context.Context, a []string) error       { return f.record("map", a) }
func (f *fakeExec) Overlay(_ context.Context, a []string) error   { return f.record("overlay", a) }
func (f *fakeExec) Import(_ context.Context, a []string) error    { return f.record("import", a) }
func (f *fakeExec) Export(_ context.Context, a []string) error    { return f.record("export", a) }
func (f *fakeExec) Reload(context.Context) error                  { return f.record("reload", nil) }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	printed := capturePrints(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"add",
		"edit Moses",
		"show 123",
		"l",
		"refs",
		"addref Book of Daniel",
		"select A",
		"t",
		"range -100 100",
		"watch on",
		"map",
		"overlay A map.png",
		"import in.yaml",
		"export out.svg",
		"reload",
		"",
		"foobar",
		"exit",
		"list",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input)

	assert.Equal(t, []string{
		"add", "edit", "show", "list", "refs", "addref", "select", "timeline",
		"range", "watch", "map", "overlay", "import", "export", "reload",
	}, exec.calls)
	assert.Equal(t, []string{"Book", "of", "Daniel"}, exec.args[5])
	assert.Equal(t, []string{"-100", "100"}, exec.args[8])
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "Bye!")
	assert.Contains(t, *printed, "tl status >")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	printed := capturePrints(t)

	exec := &fakeExec{err: fmt.Errorf("event x: %w", common.ErrorNotFound)}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("show x\nlist")))

	assert.Equal(t, []string{"show", "list"}, exec.calls)
	assert.Contains(t, *printed, "Not found: event x: not found")
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	capturePrints(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\n")))

	assert.Empty(t, exec.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errUsage("show <id>"), "Usage: show <id>"},
		{fmt.Errorf("name: %w", common.ErrorValidation), "Invalid input: name: validation error"},
		{client.ErrUnavailable, "Server unavailable, try again later"},
		{common.ErrorAlreadyExists, "Already exists: already exists"},
		{context.Canceled, "Canceled"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
