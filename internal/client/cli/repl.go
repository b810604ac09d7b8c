package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/client/client"
	"github.com/dmitrijs2005/timeline/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Refs(ctx context.Context) error
	AddRef(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Timeline(ctx context.Context) error
	Range(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Map(ctx context.Context, args []string) error
	Overlay(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
}

const helpText = `Available commands:
  add                      add an event
  edit <id|name>           edit an event
  show <id|name>           show event details and select it
  (l)ist                   list events
  refs                     list standalone reference tags
  addref <name>            create a reference tag
  select [<id|name>]       highlight an event and its references, no argument clears
  (t)imeline               draw the timeline
  range <from> <to>        change the visible years
  watch on|off             redraw the timeline on every update
  map [<id|name>]          list map markers, or show the overlay of one event
  overlay <id|name> <img>  upload a map image for an event
  import <file.yaml>       create events from a YAML file
  export <file>            write the timeline as .yaml, .svg or .png
  reload                   retry the live subscription
  exit | quit              leave the program`

// runREPL starts a simple read–eval–print loop for the timeline CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when the user types
// "exit" or "quit", or when ctx is done.
//
// Handler errors are printed and logged by the caller's logger; they never
// end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("tl %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "add":
			cmdErr = a.AddEvent(ctx)

		case "edit":
			cmdErr = a.EditEvent(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "refs":
			cmdErr = a.Refs(ctx)

		case "addref":
			cmdErr = a.AddRef(ctx, args)

		case "select":
			cmdErr = a.Select(ctx, args)

		case "t", "timeline":
			cmdErr = a.Timeline(ctx)

		case "range":
			cmdErr = a.Range(ctx, args)

		case "watch":
			cmdErr = a.Watch(ctx, args)

		case "map":
			cmdErr = a.Map(ctx, args)

		case "overlay":
			cmdErr = a.Overlay(ctx, args)

		case "import":
			cmdErr = a.Import(ctx, args)

		case "export":
			cmdErr = a.Export(ctx, args)

		case "reload":
			cmdErr = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}

// errUsage is returned by handlers called with the wrong arguments.
type errUsage string

func (e errUsage) Error() string { return "Usage: " + string(e) }

func describeError(err error) string {
	var usage errUsage
	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, common.ErrorValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "Already exists: " + err.Error()
	case errors.Is(err, context.Canceled):
		return "Canceled"
	}
	return "Error: " + err.Error()
}
