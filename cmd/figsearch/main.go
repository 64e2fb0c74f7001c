// Command figsearch searches a binary bitmap file for its longest horizontal
// line, longest vertical line and largest bordered square.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// CLI defines the command-line interface for figsearch.
type CLI struct {
	// Global flags
	Display  bool   `help:"Print the bitmap with the located shape marked before the result." env:"FIGSEARCH_DISPLAY"`
	LogLevel string `name:"log-level" help:"Log level (info or debug)." default:"info" env:"FIGSEARCH_LOG_LEVEL"`

	Test   TestCmd   `cmd:"" help:"Check that FILE is a valid bitmap."`
	HLine  HLineCmd  `cmd:"" name:"hline" help:"Find the first longest horizontal line."`
	VLine  VLineCmd  `cmd:"" name:"vline" help:"Find the first longest vertical line."`
	Square SquareCmd `cmd:"" help:"Find the first largest square with a fully set border."`

	Render  RenderCmd  `cmd:"" help:"Render FILE as PNG, optionally highlighting a search result."`
	View    ViewCmd    `cmd:"" help:"Show FILE in an interactive terminal view."`
	Import  ImportCmd  `cmd:"" help:"Convert a raster image into a bitmap file."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// ArgumentError reports an invalid command line.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return "invalid arguments: " + e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// runContext is bound into every command's Run method.
type runContext struct {
	stdout  io.Writer
	stderr  io.Writer
	display bool
	debug   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. Every
// failure is reported as a bare "Invalid" line on stderr; the cause is logged
// when debug logging is enabled.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("figsearch"),
		kong.Description("Search a binary bitmap for lines and squares."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		log.Printf("failed to build command line parser: %v", err)
		fmt.Fprintln(stderr, "Invalid")
		return 1
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help was handled by kong
		return exitCode
	}
	if err != nil {
		return fail(stderr, &ArgumentError{Err: err}, os.Getenv("FIGSEARCH_LOG_LEVEL") == "debug")
	}

	rc := &runContext{
		stdout:  stdout,
		stderr:  stderr,
		display: cli.Display,
		debug:   cli.LogLevel == "debug",
	}
	if rc.debug {
		log.Printf("figsearch %s: %s", Version, ctx.Command())
	}

	if err := ctx.Run(rc); err != nil {
		return fail(stderr, err, rc.debug)
	}
	return 0
}

func fail(stderr io.Writer, err error, debug bool) int {
	if debug {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			log.Printf("argument error: %v", argErr.Err)
		} else {
			log.Printf("error: %v", err)
		}
	}
	fmt.Fprintln(stderr, "Invalid")
	return 1
}
