package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/config"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// invocation is one parsed command line.
type invocation struct {
	format    apetag.TagFormat
	path      string
	tagArgs   []string
	tagFile   string
	backup    string
	logLevel  string
	logFormat string
	sync      bool
	verify    bool
}

// parseArgs reads flags and positional arguments. Flags override values
// from cfg. It reports shouldExit when help or version output was printed.
func parseArgs(args []string, cfg *config.Config, output io.Writer) (*invocation, bool, error) {
	flagSet := flag.NewFlagSet("apetag", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { printUsage(flagSet, output) }

	tagFile := flagSet.String("tags", "", "Read additional tag items from an HCL `file` of key = value lines.")
	backup := flagSet.String("backup", "", "Copy the file to file+`suffix` before appending.")
	logLevel := flagSet.String("log-level", cfg.LogLevel, "Logging `level`. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", cfg.LogFormat, "Log output `format`. Options: 'text' or 'json'.")
	syncFlag := flagSet.Bool("sync", cfg.Sync, "Flush the file to disk after writing.")
	verify := flagSet.Bool("verify", cfg.Verify, "Re-read the appended block and compare it with what was written.")
	version := flagSet.Bool("version", false, "Print version information and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *version {
		info := apetag.GetVersionInfo()
		fmt.Fprintf(output, "apetag %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return nil, true, nil
	}

	if flagSet.NArg() < 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing <type> or <file> argument"}
	}

	format, err := apetag.ParseTagFormat(flagSet.Arg(0))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfgOverride := config.Config{
		LogLevel:  strings.ToLower(*logLevel),
		LogFormat: strings.ToLower(*logFormat),
	}
	if err := cfgOverride.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &invocation{
		format:    format,
		path:      flagSet.Arg(1),
		tagArgs:   flagSet.Args()[2:],
		tagFile:   *tagFile,
		backup:    *backup,
		logLevel:  cfgOverride.LogLevel,
		logFormat: cfgOverride.LogFormat,
		sync:      *syncFlag,
		verify:    *verify,
	}, false, nil
}

func printUsage(flagSet *flag.FlagSet, output io.Writer) {
	fmt.Fprint(output, `
apetag - append an APEv2 tag block to a media file.

Usage:
  apetag [options] <type> <file> [<key=value> ...]

Arguments:
  type       technical type of the tag block to add
  file       existing media file to append the tag to
  key=value  tag item; keys are matched case-insensitively

Supported tag types:
`)
	fmt.Fprintf(output, "  %-6s %s\n", apetag.FormatAPEv2, apetag.FormatAPEv2.Description())
	fmt.Fprint(output, "\nSupported keys:\n")
	for spec := range apetag.Keys() {
		fmt.Fprintf(output, "  %-16s %s\n", spec.Name, kindLabel(spec.Kind))
	}
	fmt.Fprint(output, `
Example:
  apetag APE2 "My Folder/File.mp3" "Artist=John Doe" Track=7 Year=2021-06-01

Options:
`)
	flagSet.PrintDefaults()
}

func kindLabel(k apetag.Kind) string {
	switch k {
	case apetag.KindNumber:
		return "<number>"
	case apetag.KindDate:
		return "<ISO-8601 date>"
	default:
		return "<string>"
	}
}
