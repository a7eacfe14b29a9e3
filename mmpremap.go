// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yookoala/realpath"

	"github.com/B0ney/mmp-remap/mmp"
	"github.com/B0ney/mmp-remap/remap"
)

const (
	application = "mmp-remap"
	copyright   = "Copyright (C) 2023-2026 B0ney"
)

var version = "<tip>"

const usage = `Re-map external resources (samples, soundfonts, plugin binaries) referenced
by an LMMS project file. Both plain (.mmp) and compressed (.mmpz) projects are
read transparently; the output form follows the output file's extension.

Commands:

  list                          List resources and their reference counts.
  match <MATCH> <REPLACE>       Re-map resources by substring matching.
  re <PATTERN> <REPLACE>        Re-map resources by regular expression.
  idx <INDEX> <REPLACE>         Re-map the single resource at INDEX.
  alias                         Shorten absolute resource paths to lmmsrc aliases.

A replacement must keep the resource's file type: a sample can only be
re-mapped to another audio file, a soundfont to a soundfont, a plugin binary
to a plugin binary.

All flags that do not require an argument are booleans. Without argument they
take the true value. To negate them, use the form '-flag=false'.
`

// suggestionThreshold is the minimum string relation for a "did you mean"
// hint to be worth printing.
const suggestionThreshold = 0.5

var display *Slogger

// Set from -y: skip the interactive overwrite confirmation.
var alwaysOverwrite bool

func usageFunc() {
	fmt.Fprintf(os.Stderr, "Usage: %v [OPTIONS] PROJECT COMMAND [ARGS]\n\n%s\nOptions:\n", os.Args[0], usage)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usageFunc

	var flagColor = flag.Bool("color", false, "Color output.")
	var flagConfig = flag.String("c", "", "Override the lmmsrc path.")
	var flagYes = flag.Bool("y", false, "Overwrite the output file without confirmation.")
	var flagVersion = flag.Bool("v", false, "Print version and exit.")
	flag.Parse()

	if *flagVersion {
		fmt.Println(application, version)
		fmt.Println(copyright)
		return
	}

	display = newSlogger(*flagColor)
	alwaysOverwrite = *flagYes

	if flag.Arg(0) == "" {
		flag.Usage()
		os.Exit(1)
	}

	path, err := realpath.Realpath(flag.Arg(0))
	if err != nil {
		display.Error.Printf("path %q does not exist", flag.Arg(0))
		os.Exit(1)
	}

	rc := loadConfig(*flagConfig)

	data, err := os.ReadFile(path)
	if err != nil {
		display.Error.Print(err)
		os.Exit(1)
	}
	doc, err := mmp.Decode(data)
	if err != nil {
		display.Error.Print("not a valid LMMS project file")
		os.Exit(1)
	}

	index := remap.Build(doc)

	command, args := splitCommand(flag.Args())

	switch command {
	case "":
		display.Output.Print("nothing to do...")
	case "list":
		runList(index, rc, args)
	case "match":
		runMatch(doc, index, args)
	case "re":
		runRegex(doc, index, args)
	case "idx":
		runIdx(doc, index, args)
	case "alias":
		runAlias(doc, index, rc, args)
	default:
		display.Error.Printf("unknown command %q", command)
		flag.Usage()
		os.Exit(1)
	}
}

// splitCommand separates the positional arguments (project path, command,
// command arguments) once the project path is known to be present. A bare
// project path yields an empty command.
func splitCommand(argv []string) (command string, args []string) {
	if len(argv) < 2 {
		return "", nil
	}
	return argv[1], argv[2:]
}

// loadConfig loads the lmmsrc alias table. A missing default lmmsrc only
// degrades alias expansion; a missing user-provided override is fatal.
func loadConfig(override string) *lmmsRC {
	path := override
	if path == "" {
		var err error
		path, err = defaultLmmsrcPath()
		if err != nil {
			display.Warning.Print("cannot locate home directory, alias expansion disabled")
			return nil
		}
	} else {
		display.Info.Print("Using user-provided lmmsrc override")
	}

	rc, err := loadLmmsrc(path)
	if err != nil {
		if override != "" {
			display.Error.Printf("cannot read lmmsrc override: %v", err)
			os.Exit(1)
		}
		display.Warning.Print("no usable .lmmsrc.xml found, alias expansion disabled")
		return nil
	}
	return rc
}

func runList(index *remap.Index, rc *lmmsRC, args []string) {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	verbose := flags.Bool("v", false, "Also list the referencing elements.")
	_ = flags.Parse(args)

	display.Info.Print("Listing all resources and their references\n")

	for i, resource := range index.Keys() {
		display.Output.Printf("[%d] %v", i+1, resource)

		refs := index.References(resource)
		plural := ""
		if len(refs) > 1 {
			plural = "S"
		}
		display.Output.Printf("        %d - REFERENCE%s", len(refs), plural)

		if *verbose {
			for _, ref := range refs {
				display.Output.Printf("        * %v", ref.Name())
			}
			if rc != nil {
				if expanded, ok := rc.ExpandAlias(resource); ok {
					display.Output.Printf("        -> %v", expanded)
				}
			}
		}
		display.Output.Print("")
	}
}

func runMatch(doc *mmp.Document, index *remap.Index, args []string) {
	needle, replacement, out := remapArgs("match", "MATCH", args)

	report := remap.ByMatch(index, needle, replacement)
	reportRenames(report)

	if report.Changed() == 0 {
		if best, rel := closestResource(index.Keys(), needle); rel >= suggestionThreshold && !strings.Contains(best, needle) {
			display.Hint.Printf("no resource matches %q, closest is %q", needle, best)
		}
		nothingChanged()
		return
	}
	save(doc, out)
}

func runRegex(doc *mmp.Document, index *remap.Index, args []string) {
	pattern, replacement, out := remapArgs("re", "PATTERN", args)

	report, err := remap.ByPattern(index, pattern, replacement)
	if err != nil {
		display.Error.Print(err)
		os.Exit(1)
	}
	reportRenames(report)

	if report.Changed() == 0 {
		nothingChanged()
		return
	}
	save(doc, out)
}

func runIdx(doc *mmp.Document, index *remap.Index, args []string) {
	ordinalArg, replacement, out := remapArgs("idx", "INDEX", args)

	ordinal, err := strconv.Atoi(ordinalArg)
	if err != nil {
		display.Error.Printf("index %q is not a number", ordinalArg)
		os.Exit(1)
	}
	if ordinal == 0 {
		display.Info.Print("Changing index '0' to '1'")
	}

	rename, err := remap.ByIndex(index, ordinal, replacement)
	if err != nil {
		display.Error.Print(err)
		// An unresolvable index is a usage error; a guard rejection is a
		// clean no-op.
		if errors.Is(err, remap.ErrIndexOutOfRange) {
			os.Exit(1)
		}
		nothingChanged()
		return
	}

	display.Info.Printf("Remapping '%v' -> '%v'...", rename.Old, rename.New)
	save(doc, out)
}

func runAlias(doc *mmp.Document, index *remap.Index, rc *lmmsRC, args []string) {
	flags := flag.NewFlagSet("alias", flag.ExitOnError)
	out := flags.String("o", "", "Specify the output file.")
	_ = flags.Parse(args)
	requireOut("alias", *out)

	if rc == nil {
		display.Error.Print("aliasing requires a readable .lmmsrc.xml")
		os.Exit(1)
	}

	report := remap.ByRewrite(index, rc.ShortenPath)
	reportRenames(report)

	if report.Changed() == 0 {
		nothingChanged()
		return
	}
	save(doc, *out)
}

// remapArgs parses the common "<needle> <replacement> -o OUT" shape of the
// remapping commands.
func remapArgs(command, metavar string, args []string) (needle, replacement, out string) {
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	outFlag := flags.String("o", "", "Specify the output file.")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v PROJECT %v <%v> <REPLACE> -o OUTPUT\n", os.Args[0], command, metavar)
		flags.PrintDefaults()
	}
	_ = flags.Parse(args)

	rest := flags.Args()
	if len(rest) < 2 {
		flags.Usage()
		os.Exit(1)
	}
	needle, replacement = rest[0], rest[1]
	// Accept "-o" after the positional arguments as well; flag parsing
	// stops at the first non-flag argument.
	if len(rest) > 2 {
		_ = flags.Parse(rest[2:])
	}
	requireOut(command, *outFlag)
	return needle, replacement, *outFlag
}

func requireOut(command string, out string) {
	if out == "" {
		display.Error.Printf("%v requires an output file (-o)", command)
		os.Exit(1)
	}
}

func reportRenames(report *remap.Report) {
	for _, r := range report.Renamed {
		display.Info.Printf("Remapping '%v' -> '%v'...", r.Old, r.New)
	}
	for _, rej := range report.Rejected {
		display.Error.Printf("skipping %q: %v", rej.Key, rej.Err)
	}
	if n := report.Changed(); n > 0 {
		display.Section.Printf("%d resource(s) re-mapped", n)
	}
}

func nothingChanged() {
	display.Output.Print("\nNothing was changed...")
}

// save serializes the document to path; a .mmpz extension selects the
// compressed container. Prompts before clobbering unless -y was given.
func save(doc *mmp.Document, path string) {
	if _, err := os.Stat(path); err == nil && !alwaysOverwrite {
		fmt.Fprintf(os.Stderr, "Path already exists, overwrite? y/N: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			display.Info.Print("Aborting")
			return
		}
	}

	kind := mmp.Plain
	if strings.ToLower(Ext(path)) == "mmpz" {
		kind = mmp.Compressed
	}

	data, err := mmp.Encode(doc, kind)
	if err != nil {
		display.Error.Print(err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		display.Error.Print(err)
		os.Exit(1)
	}
	display.Output.Printf("Successfully written to '%v'", path)
}
