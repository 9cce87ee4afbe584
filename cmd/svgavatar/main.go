package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/esimov/svgavatar"
	"github.com/esimov/svgavatar/utils"
	"github.com/google/uuid"
)

const HelpBanner = `
┌─┐┬  ┬┌─┐┌─┐┬  ┬┌─┐┌┬┐┌─┐┬─┐
└─┐└┐┌┘│ ┬├─┤└┐┌┘├─┤ │ ├─┤├┬┘
└─┘ └┘ └─┘┴ ┴ └┘ ┴ ┴ ┴ ┴ ┴┴└─

Deterministic SVG avatars generated from identifiers.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	identifier  = flag.String("id", "foo", "Identifier")
	random      = flag.Bool("random", false, "Use a random UUID as identifier")
	rings       = flag.String("rings", "3", "Number of rings (1-4)")
	stroke      = flag.String("stroke", svgavatar.DefaultStrokeColor, "Stroke color")
	destination = flag.String("out", "", "Destination, .svg or .ivg (defaults to <id>.svg, - for stdout)")
	manifest    = flag.String("manifest", "", "YAML manifest describing a batch of avatars")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of avatars generated concurrently")
)

func main() {
	log.SetFlags(0)
	// Every status message goes to stderr, stdout may carry the avatar.
	utils.SetColorOutput(os.Stderr)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	op := &Ops{
		PipeName: pipeName,
		Workers:  *workers,
	}
	now := time.Now()

	if len(*manifest) > 0 {
		m, err := LoadManifest(*manifest)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the manifest: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		failed, err := op.Execute(m)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to generate the avatars: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		printExecTime(now)
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	r, err := svgavatar.ParseRings(*rings)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid ring count: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	id := *identifier
	if *random {
		id = uuid.NewString()
	}
	out := *destination
	if len(out) == 0 {
		out = id + ".svg"
	}
	if ext := filepath.Ext(out); !isValidExtension(ext, validExtensions) && out != pipeName {
		log.Fatal(utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
	}

	err = op.process(Entry{
		ID:     id,
		Rings:  r,
		Stroke: *stroke,
		Out:    out,
	})
	op.printOpStatus(out, err)
	if err != nil {
		os.Exit(1)
	}
	if out != pipeName {
		printExecTime(now)
	}
}

// printExecTime prints the time elapsed since the generation started.
func printExecTime(start time.Time) {
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(start)), utils.SuccessMessage),
	)
}
