package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-droid/config"
	"github.com/beka-birhanu/vinom-droid/game/droid"
	"github.com/beka-birhanu/vinom-droid/game/maze"
	logger "github.com/beka-birhanu/vinom-droid/log"
)

var errMissingMaze = errors.New("missing -maze")

// runCommand explores one maze file and prints the droid's progress to out.
func runCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(out)
	mazePath := fs.String("maze", "", "path to a maze layout file")
	name := fs.String("name", "R2D2", "droid name")
	quiet := fs.Bool("quiet", false, "only print the final result")
	level := fs.String("log-level", "info", "droid log level (debug, info, warning, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mazePath == "" {
		return errMissingMaze
	}

	m, err := maze.ParseFile(*mazePath)
	if err != nil {
		return err
	}

	droidLogger, err := logger.New(*name, config.ColorYellow, os.Stderr)
	if err != nil {
		return err
	}
	if err := droidLogger.SetLevel(*level); err != nil {
		return err
	}

	fmt.Fprint(out, m)
	fmt.Fprintln(out)

	options := []droid.Option{droid.WithLogger(droidLogger)}
	if !*quiet {
		options = append(options, droid.WithObserver(func(step int, lm *droid.LocalMap) {
			fmt.Fprintf(out, "Step: %d\n", step)
			_ = droid.RenderTo(out, lm)
		}))
	}

	d := droid.New(*name, options...)
	steps, err := d.Run(m)
	if err != nil {
		return fmt.Errorf("%s stopped after %d steps: %w", *name, steps, err)
	}

	fmt.Fprintf(out, "Maze Complete -- Steps Taken: %d\n\n", steps)
	fmt.Fprint(out, m)
	return nil
}
