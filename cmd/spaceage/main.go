package main

import (
	"fmt"
	"io"
	"os"

	"space-age/internal/spaceage"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var (
		seconds uint64
		planets []string
	)

	flags := pflag.NewFlagSet("spaceage", pflag.ContinueOnError)
	flags.Uint64VarP(&seconds, "seconds", "s", 0, "age in seconds since birth")
	flags.StringSliceVarP(&planets, "planet", "p", nil, "planets to convert for (default all eight)")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if !flags.Changed("seconds") {
		return fmt.Errorf("--seconds is required")
	}

	selected := spaceage.Planets()
	if len(planets) > 0 {
		selected = selected[:0]
		for _, name := range planets {
			p, err := spaceage.ParsePlanet(name)
			if err != nil {
				return err
			}
			selected = append(selected, p)
		}
	}

	for _, p := range selected {
		fmt.Fprintf(out, "%s\t%v\n", p, spaceage.YearsOnPlanet(p, seconds))
	}
	return nil
}
