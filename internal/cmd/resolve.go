package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/testrunner/toolbar/internal/app"
)

type resolveResult struct {
	Input string `json:"input" yaml:"input"`
	Base  string `json:"base,omitempty" yaml:"base,omitempty"`
	URL   string `json:"url" yaml:"url"`
}

func newResolveCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "resolve [input]",
		Short: "Resolve typed URL text the way the studio URL prompt does",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return app.UsageExit("resolve: input required when stdin is not a terminal")
				}
				var err error
				input, err = promptURLInput(base)
				if err != nil {
					return app.FailExit(err.Error())
				}
			}
			if input == "" {
				return app.UsageExit("resolve: input must not be empty")
			}

			res := resolveResult{Input: input, Base: base, URL: app.ResolveURL(input, base)}
			return app.OutputResult(res, getFormatFlag(cmd), func() string {
				return res.URL
			})
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "origin to resolve relative input against")

	return cmd
}

// promptURLInput asks for the URL text interactively.
func promptURLInput(base string) (string, error) {
	var input string
	desc := "Absolute URL or host/path"
	if base != "" {
		desc = "Resolved against " + base
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Please enter a valid URL to visit.").
				Description(desc).
				Value(&input).
				Placeholder("localhost:8080/app"),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
