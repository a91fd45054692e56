package cmd

import (
	"github.com/spf13/cobra"
)

// NewRoot builds the top-level `toolbar` command.
//
// We keep errors/usage silent and let our main() decide how to print ExitResult vs generic errors.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolbar",
		Short:         "test runner toolbar: selector playground, studio and viewport controls",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringP("format", "F", "", "output format: json|yaml|text")
	root.PersistentFlags().StringP("config", "c", "", "config file (default: toolbar.yaml in the working directory)")

	root.AddGroup(
		&cobra.Group{ID: "explore", Title: "interactive"},
		&cobra.Group{ID: "urls", Title: "url resolution"},
		&cobra.Group{ID: "config", Title: "configuration"},
	)

	runCmd := newRunCmd()
	runCmd.GroupID = "explore"

	resolveCmd := newResolveCmd()
	resolveCmd.GroupID = "urls"

	originCmd := newOriginCmd()
	originCmd.GroupID = "urls"

	configCmd := newConfigCmd()
	configCmd.GroupID = "config"

	root.AddCommand(
		runCmd,
		resolveCmd,
		originCmd,
		configCmd,
	)

	return root
}
