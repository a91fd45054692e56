package cmd

import (
	"github.com/spf13/cobra"

	"github.com/testrunner/toolbar/internal/app"
)

type originResult struct {
	Page       string `json:"page" yaml:"page"`
	Port       int    `json:"port" yaml:"port"`
	BaseOrigin string `json:"baseOrigin" yaml:"baseOrigin"`
}

func newOriginCmd() *cobra.Command {
	var (
		page   string
		port   int
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "origin",
		Short: "Print the base origin typed paths are resolved against, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("page") {
				cfg.PageURL = page
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			policy := app.PortImplicitDefault
			if strict || !cfg.ImplicitDefaultPort {
				policy = app.PortExplicitOnly
			}

			res := originResult{
				Page:       cfg.PageURL,
				Port:       cfg.Port,
				BaseOrigin: app.BaseOrigin(true, cfg.PageURL, cfg.Port, policy),
			}
			return app.OutputResult(res, getFormatFlag(cmd), func() string {
				return res.BaseOrigin
			})
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "location the runner is served from (default: config pageUrl)")
	cmd.Flags().IntVar(&port, "port", 0, "expected port (default: config port)")
	cmd.Flags().BoolVar(&strict, "strict-port", false, "only compare an explicit port in the page URL")

	return cmd
}
