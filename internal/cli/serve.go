package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/cache"
	"github.com/matzehuels/gridgen/pkg/server"
)

// serverKeyPrefix keeps server entries apart from CLI entries in a shared
// cache.
const serverKeyPrefix = "server:"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags gridFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve POST /v1/render and POST /v1/check. The flags and the config file
set the defaults every request starts from; query parameters override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			base, err := flags.options(cmd, file)
			if err != nil {
				return err
			}
			// Invalid defaults fail at startup.
			probe := base.Clone()
			if err := probe.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, file, cache.NewPrefixKeyer(nil, serverKeyPrefix))
			if err != nil {
				return err
			}
			defer runner.Close()

			if !cmd.Flags().Changed("addr") {
				addr = file.ServerAddr(addr)
			}
			return server.New(runner, base, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}
