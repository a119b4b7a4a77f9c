package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/pipeline"
)

// tokensCommand creates the tokens command, which prints the active lexicon
// as "token<TAB>shape" lines, one per token in sorted order.
func (c *CLI) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the tokens the parser recognises",
		Long: `List the tokens the parser recognises and the shape each one produces.

Without a [tokens] table in the config file this is the built-in alphabet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			var opts pipeline.Options
			if file != nil {
				file.Apply(&opts)
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			lex := opts.Lexicon()
			shapes := lex.Spec()
			for _, tok := range lex.Tokens() {
				fmt.Fprintf(c.Out, "%s\t%s\n", tok, shapes[tok])
			}
			return nil
		},
	}
}
