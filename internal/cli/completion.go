package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for jigsaw and write it to stdout.

Completions cover subcommands, flags, the grids offered by the game
and the interface languages.

  $ source <(jigsaw completion bash)
  $ jigsaw completion zsh > "${fpath[1]}/_jigsaw"
  $ jigsaw completion fish > ~/.config/fish/completions/jigsaw.fish
  PS> jigsaw completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// completeGrid offers the grids the game lists, described by piece count.
func completeGrid(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(layout.Options))
	for _, g := range layout.Options {
		out = append(out, fmt.Sprintf("%s\t%d pieces", g, g.Count()))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeLang offers the catalog languages with their native names.
func completeLang(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	langs := i18n.Languages()
	out := make([]string, 0, len(langs))
	for _, code := range langs {
		out = append(out, code+"\t"+i18n.Name(code))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeImage restricts file completion to the formats the decoder sniffs.
func completeImage(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"png", "jpg", "jpeg"}, cobra.ShellCompDirectiveFilterFileExt
}
