package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand writes a completion script for the named shell.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Print a shell completion script",
		Long: `Completion prints a script that teaches your shell the tiegraph
subcommands and flags. Pipe it into the shell for the current session or
save it where the shell looks for completions.`,
		Example: `  # current session
  source <(tiegraph completion bash)
  tiegraph completion fish | source

  # every session
  tiegraph completion bash > ~/.local/share/bash-completion/completions/tiegraph
  tiegraph completion zsh > "${fpath[1]}/_tiegraph"
  tiegraph completion fish > ~/.config/fish/completions/tiegraph.fish
  tiegraph completion powershell >> $PROFILE`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
