package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ukechords.

Chord names complete too, including names from your own definition files.

Bash:
  $ source <(ukechords completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ukechords completion bash > /etc/bash_completion.d/ukechords
  # macOS:
  $ ukechords completion bash > $(brew --prefix)/etc/bash_completion.d/ukechords

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ ukechords completion zsh > "${fpath[1]}/_ukechords"

Fish:
  $ ukechords completion fish > ~/.config/fish/completions/ukechords.fish

PowerShell:
  PS> ukechords completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeChordNames completes chord names from the configured catalog.
// Sharps and flats both complete, so "Db" offers "Dbm7" as well as "C#m7".
func (c *CLI) completeChordNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := c.loadSession(ctx, cmd.Flags().Changed)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Names already typed in earlier arguments are not offered again.
	typed := map[string]bool{}
	for _, a := range args {
		for _, term := range strings.Split(a, ",") {
			typed[strings.ToLower(strings.TrimSpace(term))] = true
		}
	}

	prefix := strings.ToLower(toComplete)
	var out []string
	for _, ch := range s.catalog.All() {
		for _, name := range append([]string{ch.Name()}, ch.Aliases()...) {
			lower := strings.ToLower(name)
			if strings.HasPrefix(lower, prefix) && !typed[lower] {
				out = append(out, name)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
