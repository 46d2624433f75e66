// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"
)

var functionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

var shellTemplates = map[string]string{
	"bash": posixFunction,
	"zsh":  posixFunction,
	"fish": fishFunction,
}

const posixFunction = `# dirfavs shell integration
{{.Name}}() {
    if [ "$1" = "to" ]; then
        shift
        local dir
        dir="$(command dirfavs to "$@")" && cd -- "$dir"
    else
        command dirfavs "$@"
    fi
}
`

const fishFunction = `# dirfavs shell integration
function {{.Name}}
    if test (count $argv) -ge 1; and test "$argv[1]" = to
        set -l dir (command dirfavs to $argv[2..-1]); and cd -- $dir
    else
        command dirfavs $argv
    end
end
`

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell [bash|zsh|fish]",
		Short: "Print the shell function that changes directory",
		Long: `Print a shell function that wraps dirfavs and performs the cd
for "to". Add it to your shell startup file:

  eval "$(dirfavs shell bash)"          # ~/.bashrc
  eval "$(dirfavs shell zsh)"           # ~/.zshrc
  dirfavs shell fish | source           # ~/.config/fish/config.fish

The shell is taken from $SHELL when not given.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := filepath.Base(os.Getenv("SHELL"))
			if len(args) == 1 {
				shell = args[0]
			}
			name, _ := cmd.Flags().GetString("name")
			return writeShellFunction(cmd, shell, name)
		},
	}

	cmd.Flags().String("name", "fav", "name of the shell function")

	return cmd
}

func writeShellFunction(cmd *cobra.Command, shell, name string) error {
	text, ok := shellTemplates[shell]
	if !ok {
		return fmt.Errorf("unsupported shell %q (available: bash, zsh, fish)", shell)
	}
	if !functionName.MatchString(name) {
		return fmt.Errorf("invalid function name %q", name)
	}

	tmpl := template.Must(template.New(shell).Parse(text))
	return tmpl.Execute(cmd.OutOrStdout(), struct{ Name string }{name})
}
