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
	"strings"

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List import and export formats",
		Long:  `Lists all registered input (import) and output (export) adapters.`,
		Args:  cobra.NoArgs,
		RunE:  runFormats,
	}
}

func runFormats(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Import formats:")
	fmt.Fprintln(w)
	for _, name := range adapter.ListInputs() {
		inp, _ := adapter.GetInput(name)
		fmt.Fprintf(w, "  %-12s %-22s %s\n", name, inp.DisplayName(), extensionList(inp.Extensions()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export formats:")
	fmt.Fprintln(w)
	for _, name := range adapter.ListOutputs() {
		out, _ := adapter.GetOutput(name)
		fmt.Fprintf(w, "  %-12s %-22s %s\n", name, out.DisplayName(), extensionList(out.Extensions()))
	}

	return nil
}

func extensionList(exts []string) string {
	if len(exts) == 0 {
		return "(--format only)"
	}
	return strings.Join(exts, " ")
}
