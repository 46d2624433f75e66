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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cloudygreybeard/dirfavs/pkg/bookmark"
	"github.com/cloudygreybeard/dirfavs/pkg/ops"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := rootOpts.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := svc.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every bookmark",
		Long: `Delete every bookmark after confirmation. Only the exact answer
"yes" confirms; anything else cancels and changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := rootOpts.Prompter
			if prompter == nil {
				prompter = newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			svc, closeFn, err := rootOpts.openService(cmd.Context(), ops.WithPrompter(prompter))
			if err != nil {
				return err
			}
			defer closeFn()

			removed, err := svc.Clear(cmd.Context())
			if errors.Is(err, bookmark.ErrConfirmationDeclined) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d bookmarks.\n", removed)
			return nil
		},
	}
}

// newPrompter asks through a huh form when in is a terminal and reads a
// plain line otherwise.
func newPrompter(in io.Reader, out io.Writer) ops.Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return formPrompter{}
	}
	return linePrompter{in: in, out: out}
}

type formPrompter struct{}

func (formPrompter) Ask(question string) (string, error) {
	var answer string
	err := huh.NewInput().Title(question).Value(&answer).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	return answer, err
}

type linePrompter struct {
	in  io.Reader
	out io.Writer
}

func (p linePrompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
