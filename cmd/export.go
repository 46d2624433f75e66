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

	"github.com/cloudygreybeard/dirfavs/pkg/adapter"
	"github.com/cloudygreybeard/dirfavs/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultExportFormat = "json"

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all bookmarks in a portable format",
		Long: `Write every bookmark to stdout or a file.

The format comes from --format, or from the extension of --output,
and defaults to json. Run "dirfavs formats" to see what is available.`,
		Args: cobra.NoArgs,
		RunE: runExport(rootOpts),
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringP("format", "f", "", "output format (default: from --output extension, else json)")
	cmd.Flags().String("style", "", "format variant: list or table (markdown only)")
	cmd.Flags().Bool("no-metadata", false, "omit the metadata header")
	cmd.Flags().Bool("no-usage", false, "omit visit counts and times")

	return cmd
}

func runExport(rootOpts *RootOptions) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		outAdapter, err := resolveOutput(format, outPath)
		if err != nil {
			return err
		}

		svc, closeFn, err := rootOpts.openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		noMeta, _ := cmd.Flags().GetBool("no-metadata")
		noUsage, _ := cmd.Flags().GetBool("no-usage")
		style, _ := cmd.Flags().GetString("style")
		renderOpts := output.RenderOptions{
			IncludeMetadata: !noMeta,
			IncludeUsage:    !noUsage,
			StorePath:       svc.StorePath(),
			Style:           style,
		}

		marks := svc.Export()
		data, err := outAdapter.Render(marks, renderOpts)
		if err != nil {
			return fmt.Errorf("rendering output: %w", err)
		}

		if outPath == "" || outPath == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		rootOpts.Logger.Debug("export written",
			zap.String("path", outPath),
			zap.String("format", outAdapter.Name()),
			zap.Int("bookmarks", len(marks)))
		return nil
	}
}

func resolveOutput(format, outPath string) (output.Adapter, error) {
	if format == "" && outPath != "" && outPath != "-" {
		if a, ok := adapter.OutputForPath(outPath); ok {
			return a, nil
		}
	}
	if format == "" {
		format = defaultExportFormat
	}
	a, ok := adapter.GetOutput(format)
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s (available: %v)", format, adapter.ListOutputs())
	}
	return a, nil
}
