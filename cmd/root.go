// Copyright 2024, Northwood Labs
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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	clihelpers "github.com/northwood-labs/cli-helpers"
	"github.com/spf13/cobra"

	"github.com/northwood-labs/supermd/internal/compiler"
	"github.com/northwood-labs/supermd/internal/diag"
)

var (
	fJSON    bool
	fVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "supermd",
	})

	rootCmd = &cobra.Command{
		Use:   "supermd",
		Short: "Compiles SuperMD documents and reports directive diagnostics.",
		Long: clihelpers.LongHelpText(`
		supermd

		Parses one or more SuperMD (".smd") documents, evaluates every
		directive expression, runs placement validation, and reports the
		resulting diagnostics.

		SuperMD is CommonMark/GFM with rendering directives: a Markdown link
		whose URL starts with '$' carries an expression against a typed
		directive object, e.g. [Title]($heading.id('h').attrs('warn')).

		Documents are passed as ARGUMENTS, each a path to a ".smd" file.`),
		Args: cobra.MinimumNArgs(1),
		RunE: runCompile,
	}
)

// fileResult is the JSON shape for one compiled document.
type fileResult struct {
	Path        string   `json:"path"`
	OK          bool     `json:"ok"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

func runCompile(cmd *cobra.Command, args []string) error {
	results := make([]fileResult, 0, len(args))
	failed := false

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf("%s: %v", path, err)
			failed = true
			results = append(results, fileResult{Path: path, OK: false, Diagnostics: []string{err.Error()}})
			continue
		}

		sink := diag.NewSink()
		doc := compiler.Compile(source, sink)

		diags := sink.Diagnostics()
		msgs := make([]string, 0, len(diags))
		for _, d := range diags {
			msgs = append(msgs, d.Message)
		}

		if len(msgs) > 0 {
			failed = true
		}

		results = append(results, fileResult{Path: path, OK: len(msgs) == 0, Diagnostics: msgs})

		if fVerbose {
			logger.Infof("%s: %d directive(s) compiled", path, len(doc.Directives))
			fmt.Fprint(os.Stderr, doc.Dump())
		}

		for _, m := range msgs {
			logger.Errorf("%s: %s", path, m)
		}
	}

	if fJSON {
		jsonb, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(jsonb))
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fJSON, "json", "j", false, "Return results in JSON format.")
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "Print a debug AST dump per document.")
}
