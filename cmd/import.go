/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eslsoft/blinkvocab/internal/usecase/backup"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const importInputKey = "backup.import.input"

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an NDJSON backup into the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return fmt.Errorf("missing input file, use --input")
		}

		store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		var in io.Reader = os.Stdin
		if inputPath != "-" {
			file, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer file.Close()
			in = file
		}

		if strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gz, err := gzip.NewReader(in)
			if err != nil {
				return fmt.Errorf("open gzip stream: %w", err)
			}
			defer gz.Close()
			in = gz
		}

		count, err := backup.NewService(store).Import(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "input file path, or - for stdin")
	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
}
