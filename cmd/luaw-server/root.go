/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/nabbar/luaw-server/app"
)

// newRootCommand builds the luaw-server command: a repeatable --config
// flag (first occurrence primary, the rest merged on top, in order) and
// nothing else - every other knob lives in the configuration table
// itself, not on the command line.
func newRootCommand() *cobra.Command {
	var configPaths []string

	cmd := &cobra.Command{
		Use:   "luaw-server",
		Short: "Runs the luaw-server HTTP core",
		Long: "luaw-server binds the configured listener address, drives the " +
			"scheduler bridge and reactor, and serves connections until it " +
			"receives SIGHUP, at which point it shuts down cleanly.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := app.New(configPaths...)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringArrayVarP(&configPaths, "config", "c", nil,
		"configuration file path, repeatable; the first occurrence is primary, later ones merge on top")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
