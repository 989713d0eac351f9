/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd implements the command line commands of the arbor
// binary.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arborlabs/arbor/log"
)

var v = viper.New()

// Root is the arbor entry command.
var Root = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor positional tree structures",
	Long:  "Arbor is a library of positional tree structures and traversal algorithms. This command exposes small demos of the library surface.",
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLogger("Arbor", v.GetString("log"))
	},
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetReleaseInfo stores the build information shown by the version
// command.
func SetReleaseInfo(v, c, d string) {
	version, commit, date = v, c, d
}

func init() {
	f := Root.PersistentFlags()
	f.String("log", log.ERROR, "Log level: silent, error, info or debug")

	_ = v.BindPFlag("log", f.Lookup("log"))
	_ = v.BindEnv("log", "ARBOR_LOG")

	Root.AddCommand(newTreeCommand())
	Root.AddCommand(newCipherCommand())
	Root.AddCommand(newVersionCommand())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arbor %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
