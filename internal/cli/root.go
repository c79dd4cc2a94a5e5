// Package cli wires the installer's command surface: the default interactive
// wizard, the forced console flow, and a version command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagConsole bool

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "anarqq-installer",
		Short:        "AnarQ&Q ecosystem demo installer",
		Long:         "Installs the AnarQ&Q ecosystem demo: checks prerequisites, fetches the repositories, installs dependencies, and creates launcher scripts.",
		SilenceUsage: true,
		// The flows print their own failure verdicts; cobra must not add a
		// second "Error: ..." line on top.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(version)
		},
	}

	cmd.PersistentFlags().BoolVar(&flagConsole, "console", false, "Force console mode (no interactive UI)")

	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print installer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("anarqq-installer", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
