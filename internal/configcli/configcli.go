// Package configcli implements the `tig config` maintenance subcommand:
// dumping the effective option set and validating an rc file without
// launching the terminal UI.
package configcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stupied4ever/tig/pkg/cheatsheet"
	"github.com/stupied4ever/tig/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or validate tig's configuration",
}

var yamlFlag bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective option set after loading rc files",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewStore()
		for _, err := range store.LoadRCFiles() {
			fmt.Fprintln(os.Stderr, err)
		}
		if yamlFlag {
			out, err := store.DumpYAML()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}
		fmt.Print(store.Dump())
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse an rc file and report every line error, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewStore()
		if err := store.LoadFile(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("ok")
		return nil
	},
}

var cheatsheetCmd = &cobra.Command{
	Use:   "cheatsheet [dir]",
	Short: "Write Keybindings.md for the default keymap to dir (default: cwd)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		store := config.NewStore()
		cheatsheet.Generate(store.Keymaps, dir)
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&yamlFlag, "yaml", false, "dump as YAML instead of the command grammar")
	rootCmd.AddCommand(dumpCmd, checkCmd, cheatsheetCmd)
}

// Execute runs the config subcommand tree; args is the tail after `config`.
func Execute(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
