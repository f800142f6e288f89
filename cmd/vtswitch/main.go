package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "vtswitch acknowledge virtual terminal switches",
	Long: `vtswitch puts the virtual terminal into process-controlled switching mode,
acknowledges every release and acquire request of the kernel and restores
the previous mode when it receives a termination signal.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			exitCode = exitConfig
			return err
		}
		exitCode = run(cfg, os.Stdout, os.Stderr)
		return nil
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	addFlags(rootCmd)
}

var exitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportErr(os.Stderr, err)
		if exitCode == exitOK {
			exitCode = exitConfig
		}
	}
	os.Exit(exitCode)
}
