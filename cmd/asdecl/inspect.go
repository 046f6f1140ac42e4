package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darren-211/assemblyscript/internal/exports"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] graph.mp",
	Short: "Dump a summary of an export graph snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("members", false, "list nested members under each export")
}

func runInspect(cmd *cobra.Command, args []string) error {
	showMembers, err := cmd.Flags().GetBool("members")
	if err != nil {
		return err
	}
	graph, err := exports.LoadSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("failed to load graph snapshot: %w", err)
	}
	return exports.Dump(cmd.OutOrStdout(), graph, exports.DumpOptions{ShowMembers: showMembers})
}
