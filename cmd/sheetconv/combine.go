package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetconv/pkg/sheetconv"
)

func newCombineCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Combine multiple Excel files (not implemented)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.OutOrStdout(), root)
			if err != nil {
				return err
			}
			log.Error("combine is not available", "logger", sheetconv.LoggerName)
			return fmt.Errorf("combine: %w", sheetconv.ErrNotImplemented)
		},
	}
}
