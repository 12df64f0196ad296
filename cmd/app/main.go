package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "app",
		Short: "Clinic appointments gateway",
		// Без подкоманды запускаем сервер
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(slotsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the cache invalidation listener",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func slotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print available slots for a doctor as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, _ := cmd.Flags().GetInt("doctor-id")
			debug, _ := cmd.Flags().GetBool("debug")
			return runSlots(cmd.Context(), cmd.OutOrStdout(), doctorID, debug)
		},
	}
	cmd.Flags().Int("doctor-id", 0, "Doctor identifier")
	cmd.Flags().Bool("debug", false, "Include per-step timings")
	_ = cmd.MarkFlagRequired("doctor-id")
	return cmd
}
