package cmd

import (
	"fmt"

	"github.com/smazurov/tulipd/internal/wifimac"
	"github.com/spf13/cobra"
)

// CreateWifiMACCmd creates the wifimac command.
func CreateWifiMACCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "wifimac",
		Short: "Print the WiFi MAC address",
		Long:  `Reads the WiFi MAC address from the persist partition calibration file and prints it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := wifimac.Read(path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", wifimac.DefaultPath, "Calibration file")

	return cmd
}
