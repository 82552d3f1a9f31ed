package cmd

import (
	"log/slog"

	"github.com/isometry/qr-link-opener/internal/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdOpen() *cobra.Command {
	var scan models.Scan
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the destination of a single scan and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			url, err := env.handler.Launch(scan)
			if err != nil {
				return errors.Wrap(err, "failed to open scan")
			}
			logger.Info("browser opened", slog.String("url", url))
			return nil
		},
	}

	cmd.Flags().StringVar(&scan.Company, "company", "", "The scanned company")
	cmd.Flags().StringVar(&scan.Order, "order", "", "The scanned order")

	return cmd
}
