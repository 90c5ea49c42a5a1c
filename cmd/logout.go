package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codifymate/caprep/internal/auth"
	"github.com/codifymate/caprep/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		storage := auth.NewFileStorage(credentialsPath(cfg))
		if err := storage.Remove(auth.KeyAccessToken); err != nil {
			return fmt.Errorf("remove access token: %w", err)
		}
		if err := storage.Remove(auth.KeyRefreshToken); err != nil {
			return fmt.Errorf("remove refresh token: %w", err)
		}

		fmt.Println("Signed out.")
		return nil
	},
}
