package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arah-infotech/sitebot/internal/adapters/driven/storage/sqlite"
	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/core/services"
)

var (
	seedEmail    string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create or reset the dashboard admin account",
	Long: `Creates the admin account used by the dashboard. If the email already
exists its password is replaced. The password is prompted for when not
given as a flag.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "admin@arahinfotech.net", "admin login email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "admin password (prompted when omitted)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	success := color.New(color.FgGreen)

	_, settings, err := openSettings()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	password := seedPassword
	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Admin password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(settings.DataDir())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        seedEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := store.AdminStore().SaveAdmin(context.Background(), admin); err != nil {
		return fmt.Errorf("saving admin: %w", err)
	}

	success.Fprintf(cmd.OutOrStdout(), "Admin %s ready\n", seedEmail)
	return nil
}
