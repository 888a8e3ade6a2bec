package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meetmcp/meetmcp/internal/google"
	"github.com/meetmcp/meetmcp/internal/logging"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize a Google account for calendar access",
		Long: `Run the OAuth authorization flow for a Google account from the terminal.

Prints the authorization URL, waits for the authorization code on stdin and
stores the resulting tokens in the user cache directory. Requires the
GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account name to store the token under")

	return cmd
}

func runAuth(cmd *cobra.Command, account string) error {
	if os.Getenv("GOOGLE_CLIENT_ID") == "" || os.Getenv("GOOGLE_CLIENT_SECRET") == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	if google.HasTokenForAccount(account) {
		fmt.Fprintf(cmd.OutOrStdout(), "A token already exists for account %q; continuing will replace it.\n\n", account)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Visit this URL in your browser to authorize account %q:\n\n  %s\n\nThen paste the authorization code here and press enter:\n", account, google.GetAuthURLForAccount(account))

	reader := bufio.NewReader(cmd.InOrStdin())
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code provided")
	}

	if err := google.SaveTokenForAccount(cmd.Context(), account, code); err != nil {
		return fmt.Errorf("failed to save token for account %s: %w", account, err)
	}

	slog.Info("authorization complete", logging.Account(account))
	fmt.Fprintf(cmd.OutOrStdout(), "Authorization successful. Token saved for account %q.\n", account)
	return nil
}
