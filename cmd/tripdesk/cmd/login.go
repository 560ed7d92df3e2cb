package cmd

import (
	"fmt"
	"os"
	"strings"

	"tripdesk/internal/tui/themes"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd signs in and stores the bearer token
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the travel-booking API",
	Long: `Sign in with an email and password. The issued bearer token is
stored under the user config directory and attached to every
subsequent request until 'tripdesk logout'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		password := loginPassword

		if email == "" || password == "" {
			if err := promptCredentials(&email, &password); err != nil {
				return err
			}
		}

		client, store, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := store.Save(resp.Token); err != nil {
			return err
		}

		log.Info("logged in", "email", email, "request_id", cmdRequestID)
		if resp.User != nil {
			fmt.Printf("Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
			if roles := resp.User.RoleNames(); len(roles) > 0 {
				fmt.Printf("Roles: %s\n", strings.Join(roles, ", "))
			}
		} else {
			fmt.Println("Logged in.")
		}
		return nil
	},
}

// promptCredentials asks for the missing credentials. Interactive
// terminals get the form; pipes fall back to a plain password read.
func promptCredentials(email, password *string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(email),
			huh.NewInput().Title("Password").Value(password).
				EchoMode(huh.EchoModePassword),
		)).WithTheme(themes.Global().Active().HuhTheme())
		return form.Run()
	}

	if *email == "" {
		fmt.Print("Email: ")
		if _, err := fmt.Scanln(email); err != nil {
			return fmt.Errorf("read email: %w", err)
		}
	}
	if *password == "" {
		fmt.Print("Password: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		*password = string(data)
	}
	return nil
}

// logoutCmd revokes the token and clears it locally
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}

		tok, err := store.Load()
		if err != nil {
			return err
		}
		if tok == "" {
			fmt.Println("Not logged in.")
			return nil
		}

		// Revoke server-side first; an already-expired token is fine
		if err := client.Logout(cmd.Context()); err != nil {
			log.Warn("server-side logout failed", "error", err)
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// whoamiCmd shows the signed-in account
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		user, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if roles := user.RoleNames(); len(roles) > 0 {
			fmt.Printf("Roles: %s\n", strings.Join(roles, ", "))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
