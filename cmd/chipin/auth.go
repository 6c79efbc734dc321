package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	chipin "github.com/chipinhq/chipin-go"
	"github.com/chipinhq/chipin-go/pkg/apiclient"
	"github.com/chipinhq/chipin-go/svc/session"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Authenticate and store a session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		password, err := promptPassword(cmd)
		if err != nil {
			return err
		}

		token, err := app.API.IssueToken(cmd.Context(), args[0], password)
		if err != nil {
			return reportAPIError(cmd, err)
		}

		app.Session.Login(cmd.Context(), token.AccessToken)
		state, err := waitForSession(app)
		if err != nil {
			return err
		}
		if state.Err != nil {
			return reportAPIError(cmd, state.Err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", state.User.Name, state.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		app.Session.Logout(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if app.Session.Status() == session.StatusAnonymous {
			return fmt.Errorf("not logged in, run `chipin login` first")
		}

		state, err := waitForSession(app)
		if err != nil {
			return err
		}
		if state.Err != nil {
			return reportAPIError(cmd, state.Err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %d)\n", state.User.Name, state.User.Email, state.User.ID)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <name> <email>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		password, err := promptPassword(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		user, err := app.API.Register(ctx, apiclient.UserCreate{
			Name:     args[0],
			Email:    args[1],
			Password: password,
		})
		if err != nil {
			return reportAPIError(cmd, err)
		}

		token, err := app.API.IssueToken(ctx, user.Email, password)
		if err != nil {
			return reportAPIError(cmd, err)
		}
		app.Session.Login(ctx, token.AccessToken)
		if _, err := waitForSession(app); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. You are logged in.\n", user.Name)
		return nil
	},
}

// waitForSession blocks until the background profile fetch settles.
func waitForSession(app *chipin.App) (session.State, error) {
	settled := make(chan struct{})
	var once sync.Once

	unsubscribe := app.Session.Subscribe(func() {
		if !app.Session.Snapshot().Loading {
			once.Do(func() { close(settled) })
		}
	})
	defer unsubscribe()

	if !app.Session.Snapshot().Loading {
		once.Do(func() { close(settled) })
	}

	select {
	case <-settled:
		return app.Session.Snapshot(), nil
	case <-time.After(30 * time.Second):
		return session.State{}, fmt.Errorf("timed out waiting for the session to resolve")
	}
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
