package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/guard"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	var idToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a Google ID token",
		Long: `Sign in with the ID token returned by Google Sign-In for the portal's client ID.
The token is read from the prompt when --id-token is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if idToken == "" {
				var err error
				idToken, err = readSecret(app.In, app.Out, "Google ID token: ")
				if err != nil {
					return fmt.Errorf("read token: %w", err)
				}
			}
			if idToken == "" {
				return fmt.Errorf("an ID token is required")
			}

			resp, err := app.API.LoginWithGoogle(app.Ctx, idToken)
			if err != nil {
				app.Logger.Error("login failed", zap.Error(err))
				return err
			}
			if err := app.Store.Save(session.FromLogin(resp)); err != nil {
				return err
			}

			app.printf("Signed in as %s (%s)\n", resp.User.Name, resp.User.Role)
			switch next := guard.AfterLogin(resp.User); next {
			case guard.ViewUploadProfile:
				app.printf("Add a profile photo first: leavectl photo <file>\n")
			case guard.ViewAdmin:
				app.printf("Review requests with: leavectl admin list\n")
			case guard.ViewApplyLeave:
				app.printf("Apply for leave with: leavectl apply --help\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&idToken, "id-token", "", "Google ID token")
	return cmd
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Clear(); err != nil {
				return err
			}
			app.printf("Signed out.\n")
			return nil
		},
	}
}

// WhoAmICmd creates the whoami command
func WhoAmICmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewProfile)
			if err != nil {
				return err
			}
			u := sess.User
			app.printf("ID:    %s\nName:  %s\nEmail: %s\nRole:  %s\n", u.ID, u.Name, u.Email, u.Role)
			if u.HasProfilePhoto() {
				app.printf("Photo: %s\n", u.ProfilePhoto)
			}
			return nil
		},
	}
}
