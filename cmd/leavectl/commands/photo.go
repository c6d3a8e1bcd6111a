package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/guard"
)

// PhotoCmd creates the photo command
func PhotoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "photo <file>",
		Short: "Upload a profile photo (jpg or png, up to 5 MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewUploadProfile)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open photo: %w", err)
			}
			defer f.Close()

			url, err := app.API.UploadProfilePhoto(app.Ctx, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			app.Logger.Debug("photo uploaded", zap.String("url", url))

			if _, err := app.API.UpdateProfilePhoto(app.Ctx, sess.User.ID, url); err != nil {
				return err
			}
			if err := app.Store.UpdatePhoto(url); err != nil {
				return err
			}

			app.printf("Profile photo updated: %s\n", url)
			return nil
		},
	}
}
