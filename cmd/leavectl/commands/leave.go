package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/export"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/guard"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/lifecycle"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/views"
)

// ApplyCmd creates the apply command
func ApplyCmd(app *AppContext) *cobra.Command {
	var form leave.ApplyLeaveRequest

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for leave",
		Example: `  leavectl apply --name "Murugan S" --route-from Madurai --route-to Trichy \
    --from 2025-03-10 --to 2025-03-12 --type Casual --reason "Family function"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewApplyLeave)
			if err != nil {
				return err
			}
			if form.FullName == "" {
				form.FullName = sess.User.Name
			}

			created, err := lifecycle.NewActions(app.API, sess).Submit(app.Ctx, form)
			if err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					for _, e := range verrs {
						app.printf("  %s: %s\n", e.Field, e.Message)
					}
				}
				return err
			}

			app.Logger.Info("leave request submitted", zap.String("leave_id", created.ID))
			app.printf("Leave request %s submitted (%s).\n", created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.FullName, "name", "", "full name (defaults to your account name)")
	cmd.Flags().StringVar(&form.Role, "role", "Driver", "Driver or Conductor")
	cmd.Flags().StringVar(&form.RouteFrom, "route-from", "", "route start")
	cmd.Flags().StringVar(&form.RouteTo, "route-to", "", "route end")
	cmd.Flags().StringVar(&form.FromDate, "from", "", "first day of leave, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.ToDate, "to", "", "last day of leave, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.LeaveType, "type", "", "Casual, Medical or Emergency")
	cmd.Flags().StringVar(&form.Reason, "reason", "", "optional reason")
	return cmd
}

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	var name, status, from, to, exportFormat, output string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your leave history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewLeaveHistory)
			if err != nil {
				return err
			}
			filter, err := filterFromFlags(name, status, from, to)
			if err != nil {
				return err
			}

			page := views.NewHistoryPage(app.API, sess)
			if filter.From.IsZero() && filter.To.IsZero() {
				if err := page.Refresh(app.Ctx); err != nil {
					return err
				}
			}
			if err := page.SetFilter(app.Ctx, filter); err != nil {
				return err
			}

			if notice, ok := page.LatestNotice(); ok {
				app.printf("%s\n\n", notice)
			}
			printTable(app.Out, page.List())
			app.printf("\n")
			printSummary(app.Out, page.Summary())

			if exportFormat != "" {
				return exportTo(app, exportFormat, output, page.Export)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&from, "from", "", "period start, YYYY-MM-DD (needs --to)")
	cmd.Flags().StringVar(&to, "to", "", "period end, YYYY-MM-DD (needs --from)")
	cmd.Flags().StringVar(&exportFormat, "export", "", "also write the rows as xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export file (default leave-report.<ext>)")
	return cmd
}

// CancelCmd creates the cancel command
func CancelCmd(app *AppContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel <leave-id>",
		Short: "Cancel one of your pending leave requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewLeaveHistory)
			if err != nil {
				return err
			}

			page := views.NewHistoryPage(app.API, sess)
			if err := page.Refresh(app.Ctx); err != nil {
				return err
			}

			updated, err := page.Cancel(app.Ctx, args[0], promptConfirmer(app.In, app.Out, yes))
			if errors.Is(err, lifecycle.ErrNotConfirmed) {
				app.printf("Nothing changed.\n")
				return nil
			}
			if err != nil {
				return err
			}

			app.printf("Leave request %s is now %s.\n", updated.ID, updated.Status)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// exportTo writes a report with write into output, or the default file name.
func exportTo(app *AppContext, formatName, output string, write func(w io.Writer, f export.Format) error) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if output == "" {
		output = format.FileName()
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := write(f, format); err != nil {
		f.Close()
		os.Remove(output)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	app.printf("Report written to %s\n", output)
	return nil
}
