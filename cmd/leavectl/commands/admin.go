package commands

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/export"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/guard"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/views"
)

// AdminCmd creates the admin command group
func AdminCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Review leave requests (admin only)",
	}

	cmd.AddCommand(adminListCmd(app))
	cmd.AddCommand(adminApproveCmd(app))
	cmd.AddCommand(adminRejectCmd(app))
	cmd.AddCommand(adminRelieversCmd(app))
	cmd.AddCommand(adminSummaryCmd(app))
	cmd.AddCommand(adminMonthlyCmd(app))
	cmd.AddCommand(adminUserStatsCmd(app))
	cmd.AddCommand(adminReportCmd(app))
	return cmd
}

// openPanel loads every request into a fresh admin panel.
func openPanel(app *AppContext, view guard.View) (*views.AdminPanel, error) {
	sess, err := app.open(view)
	if err != nil {
		return nil, err
	}
	panel := views.NewAdminPanel(app.API, sess)
	if err := panel.Refresh(app.Ctx); err != nil {
		return nil, err
	}
	return panel, nil
}

func adminListCmd(app *AppContext) *cobra.Command {
	var name, status, from, to, exportFormat, output string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests, ten per page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFromFlags(name, status, from, to)
			if err != nil {
				return err
			}
			panel, err := openPanel(app, guard.ViewAdmin)
			if err != nil {
				return err
			}

			list := panel.List()
			list.SetFilter(filter)
			list.SetPage(page)
			printTable(app.Out, list)

			if exportFormat != "" {
				return exportTo(app, exportFormat, output, panel.Export)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (Pending, Approved, Rejected, Cancelled)")
	cmd.Flags().StringVar(&from, "from", "", "period start, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end, YYYY-MM-DD")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	cmd.Flags().StringVar(&exportFormat, "export", "", "write every filtered row as xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export file (default leave-report.<ext>)")
	return cmd
}

func adminApproveCmd(app *AppContext) *cobra.Command {
	var reliever string

	cmd := &cobra.Command{
		Use:   "approve <leave-id>",
		Short: "Approve a pending request and assign a reliever",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(reliever) == "" {
				return leave.ErrRelieverRequired
			}
			panel, err := openPanel(app, guard.ViewAdmin)
			if err != nil {
				return err
			}

			updated, err := panel.Approve(app.Ctx, args[0], reliever)
			if err != nil {
				return err
			}
			app.Logger.Info("leave request approved", zap.String("leave_id", updated.ID), zap.String("reliever", updated.Reliever))
			app.printf("Leave request %s approved, reliever %s.\n", updated.ID, updated.Reliever)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reliever, "reliever", "r", "", "reliever from the roster (see: leavectl admin relievers)")
	return cmd
}

func adminRejectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <leave-id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := openPanel(app, guard.ViewAdmin)
			if err != nil {
				return err
			}

			updated, err := panel.Reject(app.Ctx, args[0])
			if err != nil {
				return err
			}
			app.Logger.Info("leave request rejected", zap.String("leave_id", updated.ID))
			app.printf("Leave request %s rejected.\n", updated.ID)
			return nil
		},
	}
}

func adminRelieversCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "relievers",
		Short: "List the reliever roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewAdmin)
			if err != nil {
				return err
			}
			names, err := views.NewAdminPanel(app.API, sess).Relievers(app.Ctx)
			if err != nil {
				return err
			}
			for _, n := range names {
				app.printf("%s\n", n)
			}
			return nil
		},
	}
}

func adminSummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count all leave requests by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewAnalytics)
			if err != nil {
				return err
			}
			s, err := views.NewAdminPanel(app.API, sess).Summary(app.Ctx)
			if err != nil {
				return err
			}
			printSummary(app.Out, s)
			return nil
		},
	}
}

func adminMonthlyCmd(app *AppContext) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the monthly leave trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(guard.ViewAnalytics)
			if err != nil {
				return err
			}
			points, err := views.NewAdminPanel(app.API, sess).MonthlyTrend(app.Ctx, year)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				app.printf("No leave requests in %d.\n", year)
				return nil
			}
			app.printf("%-5s %6s %9s %9s\n", "Month", "Total", "Approved", "Rejected")
			for _, p := range points {
				app.printf("%-5s %6d %9d %9d\n", p.Month, p.Total, p.Approved, p.Rejected)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "calendar year")
	return cmd
}

func adminUserStatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Show one requester's totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel, err := openPanel(app, guard.ViewAdmin)
			if err != nil {
				return err
			}
			s := panel.UserStats(args[0])
			app.printf("Total: %d  Approved: %d  Rejected: %d\n", s.Total, s.Approved, s.Rejected)
			return nil
		},
	}
}

func adminReportCmd(app *AppContext) *cobra.Command {
	var name, status, from, to, formatName, output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download a report rendered by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.open(guard.ViewAdmin); err != nil {
				return err
			}
			if _, err := filterFromFlags(name, status, from, to); err != nil {
				return err
			}

			q := url.Values{}
			for k, v := range map[string]string{"name": name, "status": status, "from": from, "to": to} {
				if v != "" {
					q.Set(k, v)
				}
			}

			return exportTo(app, formatName, output, func(w io.Writer, f export.Format) error {
				return app.API.DownloadReport(app.Ctx, string(f), q, w)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&from, "from", "", "period start, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end, YYYY-MM-DD")
	cmd.Flags().StringVarP(&formatName, "format", "f", "xlsx", "xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default leave-report.<ext>)")
	return cmd
}
