package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/lifecycle"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
)

// printTable renders the current page of v with an ID column in front.
func printTable(w io.Writer, v *listing.View) {
	header, cells := v.Table()
	rows := v.PageRows()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t"+strings.Join(header, "\t"))
	for i, line := range cells {
		fmt.Fprintln(tw, rows[i].ID+"\t"+strings.Join(line, "\t"))
	}
	tw.Flush()

	if v.Count() == 0 {
		fmt.Fprintln(w, "No leave requests found.")
		return
	}
	if v.Config().Paginated {
		fmt.Fprintf(w, "\nPage %d of %d (%d requests)\n", v.Page(), v.TotalPages(), v.Count())
	}
}

func printSummary(w io.Writer, s leave.Summary) {
	fmt.Fprintf(w, "Total: %d  Approved: %d  Pending: %d  Rejected: %d\n", s.Total, s.Approved, s.Pending, s.Rejected)
}

// filterFromFlags builds a listing filter from command-line values.
func filterFromFlags(name, status, from, to string) (listing.Filter, error) {
	st, ok := listing.ParseStatus(status)
	if !ok {
		return listing.Filter{}, fmt.Errorf("unknown status %q", status)
	}
	f := listing.Filter{Name: name, Status: st}

	var err error
	if f.From, err = parseDateFlag("from", from); err != nil {
		return listing.Filter{}, err
	}
	if f.To, err = parseDateFlag("to", to); err != nil {
		return listing.Filter{}, err
	}
	return f, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD: %w", name, err)
	}
	return t, nil
}

// promptConfirmer asks on out and reads y/n from in. Without a terminal the
// answer comes from the first line of in.
func promptConfirmer(in io.Reader, out io.Writer, assumeYes bool) lifecycle.Confirmer {
	return func(prompt string) (bool, error) {
		if assumeYes {
			return true, nil
		}
		fmt.Fprintf(out, "%s [y/N]: ", prompt)

		line, err := readLine(in)
		if err != nil {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// readSecret reads a line without echo when in is a terminal.
func readSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := readLine(in)
	return strings.TrimSpace(line), err
}

func readLine(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
