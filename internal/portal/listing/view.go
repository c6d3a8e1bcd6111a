package listing

import (
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// DefaultPageSize is the number of rows per page.
const DefaultPageSize = 10

// DateRangeMode says where the date range of a Filter is evaluated.
type DateRangeMode int

const (
	// DateRangeLocal filters the fetched collection in memory.
	DateRangeLocal DateRangeMode = iota
	// DateRangeServer asks the backend for the range and filters the rest locally.
	DateRangeServer
)

// Config parameterizes the one listing component shared by all screens.
type Config struct {
	Columns    []Column
	Filterable bool
	Exportable bool
	Paginated  bool
	PageSize   int
	DateRange  DateRangeMode
}

// AdminConfig is the admin panel: every request, all filters in memory.
var AdminConfig = Config{
	Columns:    []Column{ColumnName, ColumnRole, ColumnRoute, ColumnDates, ColumnType, ColumnReason, ColumnReliever, ColumnStatus},
	Filterable: true,
	Exportable: true,
	Paginated:  true,
	PageSize:   DefaultPageSize,
	DateRange:  DateRangeLocal,
}

// HistoryConfig is a requester's own history: the date range goes to the backend.
var HistoryConfig = Config{
	Columns:    []Column{ColumnRoute, ColumnDates, ColumnType, ColumnReason, ColumnReliever, ColumnStatus},
	Filterable: true,
	Exportable: true,
	Paginated:  false,
	PageSize:   DefaultPageSize,
	DateRange:  DateRangeServer,
}

// View holds one screen's fetched collection together with its filter and page.
// It is owned by a single screen and is not safe for concurrent use.
type View struct {
	cfg    Config
	all    []leave.LeaveRequest
	filter Filter
	rows   []leave.LeaveRequest
	page   int
}

func NewView(cfg Config) *View {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &View{cfg: cfg, page: 1}
}

func (v *View) Config() Config {
	return v.cfg
}

// Load replaces the collection with a fresh fetch. The filter is kept and
// the page is clamped to the new bounds.
func (v *View) Load(rows []leave.LeaveRequest) {
	v.all = append([]leave.LeaveRequest(nil), rows...)
	v.refresh()
	v.SetPage(v.page)
}

// All returns the unfiltered collection.
func (v *View) All() []leave.LeaveRequest {
	return v.all
}

func (v *View) Filter() Filter {
	return v.filter
}

// SetFilter changes the filter and goes back to page 1.
func (v *View) SetFilter(f Filter) {
	if !v.cfg.Filterable {
		f = Filter{}
	}
	v.filter = f
	v.refresh()
	v.page = 1
}

func (v *View) refresh() {
	local := v.filter
	if v.cfg.DateRange == DateRangeServer {
		// Already applied by the backend query.
		local.From, local.To = time.Time{}, time.Time{}
	}
	v.rows = Apply(v.all, local)
}

// Rows returns every row matching the filter, across all pages.
func (v *View) Rows() []leave.LeaveRequest {
	return v.rows
}

// Count is the number of rows matching the filter.
func (v *View) Count() int {
	return len(v.rows)
}

// TotalPages is ceil(Count / PageSize), or 1 when pagination is off and
// there is something to show.
func (v *View) TotalPages() int {
	n := len(v.rows)
	if n == 0 {
		return 0
	}
	if !v.cfg.Paginated {
		return 1
	}
	return (n + v.cfg.PageSize - 1) / v.cfg.PageSize
}

// Page is the current 1-indexed page.
func (v *View) Page() int {
	return v.page
}

// SetPage moves to page n, clamped to [1, TotalPages], and returns the page shown.
func (v *View) SetPage(n int) int {
	last := v.TotalPages()
	if last < 1 {
		last = 1
	}
	switch {
	case n < 1:
		n = 1
	case n > last:
		n = last
	}
	v.page = n
	return n
}

func (v *View) NextPage() int { return v.SetPage(v.page + 1) }
func (v *View) PrevPage() int { return v.SetPage(v.page - 1) }

// PageRows returns the rows of the current page.
func (v *View) PageRows() []leave.LeaveRequest {
	if !v.cfg.Paginated {
		return v.rows
	}
	start := (v.page - 1) * v.cfg.PageSize
	if start >= len(v.rows) {
		return nil
	}
	end := start + v.cfg.PageSize
	if end > len(v.rows) {
		end = len(v.rows)
	}
	return v.rows[start:end]
}

// Find looks a request up by id in the fetched collection.
func (v *View) Find(id string) (leave.LeaveRequest, bool) {
	for _, r := range v.all {
		if r.ID == id {
			return r, true
		}
	}
	return leave.LeaveRequest{}, false
}

// Table returns the header and the cells of the current page.
func (v *View) Table() ([]string, [][]string) {
	return Headers(v.cfg.Columns), Cells(v.PageRows(), v.cfg.Columns)
}
