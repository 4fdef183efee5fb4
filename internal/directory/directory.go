// Package directory holds the in-memory employee collection behind the list
// view and the filter-as-you-type search over it.
package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"employee-directory/internal/models"
)

const NoResultsText = "No employees found"

// Lister fetches the whole employee collection. *client.Client satisfies it.
type Lister interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

// Directory caches the collection from the last load. Handlers share one
// Directory, so all access goes through the mutex.
type Directory struct {
	lister Lister
	logger zerolog.Logger
	mounts singleflight.Group

	mu        sync.RWMutex
	employees []models.Employee
	loaded    bool
	// gen counts invalidations. A load only marks the collection current if
	// no Invalidate happened while it was in flight.
	gen uint64
}

func New(lister Lister, logger zerolog.Logger) *Directory {
	return &Directory{lister: lister, logger: logger}
}

// Load replaces the collection with a fresh read. On failure the error is
// logged and the collection becomes empty; nothing is retried.
func (d *Directory) Load(ctx context.Context) {
	d.mu.RLock()
	gen := d.gen
	d.mu.RUnlock()

	employees, err := d.lister.ListEmployees(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("error fetching employees")
		employees = nil
	}

	d.mu.Lock()
	d.employees = employees
	d.loaded = d.gen == gen
	d.mu.Unlock()
}

// Mount loads the collection unless a previous load is still current.
// Concurrent mounts share one load.
func (d *Directory) Mount(ctx context.Context) {
	if d.current() {
		return
	}

	// the shared load outlives the request that started it
	loadCtx := context.WithoutCancel(ctx)

	_, _, _ = d.mounts.Do("load", func() (interface{}, error) {
		if !d.current() {
			d.Load(loadCtx)
		}
		return nil, nil
	})
}

func (d *Directory) current() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.loaded
}

// Invalidate marks the collection stale; the next Mount reloads it, even
// when a load is in flight right now.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	d.gen++
	d.loaded = false
	d.mu.Unlock()
}

// Employees returns a copy of the loaded collection.
func (d *Directory) Employees() []models.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Filter returns the loaded employees matching query, in load order.
func (d *Directory) Filter(query string) []models.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Filter(d.employees, query)
}

// Filter keeps every employee whose name, email, phone number, department
// or role contains query, ignoring case. An empty query keeps everything.
func Filter(employees []models.Employee, query string) []models.Employee {
	q := strings.ToLower(query)
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if Matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// Matches expects a lower-cased query.
func Matches(e models.Employee, lowerQuery string) bool {
	for _, field := range []string{e.Name, e.Email, e.PhoneNumber, e.Department, e.Role} {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// Row is one rendered table row. A placeholder row has no employee and
// spans the whole table.
type Row struct {
	ID          models.EmployeeID
	Cells       []string
	Placeholder bool
}

// Columns are the table headings, in cell order.
var Columns = []string{"Name", "Email", "Phone Number", "Department", "Date of Joining", "Role"}

// Rows turns employees into table rows. An empty input yields exactly one
// placeholder row so the table body is never empty.
func Rows(employees []models.Employee) []Row {
	if len(employees) == 0 {
		return []Row{{Cells: []string{NoResultsText}, Placeholder: true}}
	}

	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, Row{
			ID: e.ID,
			Cells: []string{
				e.Name,
				e.Email,
				e.PhoneNumber,
				e.Department,
				FormatDate(e.DateOfJoining),
				e.Role,
			},
		})
	}
	return rows
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// FormatDate renders a wire date as M/D/YYYY. Unparseable values come back
// unchanged.
func FormatDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return raw
}
