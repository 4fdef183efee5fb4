package directory

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employee-directory/internal/models"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)

	employees, _ := args.Get(0).([]models.Employee)

	return employees, args.Error(1)
}

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{ID: "1", Name: "John Doe", Email: "john@x.com", PhoneNumber: "1234567890",
			Department: "Engineering", DateOfJoining: "2024-01-01", Role: "Developer"},
		{ID: "2", Name: "Priya Nair", Email: "priya@corp.io", PhoneNumber: "9876543210",
			Department: "HR", DateOfJoining: "2021-03-15", Role: "Recruiter"},
		{ID: "3", Name: "Li Wei", Email: "li.wei@corp.io", PhoneNumber: "5550001111",
			Department: "Finance", DateOfJoining: "2019-11-30", Role: "Analyst"},
	}
}

func ids(employees []models.Employee) []models.EmployeeID {
	out := make([]models.EmployeeID, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}

	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		desc  string
		query string
		want  []models.EmployeeID
	}{
		{"empty query keeps everything in order", "", []models.EmployeeID{"1", "2", "3"}},
		{"name, case-insensitive", "JOHN", []models.EmployeeID{"1"}},
		{"email domain", "corp.io", []models.EmployeeID{"2", "3"}},
		{"phone digits", "0001", []models.EmployeeID{"3"}},
		{"department", "hr", []models.EmployeeID{"2"}},
		{"role", "analyst", []models.EmployeeID{"3"}},
		{"matches across different fields", "e", []models.EmployeeID{"1", "2", "3"}},
		{"date is not searched", "2024", []models.EmployeeID{}},
		{"no match", "zebra", []models.EmployeeID{}},
	}

	for i, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got := Filter(sampleEmployees(), tc.query)

			assert.Equal(t, tc.want, ids(got), "TEST[%d], Failed.\n%s", i, tc.desc)
		})
	}
}

func TestFilter_SubstringProperty(t *testing.T) {
	employees := sampleEmployees()
	queries := []string{"a", "Jo", "@", "98", "ENG", "i", "x.c", " ", "ops"}

	for _, q := range queries {
		got := map[models.EmployeeID]bool{}
		for _, e := range Filter(employees, q) {
			got[e.ID] = true
		}

		for _, e := range employees {
			lq := strings.ToLower(q)
			want := false

			for _, f := range []string{e.Name, e.Email, e.PhoneNumber, e.Department, e.Role} {
				if strings.Contains(strings.ToLower(f), lq) {
					want = true
				}
			}

			assert.Equal(t, want, got[e.ID], "query %q employee %s", q, e.ID)
		}
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleEmployees()[:1])

	require.Len(t, rows, 1)
	assert.False(t, rows[0].Placeholder)
	assert.Equal(t, models.EmployeeID("1"), rows[0].ID)
	assert.Equal(t, []string{"John Doe", "john@x.com", "1234567890", "Engineering", "1/1/2024", "Developer"},
		rows[0].Cells)
	assert.Len(t, rows[0].Cells, len(Columns))
}

func TestRows_Placeholder(t *testing.T) {
	tests := []struct {
		desc      string
		employees []models.Employee
	}{
		{"nil collection", nil},
		{"empty collection", []models.Employee{}},
		{"query matching nothing", Filter(sampleEmployees(), "nobody")},
	}

	for i, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			rows := Rows(tc.employees)

			require.Len(t, rows, 1, "TEST[%d], Failed.\n%s", i, tc.desc)
			assert.True(t, rows[0].Placeholder)
			assert.Equal(t, []string{NoResultsText}, rows[0].Cells)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1/1/2024", FormatDate("2024-01-01"))
	assert.Equal(t, "3/15/2021", FormatDate("2021-03-15T00:00:00.000Z"))
	assert.Equal(t, "12/9/2020", FormatDate("2020-12-09T10:11:12Z"))
	assert.Equal(t, "someday", FormatDate("someday"))
	assert.Equal(t, "", FormatDate(""))
}

func TestDirectory_LoadAndFilter(t *testing.T) {
	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees(), nil).Once()

	d := New(lister, zerolog.Nop())
	d.Mount(context.Background())
	d.Mount(context.Background())

	assert.Len(t, d.Employees(), 3)
	assert.Equal(t, []models.EmployeeID{"2", "3"}, ids(d.Filter("CORP")))
	lister.AssertNumberOfCalls(t, "ListEmployees", 1)
}

func TestDirectory_LoadFailureFallsBackToEmpty(t *testing.T) {
	var buf bytes.Buffer

	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees(), nil).Once()
	lister.On("ListEmployees", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	d := New(lister, zerolog.New(&buf))
	d.Load(context.Background())
	require.Len(t, d.Employees(), 3)

	d.Load(context.Background())

	assert.Empty(t, d.Employees())
	assert.Len(t, Rows(d.Filter("")), 1)
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), `"level":"error"`)

	// a failed load still counts as loaded: no automatic retry
	d.Mount(context.Background())
	lister.AssertNumberOfCalls(t, "ListEmployees", 2)
}

func TestDirectory_Invalidate(t *testing.T) {
	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees()[:1], nil).Once()
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees(), nil).Once()

	d := New(lister, zerolog.Nop())
	d.Mount(context.Background())
	assert.Len(t, d.Employees(), 1)

	d.Invalidate()
	d.Mount(context.Background())

	assert.Len(t, d.Employees(), 3)
	lister.AssertNumberOfCalls(t, "ListEmployees", 2)
}

func TestDirectory_InvalidateDuringLoad(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(sampleEmployees()[:1], nil).Once()
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees(), nil).Once()

	d := New(lister, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		d.Mount(context.Background())
		close(done)
	}()

	<-started
	d.Invalidate()
	close(release)
	<-done

	d.Mount(context.Background())

	assert.Len(t, d.Employees(), 3)
	lister.AssertNumberOfCalls(t, "ListEmployees", 2)
}

func TestDirectory_ConcurrentMountsLoadOnce(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(sampleEmployees(), nil).Once()

	d := New(lister, zerolog.Nop())

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Mount(context.Background())
	}()

	<-started

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Mount(context.Background())
		}()
	}

	close(release)
	wg.Wait()

	assert.Len(t, d.Employees(), 3)
	lister.AssertNumberOfCalls(t, "ListEmployees", 1)
}

func TestDirectory_MountSurvivesCanceledRequest(t *testing.T) {
	lister := &mockLister{}
	lister.On("ListEmployees", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	})).Return(sampleEmployees(), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(lister, zerolog.Nop())
	d.Mount(ctx)

	assert.Len(t, d.Employees(), 3)
	lister.AssertExpectations(t)
}

func TestDirectory_EmployeesReturnsCopy(t *testing.T) {
	lister := &mockLister{}
	lister.On("ListEmployees", mock.Anything).Return(sampleEmployees(), nil)

	d := New(lister, zerolog.Nop())
	d.Load(context.Background())

	got := d.Employees()
	got[0].Name = "changed"

	assert.Equal(t, "John Doe", d.Employees()[0].Name)
}
