package resource_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/studio-backoffice/internal/model"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

// Every column a definition reads must land in a db-tagged field, and vice versa,
// otherwise row-to-struct scanning fails at runtime.
func TestColumnsMatchModels(t *testing.T) {
	cases := []struct {
		def   resource.Definition
		model any
	}{
		{resource.Transactions, model.Transaction{}},
		{resource.Invoices, model.Invoice{}},
		{resource.Clients, model.Client{}},
		{resource.Employees, model.Employee{}},
		{resource.Salaries, model.Salary{}},
		{resource.TimeEntries, model.TimeEntry{}},
		{resource.Articles, model.Article{}},
		{resource.ArticleCategories, model.ArticleCategory{}},
		{resource.Authors, model.Author{}},
		{resource.Projects, model.Project{}},
		{resource.ProjectCategories, model.ProjectCategory{}},
		{resource.JobPostings, model.JobPosting{}},
		{resource.Users, model.User{}},
	}
	assert.Len(t, cases, len(resource.All()))

	for _, tc := range cases {
		t.Run(tc.def.Name, func(t *testing.T) {
			rt := reflect.TypeOf(tc.model)
			var tags []string
			for i := 0; i < rt.NumField(); i++ {
				tags = append(tags, rt.Field(i).Tag.Get("db"))
			}
			assert.ElementsMatch(t, tags, tc.def.Columns)
			assert.Contains(t, tc.def.Columns, "created_at")
			assert.Contains(t, tc.def.Columns, "id")
		})
	}
}

func TestFiltersReferenceColumns(t *testing.T) {
	for _, def := range resource.All() {
		for _, f := range def.Filters {
			col := f.Column
			if col == "" {
				col = f.Key
			}
			assert.Contains(t, def.Columns, col, "%s filter %s", def.Name, f.Key)
		}
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range resource.All() {
		assert.False(t, seen[def.Name], "duplicate resource %s", def.Name)
		seen[def.Name] = true
	}
}
