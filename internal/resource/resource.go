// Package resource is the static table of list endpoints: which table backs each
// one, which columns are read, and which query keys may filter it.
package resource

import (
	"github.com/maxviazov/studio-backoffice/internal/listquery"
)

// Definition describes one listable entity.
type Definition struct {
	// Name is the URL path segment under /admin.
	Name    string
	Table   string
	Columns []string
	Filters []listquery.AllowedFilter
}

// FilterKeys returns the allowed query keys in declaration order.
func (d Definition) FilterKeys() []string {
	keys := make([]string, 0, len(d.Filters))
	for _, f := range d.Filters {
		keys = append(keys, f.Key)
	}
	return keys
}

func text(key string, oneOf ...string) listquery.AllowedFilter {
	return listquery.AllowedFilter{Key: key, OneOf: oneOf}
}

func id(key string) listquery.AllowedFilter {
	return listquery.AllowedFilter{Key: key, Kind: listquery.KindUUID}
}

var (
	Transactions = Definition{
		Name:  "transactions",
		Table: "financial_transactions",
		Columns: []string{"id", "type", "category", "description", "amount", "currency", "status",
			"client_id", "occurred_on", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("type", "income", "expense"),
			text("category"),
			text("status", "pending", "completed", "cancelled"),
			id("client_id"),
		},
	}

	Invoices = Definition{
		Name:  "invoices",
		Table: "invoices",
		Columns: []string{"id", "number", "client_id", "amount", "currency", "status",
			"issued_on", "due_on", "paid_at", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("status", "draft", "sent", "paid", "overdue", "cancelled"),
			id("client_id"),
		},
	}

	Clients = Definition{
		Name:    "clients",
		Table:   "clients",
		Columns: []string{"id", "name", "email", "industry", "status", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("status", "active", "inactive"),
			text("industry"),
		},
	}

	Employees = Definition{
		Name:  "employees",
		Table: "employees",
		Columns: []string{"id", "first_name", "last_name", "email", "department", "position",
			"status", "hired_on", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("department"),
			text("position"),
			text("status", "active", "on_leave", "terminated"),
		},
	}

	Salaries = Definition{
		Name:  "salaries",
		Table: "salaries",
		Columns: []string{"id", "employee_id", "period", "amount", "currency", "status",
			"paid_at", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			id("employee_id"),
			text("period"),
			text("status", "pending", "paid"),
		},
	}

	TimeEntries = Definition{
		Name:  "time-entries",
		Table: "time_entries",
		Columns: []string{"id", "employee_id", "project_id", "description", "minutes", "billable",
			"status", "work_date", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			id("employee_id"),
			id("project_id"),
			text("status", "draft", "submitted", "approved", "rejected"),
		},
	}

	Articles = Definition{
		Name:  "articles",
		Table: "blog_articles",
		Columns: []string{"id", "slug", "title", "excerpt", "locale", "status", "category_id",
			"author_id", "published_at", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("status", "draft", "published", "archived"),
			id("category_id"),
			id("author_id"),
			text("locale"),
		},
	}

	ArticleCategories = Definition{
		Name:    "article-categories",
		Table:   "blog_categories",
		Columns: []string{"id", "slug", "name", "locale", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{text("locale")},
	}

	Authors = Definition{
		Name:    "authors",
		Table:   "blog_authors",
		Columns: []string{"id", "name", "email", "bio", "status", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{text("status", "active", "inactive")},
	}

	Projects = Definition{
		Name:  "projects",
		Table: "portfolio_projects",
		Columns: []string{"id", "slug", "title", "summary", "status", "category_id", "client_id",
			"created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("status", "draft", "published", "archived"),
			id("category_id"),
			id("client_id"),
		},
	}

	ProjectCategories = Definition{
		Name:    "project-categories",
		Table:   "portfolio_categories",
		Columns: []string{"id", "slug", "name", "created_at", "updated_at"},
	}

	JobPostings = Definition{
		Name:    "jobs",
		Table:   "job_postings",
		Columns: []string{"id", "title", "department", "location", "type", "status", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("status", "draft", "open", "closed"),
			text("department"),
			text("type", "full_time", "part_time", "contract", "internship"),
			text("location"),
		},
	}

	Users = Definition{
		Name:    "users",
		Table:   "users",
		Columns: []string{"id", "email", "name", "role", "status", "last_login_at", "created_at", "updated_at"},
		Filters: []listquery.AllowedFilter{
			text("role", "admin", "editor", "viewer"),
			text("status", "active", "disabled"),
		},
	}
)

// All lists every definition in the order the API documents them.
func All() []Definition {
	return []Definition{
		Transactions, Invoices, Clients, Employees, Salaries, TimeEntries,
		Articles, ArticleCategories, Authors, Projects, ProjectCategories,
		JobPostings, Users,
	}
}
