package app

import (
	"github.com/rs/zerolog"

	"github.com/maxviazov/studio-backoffice/internal/handler"
	"github.com/maxviazov/studio-backoffice/internal/model"
	"github.com/maxviazov/studio-backoffice/internal/resource"
	"github.com/maxviazov/studio-backoffice/internal/service"
)

// routes binds every resource definition to its model type.
func routes(s *Storage, opts service.ListOptions, logger zerolog.Logger) []handler.Route {
	return []handler.Route{
		route[model.Transaction](s, resource.Transactions, opts, logger),
		route[model.Invoice](s, resource.Invoices, opts, logger),
		route[model.Client](s, resource.Clients, opts, logger),
		route[model.Employee](s, resource.Employees, opts, logger),
		route[model.Salary](s, resource.Salaries, opts, logger),
		route[model.TimeEntry](s, resource.TimeEntries, opts, logger),
		route[model.Article](s, resource.Articles, opts, logger),
		route[model.ArticleCategory](s, resource.ArticleCategories, opts, logger),
		route[model.Author](s, resource.Authors, opts, logger),
		route[model.Project](s, resource.Projects, opts, logger),
		route[model.ProjectCategory](s, resource.ProjectCategories, opts, logger),
		route[model.JobPosting](s, resource.JobPostings, opts, logger),
		route[model.User](s, resource.Users, opts, logger),
	}
}

func route[T any](s *Storage, def resource.Definition, opts service.ListOptions, logger zerolog.Logger) handler.Route {
	svc := service.NewLister[T](def, collectionFor[T](s, def), opts, logger)
	return handler.NewResourceHandler[T](def.Name, svc)
}
