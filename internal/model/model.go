// Package model contains the back-office records served by the list API.
// I keep it lean and focused on data shapes without behavior; db tags are the column names.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single income or expense line of the studio's books.
type Transaction struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Type        string     `json:"type" db:"type"` // income, expense
	Category    string     `json:"category" db:"category"`
	Description string     `json:"description" db:"description"`
	Amount      float64    `json:"amount" db:"amount"`
	Currency    string     `json:"currency" db:"currency"`
	Status      string     `json:"status" db:"status"`
	ClientID    *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
	OccurredOn  time.Time  `json:"occurred_on" db:"occurred_on"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Invoice is a bill issued to a client.
type Invoice struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Number    string     `json:"number" db:"number"`
	ClientID  uuid.UUID  `json:"client_id" db:"client_id"`
	Amount    float64    `json:"amount" db:"amount"`
	Currency  string     `json:"currency" db:"currency"`
	Status    string     `json:"status" db:"status"`
	IssuedOn  time.Time  `json:"issued_on" db:"issued_on"`
	DueOn     time.Time  `json:"due_on" db:"due_on"`
	PaidAt    *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Client is a customer of the studio.
type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Industry  string    `json:"industry" db:"industry"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Employee is a member of staff.
type Employee struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Email      string    `json:"email" db:"email"`
	Department string    `json:"department" db:"department"`
	Position   string    `json:"position" db:"position"`
	Status     string    `json:"status" db:"status"`
	HiredOn    time.Time `json:"hired_on" db:"hired_on"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Salary is one payroll line for an employee and period (YYYY-MM).
type Salary struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	EmployeeID uuid.UUID  `json:"employee_id" db:"employee_id"`
	Period     string     `json:"period" db:"period"`
	Amount     float64    `json:"amount" db:"amount"`
	Currency   string     `json:"currency" db:"currency"`
	Status     string     `json:"status" db:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// TimeEntry is tracked work of an employee on a portfolio project.
type TimeEntry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	EmployeeID  uuid.UUID `json:"employee_id" db:"employee_id"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id"`
	Description string    `json:"description" db:"description"`
	Minutes     int       `json:"minutes" db:"minutes"`
	Billable    bool      `json:"billable" db:"billable"`
	Status      string    `json:"status" db:"status"`
	WorkDate    time.Time `json:"work_date" db:"work_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Article is a blog post.
type Article struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Locale      string     `json:"locale" db:"locale"`
	Status      string     `json:"status" db:"status"`
	CategoryID  uuid.UUID  `json:"category_id" db:"category_id"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ArticleCategory groups blog posts.
type ArticleCategory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Name      string    `json:"name" db:"name"`
	Locale    string    `json:"locale" db:"locale"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Author writes blog posts.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Bio       string    `json:"bio" db:"bio"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Project is a portfolio case study.
type Project struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Slug       string     `json:"slug" db:"slug"`
	Title      string     `json:"title" db:"title"`
	Summary    string     `json:"summary" db:"summary"`
	Status     string     `json:"status" db:"status"`
	CategoryID uuid.UUID  `json:"category_id" db:"category_id"`
	ClientID   *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// ProjectCategory groups portfolio projects.
type ProjectCategory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobPosting is an opening on the careers page.
type JobPosting struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Department string    `json:"department" db:"department"`
	Location   string    `json:"location" db:"location"`
	Type       string    `json:"type" db:"type"` // full_time, part_time, contract, internship
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// User is a back-office account. Credentials never leave the auth layer, so they are not mapped here.
type User struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Name        string     `json:"name" db:"name"`
	Role        string     `json:"role" db:"role"`
	Status      string     `json:"status" db:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
