// Package contract holds behavior suites every storage backend must pass. Backends
// wire them up from their own _test.go files with factories for a clean store.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/model"
	"github.com/maxviazov/studio-backoffice/internal/repository"
	"github.com/maxviazov/studio-backoffice/internal/resource"
)

// Seeder inserts fixtures straight into the job_postings table.
type Seeder func(ctx context.Context, jobs []model.JobPosting) error

type CollectionFactory func(t *testing.T) (repo repository.Collection[model.JobPosting], seed Seeder, cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, repo repository.Collection[model.JobPosting], seed Seeder, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

var epoch = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// JobID returns a stable, readable id: JobID(7) is 00000000-0000-0000-0000-000000000007.
func JobID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

// Fixtures returns twelve open postings created an hour apart (JobID(12) newest)
// plus three closed ones interleaved between them.
func Fixtures() []model.JobPosting {
	jobs := make([]model.JobPosting, 0, 15)
	for n := 1; n <= 12; n++ {
		typ := "full_time"
		if n%4 == 0 {
			typ = "contract"
		}
		jobs = append(jobs, job(n, "open", typ, epoch.Add(time.Duration(n)*time.Hour)))
	}
	for n := 13; n <= 15; n++ {
		jobs = append(jobs, job(n, "closed", "full_time", epoch.Add(time.Duration(n-12)*time.Hour+30*time.Minute)))
	}
	return jobs
}

func job(n int, status, typ string, created time.Time) model.JobPosting {
	return model.JobPosting{
		ID:         JobID(n),
		Title:      fmt.Sprintf("Opening %d", n),
		Department: "Engineering",
		Location:   "Remote",
		Type:       typ,
		Status:     status,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func ids(jobs []model.JobPosting) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func fetch(t *testing.T, repo repository.Collection[model.JobPosting], raw listquery.Params) listquery.Result[model.JobPosting] {
	t.Helper()
	q, err := listquery.Normalize(raw, resource.JobPostings.Filters, listquery.Limits{})
	require.NoError(t, err)
	res, err := listquery.Fetch(context.Background(), repo, q)
	require.NoError(t, err)
	return res
}

func RunCollectionContract(t *testing.T, makeRepo CollectionFactory) {
	t.Helper()

	t.Run("filtered_second_page", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		res := fetch(t, repo, listquery.Params{"page": "2", "limit": "5", "status": "open"})

		assert.Equal(t, []uuid.UUID{JobID(7), JobID(6), JobID(5), JobID(4), JobID(3)}, ids(res.Items))
		assert.Equal(t, listquery.Pagination{Page: 2, Limit: 5, Total: 12, Pages: 3}, res.Pagination)
		for _, j := range res.Items {
			assert.Equal(t, "open", j.Status)
		}
	})

	t.Run("pages_are_disjoint_and_complete", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		seen := map[uuid.UUID]bool{}
		var prev time.Time
		for page := 1; page <= 4; page++ {
			res := fetch(t, repo, listquery.Params{"page": fmt.Sprint(page), "limit": "4"})
			for _, j := range res.Items {
				assert.False(t, seen[j.ID], "record %s repeated on page %d", j.ID, page)
				seen[j.ID] = true
				if !prev.IsZero() {
					assert.False(t, j.CreatedAt.After(prev), "created_at must not increase")
				}
				prev = j.CreatedAt
			}
			assert.Equal(t, 15, res.Pagination.Total)
			assert.Equal(t, 4, res.Pagination.Pages)
		}
		assert.Len(t, seen, 15)
	})

	t.Run("defaults_return_newest_ten", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		res := fetch(t, repo, nil)
		require.Len(t, res.Items, 10)
		assert.Equal(t, JobID(12), res.Items[0].ID)
		assert.Equal(t, listquery.Pagination{Page: 1, Limit: 10, Total: 15, Pages: 2}, res.Pagination)
	})

	t.Run("filters_combine_with_and", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		res := fetch(t, repo, listquery.Params{"status": "open", "type": "contract", "ignored": "x"})
		assert.Equal(t, []uuid.UUID{JobID(12), JobID(8), JobID(4)}, ids(res.Items))
		assert.Equal(t, 3, res.Pagination.Total)
	})

	t.Run("no_match_is_empty_success", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		res := fetch(t, repo, listquery.Params{"department": "Legal"})
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, listquery.Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}, res.Pagination)
	})

	t.Run("page_past_the_end_keeps_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		require.NoError(t, seed(context.Background(), Fixtures()))

		res := fetch(t, repo, listquery.Params{"page": "9", "limit": "5"})
		assert.Empty(t, res.Items)
		assert.Equal(t, 15, res.Pagination.Total)
		assert.Equal(t, 3, res.Pagination.Pages)
	})

	t.Run("equal_timestamps_break_on_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		same := epoch.Add(48 * time.Hour)
		require.NoError(t, seed(context.Background(), []model.JobPosting{
			job(21, "open", "full_time", same),
			job(23, "open", "full_time", same),
			job(22, "open", "full_time", same),
		}))

		first, err := repo.Find(context.Background(), nil, 0, 2, listquery.DefaultOrder)
		require.NoError(t, err)
		second, err := repo.Find(context.Background(), nil, 2, 2, listquery.DefaultOrder)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{JobID(23), JobID(22)}, ids(first))
		assert.Equal(t, []uuid.UUID{JobID(21)}, ids(second))
	})

	t.Run("uuid_filter_accepts_any_spelling", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		target := job(31, "open", "full_time", epoch.Add(72*time.Hour))
		target.ID = uuid.MustParse("0000000a-0000-4000-8000-0000000000bb")
		require.NoError(t, seed(ctx, append(Fixtures(), target)))

		byID := []listquery.AllowedFilter{{Key: "id", Kind: listquery.KindUUID}}
		for _, in := range []string{
			"0000000A-0000-4000-8000-0000000000BB",
			"urn:uuid:0000000a-0000-4000-8000-0000000000bb",
			"{0000000a-0000-4000-8000-0000000000bb}",
		} {
			q, err := listquery.Normalize(listquery.Params{"id": in}, byID, listquery.Limits{})
			require.NoError(t, err)
			res, err := listquery.Fetch(ctx, repo, q)
			require.NoError(t, err, in)
			assert.Equal(t, []uuid.UUID{target.ID}, ids(res.Items), in)
			assert.Equal(t, 1, res.Pagination.Total, in)
		}
	})

	t.Run("mixed_offsets_order_by_instant", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		// 15:00 at UTC-5 is an hour after 19:00 UTC
		est := time.FixedZone("EST", -5*60*60)
		require.NoError(t, seed(context.Background(), []model.JobPosting{
			job(41, "open", "full_time", epoch.Add(10*time.Hour)),
			job(42, "open", "full_time", epoch.Add(11*time.Hour).In(est)),
		}))

		first, err := repo.Find(context.Background(), nil, 0, 10, listquery.DefaultOrder)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{JobID(42), JobID(41)}, ids(first))
	})

	t.Run("count_matches_filter", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		require.NoError(t, seed(ctx, Fixtures()))

		total, err := repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 15, total)
		closed, err := repo.Count(ctx, listquery.Filter{"status": "closed"})
		require.NoError(t, err)
		assert.Equal(t, 3, closed)
	})

	t.Run("get_by_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		require.NoError(t, seed(ctx, Fixtures()))

		got, err := repo.GetByID(ctx, JobID(5))
		require.NoError(t, err)
		assert.Equal(t, "Opening 5", got.Title)
		assert.True(t, got.CreatedAt.Equal(epoch.Add(5*time.Hour)), "created_at round-trips, got %s", got.CreatedAt)
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), JobID(999))
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("page_and_count_share_the_transaction", func(t *testing.T) {
		tx, repo, seed, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		require.NoError(t, seed(ctx, Fixtures()))

		q, err := listquery.Normalize(listquery.Params{"status": "closed"}, resource.JobPostings.Filters, listquery.Limits{})
		require.NoError(t, err)

		var res listquery.Result[model.JobPosting]
		err = tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			res, err = listquery.Fetch(ctx, repo, q, listquery.Sequential())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{JobID(15), JobID(14), JobID(13)}, ids(res.Items))
		assert.Equal(t, 3, res.Pagination.Total)
	})

	t.Run("error_from_fn_is_returned", func(t *testing.T) {
		tx, _, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		marker := errors.New("boom")
		err := tx.WithinTx(context.Background(), func(context.Context) error { return marker })
		assert.ErrorIs(t, err, marker)
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		assert.NoError(t, p.Ping(context.Background()))
	})
}
