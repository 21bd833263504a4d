package listquery_test

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
)

var jobFilters = []listquery.AllowedFilter{
	{Key: "status", OneOf: []string{"draft", "open", "closed"}},
	{Key: "department"},
	{Key: "client_id", Kind: listquery.KindUUID},
	{Key: "kind", Column: "type"},
}

func TestNormalize_Defaults(t *testing.T) {
	cases := []struct {
		name string
		raw  listquery.Params
	}{
		{"empty", listquery.Params{}},
		{"non numeric", listquery.Params{"page": "abc", "limit": "ten"}},
		{"zero", listquery.Params{"page": "0", "limit": "0"}},
		{"negative", listquery.Params{"page": "-3", "limit": "-1"}},
		{"blank", listquery.Params{"page": " ", "limit": ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := listquery.Normalize(tc.raw, jobFilters, listquery.Limits{})
			require.NoError(t, err)
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 10, q.Limit)
			assert.Equal(t, 0, q.Skip)
			assert.Empty(t, q.Filter)
			assert.Equal(t, listquery.DefaultOrder, q.Order)
		})
	}
}

func TestNormalize_SkipIsPageMinusOneTimesLimit(t *testing.T) {
	for page := 1; page <= 6; page++ {
		for _, limit := range []int{1, 5, 10, 33} {
			raw := listquery.Params{"page": strconv.Itoa(page), "limit": strconv.Itoa(limit)}
			q, err := listquery.Normalize(raw, nil, listquery.Limits{})
			require.NoError(t, err)
			assert.Equal(t, (page-1)*limit, q.Skip, "page=%d limit=%d", page, limit)
		}
	}
}

func TestNormalize_ClampsLimit(t *testing.T) {
	q, err := listquery.Normalize(listquery.Params{"limit": "1000000"}, nil, listquery.Limits{})
	require.NoError(t, err)
	assert.Equal(t, listquery.MaxLimit, q.Limit)

	q, err = listquery.Normalize(listquery.Params{"limit": "70"}, nil, listquery.Limits{Default: 20, Max: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, q.Limit)

	q, err = listquery.Normalize(listquery.Params{}, nil, listquery.Limits{Default: 20, Max: 50})
	require.NoError(t, err)
	assert.Equal(t, 20, q.Limit)
}

func TestNormalize_DropsUnknownAndEmptyKeys(t *testing.T) {
	raw := listquery.Params{
		"status":     "open",
		"department": "",
		"salary":     "1000000",
		"; DROP":     "x",
	}
	q, err := listquery.Normalize(raw, jobFilters, listquery.Limits{})
	require.NoError(t, err)
	assert.Equal(t, listquery.Filter{"status": "open"}, q.Filter)
}

func TestNormalize_MapsKeyToColumn(t *testing.T) {
	q, err := listquery.Normalize(listquery.Params{"kind": "contract"}, jobFilters, listquery.Limits{})
	require.NoError(t, err)
	assert.Equal(t, listquery.Filter{"type": "contract"}, q.Filter)
}

func TestNormalize_RejectsBadValues(t *testing.T) {
	raw := listquery.Params{"status": "archived", "client_id": "not-a-uuid"}
	_, err := listquery.Normalize(raw, jobFilters, listquery.Limits{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, listquery.ErrInvalidParams))

	var ve *listquery.ValidationError
	require.True(t, errors.As(err, &ve))
	keys := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		keys = append(keys, v.Key)
	}
	assert.ElementsMatch(t, []string{"status", "client_id"}, keys)
}

func TestParamsFromValues_FirstValueWins(t *testing.T) {
	v := url.Values{"status": {"open", "closed"}, "page": {"2"}, "empty": {}}
	p := listquery.ParamsFromValues(v)
	assert.Equal(t, listquery.Params{"status": "open", "page": "2"}, p)
}

func TestNormalize_HugePageDoesNotOverflow(t *testing.T) {
	q, err := listquery.Normalize(listquery.Params{"page": "9223372036854775807", "limit": "100"}, nil, listquery.Limits{})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, q.Page)
	assert.Positive(t, q.Skip)
}

func TestNormalize_HugeMaxLimitKeepsSkipPositive(t *testing.T) {
	raw := listquery.Params{"page": "9223372036854775807", "limit": "9223372036854775807"}
	q, err := listquery.Normalize(raw, nil, listquery.Limits{Max: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, listquery.LimitCeiling, q.Limit)
	assert.Equal(t, (q.Page-1)*q.Limit, q.Skip)
	assert.Positive(t, q.Skip)
}

func TestNormalize_CanonicalizesUUIDFilters(t *testing.T) {
	const canonical = "0000000a-0000-4000-8000-0000000000bb"
	inputs := []string{
		canonical,
		"0000000A-0000-4000-8000-0000000000BB",
		"urn:uuid:0000000a-0000-4000-8000-0000000000bb",
		"{0000000a-0000-4000-8000-0000000000bb}",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			q, err := listquery.Normalize(listquery.Params{"client_id": in}, jobFilters, listquery.Limits{})
			require.NoError(t, err)
			assert.Equal(t, listquery.Filter{"client_id": canonical}, q.Filter)
		})
	}
}
