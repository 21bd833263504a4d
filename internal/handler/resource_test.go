package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/studio-backoffice/internal/handler"
	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/model"
	"github.com/maxviazov/studio-backoffice/internal/resource"
	"github.com/maxviazov/studio-backoffice/internal/service"
)

// stubLister lets each test control the outcome and inspect the params it received.
type stubLister struct {
	res     listquery.Result[model.JobPosting]
	listErr error
	item    model.JobPosting
	getErr  error

	gotParams listquery.Params
	gotID     string
}

func (s *stubLister) List(_ context.Context, p listquery.Params) (listquery.Result[model.JobPosting], error) {
	s.gotParams = p
	return s.res, s.listErr
}

func (s *stubLister) Get(_ context.Context, id string) (model.JobPosting, error) {
	s.gotID = id
	return s.item, s.getErr
}

func jobsEngine(stub *stubLister) http.Handler {
	return newEngine(stubPinger{}, handler.NewResourceHandler[model.JobPosting]("jobs", stub))
}

const jobsPath = handler.APIV1Prefix + handler.AdminPrefix + "/jobs"

type envelope struct {
	Success     bool                 `json:"success"`
	Data        json.RawMessage      `json:"data"`
	Error       string               `json:"error"`
	Message     string               `json:"message"`
	FieldErrors []service.FieldError `json:"field_errors"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestResourceHandler_List_OK(t *testing.T) {
	id := uuid.New()
	stub := &stubLister{res: listquery.Result[model.JobPosting]{
		Items:      []model.JobPosting{{ID: id, Title: "Go engineer", Status: "open"}},
		Pagination: listquery.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
	}}

	w := serve(jobsEngine(stub), http.MethodGet, jobsPath+"?page=2&limit=5&status=open&status=closed&foo=bar")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, listquery.Params{"page": "2", "limit": "5", "status": "open", "foo": "bar"}, stub.gotParams)

	env := decode(t, w.Body.Bytes())
	assert.True(t, env.Success)
	var data listquery.Result[model.JobPosting]
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, stub.res.Pagination, data.Pagination)
	require.Len(t, data.Items, 1)
	assert.Equal(t, id, data.Items[0].ID)
}

func TestResourceHandler_List_EmptyItemsIsArray(t *testing.T) {
	q, err := listquery.Normalize(nil, nil, listquery.Limits{})
	require.NoError(t, err)
	stub := &stubLister{res: listquery.NewResult[model.JobPosting](nil, q, 0)}

	w := serve(jobsEngine(stub), http.MethodGet, jobsPath)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"items":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}}`,
		w.Body.String())
}

func TestResourceHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stub    *stubLister
		target  string
		status  int
		code    string
		message string
	}{
		{
			name:   "list invalid filter",
			stub:   &stubLister{listErr: service.NewInvalidInputError(service.FieldError{Field: "status", Message: "must be one of draft|open|closed"})},
			target: jobsPath + "?status=paused",
			status: http.StatusBadRequest, code: "invalid_input", message: "one or more fields are invalid",
		},
		{
			name:   "list retrieval failure",
			stub:   &stubLister{listErr: fmt.Errorf("%w: %w", service.ErrRetrievalFailed, errors.New("dial tcp 10.0.0.5:5432"))},
			target: jobsPath,
			status: http.StatusInternalServerError, code: "retrieval_failed", message: "failed to retrieve records",
		},
		{
			name:   "get not found",
			stub:   &stubLister{getErr: service.ErrNotFound},
			target: jobsPath + "/" + uuid.NewString(),
			status: http.StatusNotFound, code: "not_found", message: "record not found",
		},
		{
			name:   "get bad id",
			stub:   &stubLister{getErr: service.NewInvalidInputError(service.FieldError{Field: "id", Message: "must be a valid UUID"})},
			target: jobsPath + "/42",
			status: http.StatusBadRequest, code: "invalid_input", message: "one or more fields are invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(jobsEngine(tt.stub), http.MethodGet, tt.target)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			env := decode(t, w.Body.Bytes())
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Error)
			assert.Equal(t, tt.message, env.Message)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}

func TestResourceHandler_Get_OK(t *testing.T) {
	id := uuid.New()
	stub := &stubLister{item: model.JobPosting{ID: id, Title: "Designer"}}

	w := serve(jobsEngine(stub), http.MethodGet, jobsPath+"/"+id.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), stub.gotID)

	env := decode(t, w.Body.Bytes())
	var got model.JobPosting
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Designer", got.Title)
}

// untouchedClients fails the test if a rejected request reaches storage.
type untouchedClients struct{ t *testing.T }

func (u untouchedClients) Find(context.Context, listquery.Filter, int, int, []listquery.Order) ([]model.Client, error) {
	u.t.Error("Find called for a rejected request")
	return nil, nil
}

func (u untouchedClients) Count(context.Context, listquery.Filter) (int, error) {
	u.t.Error("Count called for a rejected request")
	return 0, nil
}

func (u untouchedClients) GetByID(context.Context, uuid.UUID) (model.Client, error) {
	return model.Client{}, nil
}

func TestResourceHandler_List_StatusOutsideEnumIsRejected(t *testing.T) {
	lister := service.NewLister[model.Client](resource.Clients, untouchedClients{t: t}, service.ListOptions{}, zerolog.Nop())
	r := newEngine(stubPinger{}, handler.NewResourceHandler[model.Client]("clients", lister))

	w := serve(r, http.MethodGet, handler.APIV1Prefix+handler.AdminPrefix+"/clients?status=archived")
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	env := decode(t, w.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "invalid_input", env.Error)
	require.Len(t, env.FieldErrors, 1)
	assert.Equal(t, "status", env.FieldErrors[0].Field)
}
