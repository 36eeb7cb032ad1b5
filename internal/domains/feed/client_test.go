package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "First", "subtitle": "One", "body": "Body one"},
			{"id": 2, "title": "Second", "subtitle": "Two", "body": "Body two"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	records, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "First", records[0].Title)
	assert.Equal(t, "Body two", records[1].Body)
}

func TestClientFetchUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClientFetchMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestServiceUnavailableWhenNotLoaded(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, false)

	_, err := svc.List()
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = svc.GetByID(1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceGetByID(t *testing.T) {
	t.Parallel()

	svc := NewService([]Record{
		{ID: 1, Title: "First"},
		{ID: 7, Title: "Seventh"},
	}, true)

	record, err := svc.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, "Seventh", record.Title)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
