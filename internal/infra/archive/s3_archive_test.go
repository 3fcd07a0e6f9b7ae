package archive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Archive_Put(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotType   string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewS3Archive(Config{
		Bucket:    "exports",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
	})

	err := a.Put(context.Background(), "closings/salon-a/20240601_20240701.xlsx", []byte("xlsx"), "application/test")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/exports/closings/salon-a/20240601_20240701.xlsx", gotPath)
	assert.Equal(t, "application/test", gotType)
	assert.Equal(t, []byte("xlsx"), gotBody)
}

func TestS3Archive_PutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := NewS3Archive(Config{Bucket: "exports", Region: "us-east-1", Endpoint: srv.URL})

	err := a.Put(context.Background(), "k", []byte("x"), "application/test")
	assert.Error(t, err)
}
