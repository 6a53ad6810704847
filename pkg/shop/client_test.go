package shop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/config"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(config.ShopConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		RetryMax:     2,
		RetryBackoff: time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.ShopConfig{})
	require.Error(t, err)
}

func TestCallForwardsBearerToken(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"cartId":1,"userId":5,"items":[]}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background(), "tok-123", 5)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth.Load())
}

func TestCallStatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		code    pkgerrors.Code
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, "", pkgerrors.CodeUnauthorized, "please log in"},
		{"forbidden", http.StatusForbidden, "", pkgerrors.CodeForbidden, "access denied"},
		{"not found", http.StatusNotFound, "", pkgerrors.CodeNotFound, "get_cart not found"},
		{"bad request json message", http.StatusBadRequest, `{"message":"Quantity must be positive"}`, pkgerrors.CodeValidation, "Quantity must be positive"},
		{"conflict plain text", http.StatusConflict, "Category 'Audio' already exists", pkgerrors.CodeValidation, "Category 'Audio' already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := testClient(t, server.URL)
			_, err := client.GetCart(context.Background(), "tok", 5)
			require.True(t, pkgerrors.IsCode(err, tc.code), "expected %s, got %v", tc.code, err)
			require.Equal(t, tc.message, pkgerrors.As(err).Message())
		})
	}
}

func TestGetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Empty(t, products)
	require.Equal(t, int32(2), calls.Load())
}

func TestMutationsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	err := client.AddItem(context.Background(), "tok", AddCartItemRequest{UserID: 5, ProductID: 1, Quantity: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency), "expected dependency error, got %v", err)
	require.Equal(t, int32(1), calls.Load(), "a mutation must be sent exactly once")
}

func TestRemoteMessageExtraction(t *testing.T) {
	cases := map[string]string{
		`{"message":"top level"}`:           "top level",
		`{"error":{"message":"nested"}}`:    "nested",
		`{"title":"One or more errors"}`:    "One or more errors",
		`plain text rejection`:              "plain text rejection",
		`{"unrelated":"shape"}`:             "",
		``:                                  "",
		`{"message":"","title":"fallback"}`: "fallback",
	}
	for raw, want := range cases {
		require.Equal(t, want, remoteMessage([]byte(raw)), "body %q", raw)
	}
}
