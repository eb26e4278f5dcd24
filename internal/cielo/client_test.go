package cielo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cielo-link-api/internal/cielo"
	"github.com/noah-isme/cielo-link-api/internal/common"
)

func newClient(srv *httptest.Server) *cielo.Client {
	c := cielo.New(srv.URL, "Zm9vOmJhcg==")
	c.HTTPClient = srv.Client()
	return c
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	code := common.ErrorCode(err)
	require.NotEmpty(t, code, "expected an AppError, got %v", err)
	return code
}

func TestTokenSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/public/v2/token", r.URL.Path)
		require.Equal(t, "Basic Zm9vOmJhcg==", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-123", "expires_in": 1200})
	}))
	defer srv.Close()

	token, err := newClient(srv).Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
}

func TestTokenFailureKeepsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("acesso negado"))
	}))
	defer srv.Close()

	_, err := newClient(srv).Token(context.Background())
	require.Error(t, err)
	require.Equal(t, cielo.ErrAuthFailed, appCode(t, err))
	require.Contains(t, err.Error(), "Falha ao obter token: acesso negado")
}

func TestCreateProductSuccess(t *testing.T) {
	price := int64(15000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/v1/products/", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Digital", payload["Type"])
		require.Equal(t, float64(15000), payload["Price"])
		require.Equal(t, "WithoutShipping", payload["Shipping"].(map[string]any)["Type"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "9c5f0c3e-1f0a-4ccb-9f51-1e0f6e2a2a11",
			"shortUrl": "https://cielo.link/abc",
		})
	}))
	defer srv.Close()

	product, err := newClient(srv).CreateProduct(context.Background(), "tok-123", cielo.CreateProductRequest{
		Type:        "Digital",
		Name:        "Camiseta 29-02",
		Description: "Link de pagamento",
		Price:       &price,
		Shipping:    cielo.Shipping{Type: "WithoutShipping", Name: "Sem envio"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://cielo.link/abc", product.ShortURL)
	require.Equal(t, "9c5f0c3e-1f0a-4ccb-9f51-1e0f6e2a2a11", product.ID)
}

func TestCreateProductNilPriceMarshalsNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, present := payload["Price"]
		require.True(t, present)
		require.Nil(t, payload["Price"])
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Price is required"})
	}))
	defer srv.Close()

	_, err := newClient(srv).CreateProduct(context.Background(), "tok-123", cielo.CreateProductRequest{Type: "Digital"})
	require.Error(t, err)
	require.Equal(t, cielo.ErrCreateFailed, appCode(t, err))
	require.Contains(t, err.Error(), "Erro na criação:")
	require.Contains(t, err.Error(), "Price is required")
}

func TestGetProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(srv).GetProduct(context.Background(), "tok-123", "0c7fbd6e-70c5-44b7-9cd5-94c7dd7e99aa")
	require.Error(t, err)
	require.Equal(t, cielo.ErrNotFound, appCode(t, err))
	require.Contains(t, err.Error(), "Produto não encontrado: 0c7fbd6e-70c5-44b7-9cd5-94c7dd7e99aa")
}

func TestListPaymentsToleratesNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	orders, err := newClient(srv).ListPayments(context.Background(), "tok-123", "0c7fbd6e-70c5-44b7-9cd5-94c7dd7e99aa")
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestListPaymentsKeepsProviderOrdering(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/v1/products/abc/payments", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]string{
				{"createdDate": "2024-02-27T10:00:00"},
				{"createdDate": "2024-01-01T08:00:00"},
			},
		})
	}))
	defer srv.Close()

	orders, err := newClient(srv).ListPayments(context.Background(), "tok-123", "abc")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "2024-01-01T08:00:00", orders[1].CreatedDate)
}

func TestTransportErrorSurfacesAsAppError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := cielo.New(srv.URL, "Zm9vOmJhcg==").Token(context.Background())
	require.Error(t, err)
	require.Equal(t, cielo.ErrTransport, appCode(t, err))

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.NotNil(t, appErr.Err)
}
