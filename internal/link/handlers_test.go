package link_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cielo-link-api/internal/link"
)

func postCielo(t *testing.T, h *link.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/cielo", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Process(rec, req)
	return rec
}

func TestProcessMissingProductName(t *testing.T) {
	h := &link.Handler{Svc: &link.Service{Provider: &stubProvider{}}}

	rec := postCielo(t, h, `{"description":"sem nome"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "error", body["status"])
	require.Equal(t, "productName é obrigatório", body["message"])
}

func TestProcessMalformedBody(t *testing.T) {
	h := &link.Handler{Svc: &link.Service{Provider: &stubProvider{}}}

	rec := postCielo(t, h, `{"productName":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "error", body["status"])
}

func TestProcessBusinessFailureIsHTTP200(t *testing.T) {
	provider := &stubProvider{tokenErr: errors.New("Falha ao obter token: acesso negado")}
	h := &link.Handler{Svc: &link.Service{Provider: provider}}

	rec := postCielo(t, h, `{"productName":"Camiseta","priceInCents":"15000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res link.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, link.StatusError, res.Status)
	require.Contains(t, res.Message, "acesso negado")
}

func TestProcessCreateSuccess(t *testing.T) {
	h := &link.Handler{Svc: &link.Service{Provider: &stubProvider{}}}

	rec := postCielo(t, h, `{"productName":"Camiseta","description":"Algodão","priceInCents":"15000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res link.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, link.StatusSuccess, res.Status)
	require.Equal(t, link.TypeCreated, res.Type)
	require.Equal(t, "150,00", res.Price)
	require.NotEmpty(t, res.ID)
	require.NotEmpty(t, res.ShortURL)
}

func TestProcessVerifyThroughHandler(t *testing.T) {
	id := "0c7fbd6e-70c5-44b7-9cd5-94c7dd7e99aa"
	provider := &stubProvider{}
	h := &link.Handler{Svc: &link.Service{Provider: provider}}

	rec := postCielo(t, h, `{"productName":"`+id+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res link.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, link.TypeVerified, res.Type)
	require.Equal(t, link.PaymentPending, res.PaymentStatus)
	require.Equal(t, id, res.ProductID)
}

func TestOpenAPIUsesConfiguredServerURL(t *testing.T) {
	h := &link.Handler{PublicBaseURL: "https://pay.example.com"}

	req := httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil)
	rec := httptest.NewRecorder()
	h.OpenAPI(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "3.0.0", doc.OpenAPI)
	require.Len(t, doc.Servers, 1)
	require.Equal(t, "https://pay.example.com", doc.Servers[0].URL)
	require.Contains(t, doc.Paths, "/api/cielo")
}

func TestHandlerNotConfigured(t *testing.T) {
	h := &link.Handler{}
	rec := postCielo(t, h, `{"productName":"Camiseta"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
