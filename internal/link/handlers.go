package link

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/cielo-link-api/internal/common"
)

// Handler exposes the creation/verification endpoint and the static schema.
type Handler struct {
	Svc           *Service
	Validate      *validator.Validate
	PublicBaseURL string
}

type processReq struct {
	ProductName  string `json:"productName" validate:"required"`
	Description  string `json:"description"`
	PriceInCents string `json:"priceInCents"`
}

// Process handles POST /api/cielo. The only inbound validation is that
// productName is present; everything past that point answers 200 with the
// dispatcher's Result, error-shaped or not.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "serviço não configurado")
		return
	}
	var req processReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if err := h.validate().Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "productName é obrigatório")
		return
	}
	common.JSON(w, http.StatusOK, h.Svc.Process(r.Context(), req.ProductName, req.Description, req.PriceInCents))
}

// OpenAPI handles GET /api/openapi.json.
func (h *Handler) OpenAPI(w http.ResponseWriter, _ *http.Request) {
	base := "http://localhost:3000"
	if h != nil && h.PublicBaseURL != "" {
		base = h.PublicBaseURL
	}
	common.JSON(w, http.StatusOK, openAPIDocument(base))
}

func (h *Handler) validate() *validator.Validate {
	if h.Validate != nil {
		return h.Validate
	}
	return validator.New()
}
