package link

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/noah-isme/cielo-link-api/internal/cielo"
	"github.com/noah-isme/cielo-link-api/internal/obs"
)

// Provider is the subset of the Cielo client the service depends on.
type Provider interface {
	Token(ctx context.Context) (string, error)
	CreateProduct(ctx context.Context, token string, req cielo.CreateProductRequest) (cielo.Product, error)
	GetProduct(ctx context.Context, token, id string) (cielo.Product, error)
	ListPayments(ctx context.Context, token, id string) ([]cielo.Order, error)
}

const (
	defaultDescription = "Link de pagamento"
	paidAtFallback     = "Data não disponível"

	// Display dates follow Brasília time approximated as a fixed UTC-3
	// offset, ignoring DST.
	displayTimeOffset = -3 * time.Hour
)

var verificationKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsVerificationKey reports whether the inbound product name is shaped like a
// provider-assigned link identifier. Classification is purely syntactic: a
// product legitimately named after a UUID is routed to verification.
func IsVerificationKey(name string) bool {
	if !verificationKeyPattern.MatchString(name) {
		return false
	}
	_, err := uuid.Parse(name)
	return err == nil
}

// Service sequences the provider calls behind link creation and payment
// verification. There is no state between calls: every request runs its own
// token fetch and call chain.
type Service struct {
	Provider Provider
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Process routes an inbound request to creation or verification. It is the
// single error boundary: every failure raised by the provider chain comes
// back as an error-shaped Result, never as an error value.
func (s *Service) Process(ctx context.Context, productName, description, priceInCents string) Result {
	var (
		res Result
		err error
	)
	if IsVerificationKey(productName) {
		res, err = s.Verify(ctx, productName)
	} else {
		res, err = s.Create(ctx, productName, description, priceInCents)
	}
	if err != nil {
		return Result{Status: StatusError, Message: "❌ Erro: " + err.Error()}
	}
	return res
}

// Create obtains a token, submits a shipping-exempt digital product and
// reshapes the reply. The display name carries the current Brasília date so
// repeated links for the same product stay distinguishable.
func (s *Service) Create(ctx context.Context, productName, description, priceInCents string) (Result, error) {
	ctx, span := otel.Tracer("link.Service").Start(ctx, "LinkService.Create")
	defer span.End()

	result := "error"
	defer func() {
		if obs.LinkCreateTotal != nil {
			obs.LinkCreateTotal.WithLabelValues(result).Inc()
		}
	}()

	token, err := s.Provider.Token(ctx)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	displayName := productName + " " + s.now().UTC().Add(displayTimeOffset).Format("02-01")
	if strings.TrimSpace(description) == "" {
		description = defaultDescription
	}

	req := cielo.CreateProductRequest{
		Type:        "Digital",
		Name:        displayName,
		Description: description,
		Price:       parseCents(priceInCents),
		Shipping:    cielo.Shipping{Type: "WithoutShipping", Name: "Sem envio"},
	}
	product, err := s.Provider.CreateProduct(ctx, token, req)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	var cents int64
	if req.Price != nil {
		cents = *req.Price
	}
	price := formatCents(cents)

	result = "success"
	span.SetAttributes(attribute.String("link.id", product.ID))
	return Result{
		Status:   StatusSuccess,
		Type:     TypeCreated,
		Name:     displayName,
		ShortURL: product.ShortURL,
		ID:       product.ID,
		Price:    price,
		Message: fmt.Sprintf("✅ Link gerado com sucesso!\n🔗 %s\n💰 Valor: R$ %s\n💳 Até 10x sem juros\n🆔 %s",
			product.ShortURL, price, product.ID),
	}, nil
}

// Verify looks up a link and its recorded payments using one token for both
// calls. The calls stay sequential; a pending payment is a successful result.
func (s *Service) Verify(ctx context.Context, id string) (Result, error) {
	ctx, span := otel.Tracer("link.Service").Start(ctx, "LinkService.Verify")
	defer span.End()
	span.SetAttributes(attribute.String("link.id", id))

	result, paymentStatus := "error", "none"
	defer func() {
		if obs.LinkVerifyTotal != nil {
			obs.LinkVerifyTotal.WithLabelValues(result, paymentStatus).Inc()
		}
	}()

	token, err := s.Provider.Token(ctx)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	product, err := s.Provider.GetProduct(ctx, token, id)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	orders, err := s.Provider.ListPayments(ctx, token, id)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	price := formatCents(product.Price)
	result = "success"

	if len(orders) > 0 {
		// The provider returns orders in creation order; the last entry is
		// the most recent payment. No re-sorting.
		paidAt := strings.TrimSpace(orders[len(orders)-1].CreatedDate)
		if paidAt == "" {
			paidAt = paidAtFallback
		}
		paymentStatus = PaymentApproved
		return Result{
			Status:        StatusSuccess,
			Type:          TypeVerified,
			Name:          product.Name,
			Price:         price,
			PaymentStatus: PaymentApproved,
			PaidAt:        paidAt,
			ProductID:     id,
			Message: fmt.Sprintf("✅ Pagamento confirmado!\n📦 %s\n💰 R$ %s\n✅ STATUS: APROVADO\n📅 Pago em: %s",
				product.Name, price, paidAt),
		}, nil
	}

	paymentStatus = PaymentPending
	return Result{
		Status:        StatusSuccess,
		Type:          TypeVerified,
		Name:          product.Name,
		Price:         price,
		PaymentStatus: PaymentPending,
		ProductID:     id,
		Message: fmt.Sprintf("⏳ Pagamento pendente\n📦 %s\n💰 R$ %s\n⌛ STATUS: AGUARDANDO PAGAMENTO",
			product.Name, price),
	}, nil
}

// parseCents extracts the leading integer prefix of the inbound price string,
// keeping the lenient parsing of the public contract. A string with no
// leading digits yields nil, which marshals as a null price the provider
// rejects.
func parseCents(s string) *int64 {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return nil
	}
	v, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatCents renders integer cents as a reais amount with a comma decimal
// separator: 15000 becomes "150,00".
func formatCents(cents int64) string {
	return strings.Replace(strconv.FormatFloat(float64(cents)/100, 'f', 2, 64), ".", ",", 1)
}
