package gateway

import (
	"time"

	natspkg "github.com/kevin997/csl-payments/internal/pkg/nats"
	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/services/payments"
	httpgw "github.com/kevin997/csl-payments/services/payments/gateway/http"
	"github.com/kevin997/csl-payments/services/payments/gateway/natsgw"
)

// PaymentGW aggregates the external collaborator clients behind the
// payments.PaymentGW interface
type PaymentGW struct {
	taxClient      *httpgw.TaxClient
	exchangeClient *httpgw.ExchangeClient
	natsGateway    *natsgw.Gateway
}

// NewPaymentGW creates the gateway aggregate from application config
func NewPaymentGW(cfg *models.Config, natsClient *natspkg.Client) payments.PaymentGW {
	timeout := 10 * time.Second

	return &PaymentGW{
		taxClient:      httpgw.NewTaxClient(cfg.Services.TaxServiceURL, timeout),
		exchangeClient: httpgw.NewExchangeClient(cfg.Services.ExchangeServiceURL, timeout),
		natsGateway:    natsgw.NewGateway(natsClient),
	}
}
