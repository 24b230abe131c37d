package gateway

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/kevin997/csl-payments/internal/pkg/models"
	"github.com/kevin997/csl-payments/internal/pkg/payerr"
)

// Provider codes known to the registry
const (
	CodeStripe      = "stripe"
	CodePayPal      = "paypal"
	CodeMTNMoMo     = "mtn_momo"
	CodeOrangeMoney = "orange_money"
)

// Constructor builds a gateway bound to one environment's credentials
type Constructor func(creds models.GatewayCredentials, client *http.Client) (PaymentGateway, error)

// Registry maps provider codes to gateway constructors
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
	client       *http.Client
}

// NewRegistry creates a registry with all built-in providers registered.
// The shared HTTP client carries the per-call timeout for every adapter.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	r := &Registry{
		constructors: make(map[string]Constructor),
		client:       &http.Client{Timeout: timeout},
	}

	r.Register(CodeStripe, NewStripeGateway)
	r.Register(CodePayPal, NewPayPalGateway)
	r.Register(CodeMTNMoMo, NewMTNMoMoGateway)
	r.Register(CodeOrangeMoney, NewOrangeMoneyGateway)

	return r
}

// Register binds a provider code to a constructor
func (r *Registry) Register(code string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[code] = ctor
}

// Supported reports whether a provider code is registered
func (r *Registry) Supported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[code]
	return ok
}

// Codes lists the registered provider codes
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.constructors))
	for code := range r.constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// New produces an initialized gateway for the provider code bound to the
// given credentials. Unknown codes and missing credentials are configuration
// errors, not payment errors.
func (r *Registry) New(code string, creds models.GatewayCredentials) (PaymentGateway, error) {
	r.mu.RLock()
	ctor, ok := r.constructors[code]
	r.mu.RUnlock()

	if !ok {
		return nil, payerr.Newf(payerr.KindConfiguration, "unsupported payment gateway: %s", code)
	}

	gw, err := ctor(creds, r.client)
	if err != nil {
		return nil, err
	}
	return gw, nil
}
