package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// SMSPool — международный провайдер ("server1"). JSON API поверх
// form-encoded POST запросов, цены в USD, номера сгруппированы в пулы.
type SMSPool struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	buyClient *http.Client
	limiter   *rate.Limiter
}

// NewSMSPool создает адаптер SMSPool
func NewSMSPool(cfg Config) *SMSPool {
	return &SMSPool{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		client:    newHTTPClient(),
		buyClient: newBuyClient(),
		limiter:   newLimiter(cfg.RPS),
	}
}

func (p *SMSPool) ID() string        { return "smspool" }
func (p *SMSPool) Aliases() []string { return []string{"server1"} }

// CancelHold — SMSPool разрешает отмену сразу
func (p *SMSPool) CancelHold() time.Duration { return 0 }

func (p *SMSPool) RentalWindow() time.Duration { return defaultRentalWindow }

// post выполняет form-encoded POST и декодирует JSON ответ в out
func (p *SMSPool) post(ctx context.Context, httpClient *http.Client, path string, form url.Values, out any) error {
	if err := waitLimiter(ctx, p.limiter); err != nil {
		return err
	}

	form.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("smspool: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return transportErr("smspool", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus("smspool", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("smspool: %w: malformed response", domain.ErrProviderRejected)
	}

	return nil
}

// ListCountries получает страны провайдера
func (p *SMSPool) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var raw []struct {
		ID     json.Number `json:"ID"`
		Name   string      `json:"name"`
		Region string      `json:"region"`
	}
	if err := p.post(ctx, p.client, "/country/retrieve_all", url.Values{}, &raw); err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(raw))
	for _, entry := range raw {
		countries = append(countries, domain.Country{
			Code:   entry.ID.String(),
			Name:   entry.Name,
			Region: entry.Region,
		})
	}

	return countries, nil
}

// ListServices получает каталог сервисов с ценами и пулами
func (p *SMSPool) ListServices(ctx context.Context, country string) ([]domain.ServiceOffer, error) {
	form := url.Values{}
	form.Set("country", country)

	var raw []struct {
		Service string          `json:"service"`
		Name    string          `json:"name"`
		Price   decimal.Decimal `json:"price"`
		Pool    json.Number     `json:"pool"`
	}
	if err := p.post(ctx, p.client, "/request/prices", form, &raw); err != nil {
		return nil, err
	}

	offers := make([]domain.ServiceOffer, 0, len(raw))
	for _, entry := range raw {
		offers = append(offers, domain.ServiceOffer{
			ServiceCode:  entry.Service,
			Label:        entry.Name,
			BasePriceUSD: entry.Price,
			Pool:         entry.Pool.String(),
		})
	}

	return offers, nil
}

// Buy покупает номер. Параметр operator трактуется как пул.
func (p *SMSPool) Buy(ctx context.Context, service, country, pool string) (*domain.NumberPurchase, error) {
	form := url.Values{}
	form.Set("service", service)
	form.Set("country", country)
	if pool != "" {
		form.Set("pool", pool)
	}

	var raw struct {
		Success int             `json:"success"`
		OrderID string          `json:"order_id"`
		Number  string          `json:"number"`
		Cost    decimal.Decimal `json:"cost"`
		Message string          `json:"message"`
	}
	if err := p.post(ctx, p.buyClient, "/purchase/sms", form, &raw); err != nil {
		return nil, err
	}

	if raw.Success != 1 {
		msg := strings.ToLower(raw.Message)
		switch {
		case strings.Contains(msg, "no numbers") || strings.Contains(msg, "out of stock"):
			return nil, fmt.Errorf("smspool: %w", domain.ErrNoNumbersAvailable)
		case strings.Contains(msg, "balance"):
			return nil, fmt.Errorf("smspool: %w", domain.ErrInsufficientUpstreamBalance)
		default:
			return nil, fmt.Errorf("smspool: %w: %s", domain.ErrProviderRejected, raw.Message)
		}
	}

	return &domain.NumberPurchase{
		ActivationID: raw.OrderID,
		PhoneNumber:  normalizePhone(raw.Number),
		UpstreamCost: raw.Cost,
	}, nil
}

// Статусы активации SMSPool
const (
	smspoolStatusPending   = 1
	smspoolStatusExpired   = 2
	smspoolStatusReceived  = 3
	smspoolStatusResend    = 4
	smspoolStatusCancelled = 5
	smspoolStatusRefunded  = 6
)

// Poll опрашивает активацию
func (p *SMSPool) Poll(ctx context.Context, activationID string) (*domain.PollResult, error) {
	form := url.Values{}
	form.Set("orderid", activationID)

	var raw struct {
		Status  int    `json:"status"`
		SMS     string `json:"sms"`
		Message string `json:"message"`
	}
	if err := p.post(ctx, p.client, "/sms/check", form, &raw); err != nil {
		return nil, err
	}

	switch raw.Status {
	case smspoolStatusPending, smspoolStatusResend:
		return &domain.PollResult{Status: domain.PollStatusWaiting}, nil
	case smspoolStatusReceived:
		return &domain.PollResult{Status: domain.PollStatusReceived, OTP: raw.SMS}, nil
	case smspoolStatusExpired:
		return &domain.PollResult{Status: domain.PollStatusExpired}, nil
	case smspoolStatusCancelled, smspoolStatusRefunded:
		return &domain.PollResult{Status: domain.PollStatusCancelled}, nil
	default:
		return nil, fmt.Errorf("smspool: %w: unknown status %s", domain.ErrProviderRejected, strconv.Itoa(raw.Status))
	}
}

// Cancel отменяет активацию
func (p *SMSPool) Cancel(ctx context.Context, activationID string) (*domain.CancelResult, error) {
	form := url.Values{}
	form.Set("orderid", activationID)

	var raw struct {
		Success int    `json:"success"`
		Message string `json:"message"`
	}
	if err := p.post(ctx, p.client, "/sms/cancel", form, &raw); err != nil {
		return nil, err
	}

	if raw.Success != 1 {
		return &domain.CancelResult{Accepted: false, Reason: raw.Message}, nil
	}
	return &domain.CancelResult{Accepted: true}, nil
}

// Finish сообщает провайдеру об успешном получении SMS
func (p *SMSPool) Finish(ctx context.Context, activationID string) error {
	form := url.Values{}
	form.Set("orderid", activationID)

	var raw struct {
		Success int `json:"success"`
	}
	return p.post(ctx, p.client, "/request/success", form, &raw)
}
