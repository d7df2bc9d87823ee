package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// Курс монеты 5sim к USD по умолчанию (1 монета ~ 1 RUB)
const defaultCoinToUSD = 0.013

// FiveSim — адаптер "Global" ("server2"). REST JSON API с Bearer
// авторизацией. Цены провайдер отдает в монетах, адаптер нормализует
// их к USD по курсу coin_to_usd до возврата наружу.
type FiveSim struct {
	baseURL   string
	apiKey    string
	coinToUSD decimal.Decimal
	client    *http.Client
	buyClient *http.Client
	limiter   *rate.Limiter
}

// NewFiveSim создает адаптер 5sim
func NewFiveSim(cfg Config) *FiveSim {
	coinToUSD := decimal.NewFromFloat(cfg.CoinToUSD)
	if coinToUSD.LessThanOrEqual(decimal.Zero) {
		coinToUSD = decimal.NewFromFloat(defaultCoinToUSD)
	}
	return &FiveSim{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		coinToUSD: coinToUSD,
		client:    newHTTPClient(),
		buyClient: newBuyClient(),
		limiter:   newLimiter(cfg.RPS),
	}
}

func (p *FiveSim) ID() string        { return "5sim" }
func (p *FiveSim) Aliases() []string { return []string{"server2"} }

// CancelHold — 5sim разрешает отмену сразу
func (p *FiveSim) CancelHold() time.Duration { return 0 }

func (p *FiveSim) RentalWindow() time.Duration { return defaultRentalWindow }

// get выполняет GET запрос с Bearer токеном
func (p *FiveSim) get(ctx context.Context, httpClient *http.Client, path string) ([]byte, int, error) {
	if err := waitLimiter(ctx, p.limiter); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("5sim: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, transportErr("5sim", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, transportErr("5sim", err)
	}

	return body, resp.StatusCode, nil
}

// toUSD конвертирует цену в монетах в USD
func (p *FiveSim) toUSD(coins decimal.Decimal) decimal.Decimal {
	return coins.Mul(p.coinToUSD).Round(4)
}

// ListCountries получает страны провайдера
func (p *FiveSim) ListCountries(ctx context.Context) ([]domain.Country, error) {
	body, status, err := p.get(ctx, p.client, "/v1/guest/countries")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, unexpectedStatus("5sim", status)
	}

	var raw map[string]struct {
		Text string `json:"text_en"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("5sim: %w: malformed countries response", domain.ErrProviderRejected)
	}

	countries := make([]domain.Country, 0, len(raw))
	for code, entry := range raw {
		name := entry.Text
		if name == "" {
			name = code
		}
		countries = append(countries, domain.Country{Code: code, Name: name})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Code < countries[j].Code })

	return countries, nil
}

// ListServices получает каталог продуктов страны, цены в монетах
// конвертируются в USD
func (p *FiveSim) ListServices(ctx context.Context, country string) ([]domain.ServiceOffer, error) {
	body, status, err := p.get(ctx, p.client, "/v1/guest/products/"+country+"/any")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, unexpectedStatus("5sim", status)
	}

	var raw map[string]struct {
		Category string          `json:"Category"`
		Price    decimal.Decimal `json:"Price"`
		Qty      int             `json:"Qty"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("5sim: %w: malformed products response", domain.ErrProviderRejected)
	}

	offers := make([]domain.ServiceOffer, 0, len(raw))
	for code, entry := range raw {
		if entry.Category != "activation" || entry.Qty <= 0 {
			continue
		}
		offers = append(offers, domain.ServiceOffer{
			ServiceCode:  code,
			BasePriceUSD: p.toUSD(entry.Price),
		})
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].ServiceCode < offers[j].ServiceCode })

	return offers, nil
}

// fivesimOrder представляет ответ на операции с активацией
type fivesimOrder struct {
	ID     json.Number     `json:"id"`
	Phone  string          `json:"phone"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
	SMS    []struct {
		Code string `json:"code"`
	} `json:"sms"`
}

// Buy покупает активацию. Пустой operator означает "any".
func (p *FiveSim) Buy(ctx context.Context, service, country, operator string) (*domain.NumberPurchase, error) {
	if operator == "" {
		operator = "any"
	}

	body, status, err := p.get(ctx, p.buyClient, "/v1/user/buy/activation/"+country+"/"+operator+"/"+service)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		// 5sim возвращает причину отказа плоским текстом
		reason := strings.ToLower(strings.TrimSpace(string(body)))
		switch {
		case strings.Contains(reason, "no free phones"):
			return nil, fmt.Errorf("5sim: %w", domain.ErrNoNumbersAvailable)
		case strings.Contains(reason, "not enough user balance"):
			return nil, fmt.Errorf("5sim: %w", domain.ErrInsufficientUpstreamBalance)
		case status >= 500:
			return nil, unexpectedStatus("5sim", status)
		default:
			return nil, fmt.Errorf("5sim: %w: %s", domain.ErrProviderRejected, reason)
		}
	}

	var order fivesimOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("5sim: %w: malformed buy response", domain.ErrProviderRejected)
	}

	return &domain.NumberPurchase{
		ActivationID: order.ID.String(),
		PhoneNumber:  normalizePhone(order.Phone),
		UpstreamCost: p.toUSD(order.Price),
	}, nil
}

// Poll опрашивает активацию
func (p *FiveSim) Poll(ctx context.Context, activationID string) (*domain.PollResult, error) {
	body, status, err := p.get(ctx, p.client, "/v1/user/check/"+activationID)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, fmt.Errorf("5sim: %w", domain.ErrOrderGone)
	}
	if status != http.StatusOK {
		return nil, unexpectedStatus("5sim", status)
	}

	var order fivesimOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("5sim: %w: malformed check response", domain.ErrProviderRejected)
	}

	switch order.Status {
	case "PENDING":
		return &domain.PollResult{Status: domain.PollStatusWaiting}, nil
	case "RECEIVED", "FINISHED":
		if len(order.SMS) == 0 {
			return &domain.PollResult{Status: domain.PollStatusWaiting}, nil
		}
		return &domain.PollResult{Status: domain.PollStatusReceived, OTP: order.SMS[0].Code}, nil
	case "CANCELED", "BANNED":
		return &domain.PollResult{Status: domain.PollStatusCancelled}, nil
	case "TIMEOUT":
		return &domain.PollResult{Status: domain.PollStatusExpired}, nil
	default:
		return nil, fmt.Errorf("5sim: %w: unknown status %q", domain.ErrProviderRejected, order.Status)
	}
}

// Cancel отменяет активацию
func (p *FiveSim) Cancel(ctx context.Context, activationID string) (*domain.CancelResult, error) {
	body, status, err := p.get(ctx, p.client, "/v1/user/cancel/"+activationID)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusOK:
		return &domain.CancelResult{Accepted: true}, nil
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("5sim: %w", domain.ErrOrderGone)
	case status >= 500:
		return nil, unexpectedStatus("5sim", status)
	default:
		return &domain.CancelResult{Accepted: false, Reason: strings.TrimSpace(string(body))}, nil
	}
}

// Finish помечает активацию завершенной
func (p *FiveSim) Finish(ctx context.Context, activationID string) error {
	_, status, err := p.get(ctx, p.client, "/v1/user/finish/"+activationID)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return unexpectedStatus("5sim", status)
	}
	return nil
}
