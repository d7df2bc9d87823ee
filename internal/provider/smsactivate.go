package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// activateClient реализует текстовый протокол семейства SMS-Activate
// (handler_api.php), на котором работают DaisySMS и TigerSMS.
// Ответы — строки вида "ACCESS_NUMBER:id:phone" и "STATUS_OK:code".
type activateClient struct {
	name      string
	baseURL   string
	apiKey    string
	client    *http.Client
	buyClient *http.Client
	limiter   *rate.Limiter
}

func newActivateClient(name string, cfg Config) *activateClient {
	return &activateClient{
		name:      name,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		client:    newHTTPClient(),
		buyClient: newBuyClient(),
		limiter:   newLimiter(cfg.RPS),
	}
}

// call выполняет запрос протокола и возвращает тело ответа как строку
func (c *activateClient) call(ctx context.Context, httpClient *http.Client, params url.Values) (string, error) {
	if err := waitLimiter(ctx, c.limiter); err != nil {
		return "", err
	}

	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", c.name, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", transportErr(c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", unexpectedStatus(c.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportErr(c.name, err)
	}

	return strings.TrimSpace(string(body)), nil
}

// priceEntry представляет позицию ответа getPrices
type priceEntry struct {
	Cost  decimal.Decimal `json:"cost"`
	Count int             `json:"count"`
}

// listServices получает каталог через action=getPrices.
// Формат: {"<страна>": {"<сервис>": {"cost": 0.5, "count": 120}}}
func (c *activateClient) listServices(ctx context.Context, country string) ([]domain.ServiceOffer, error) {
	params := url.Values{}
	params.Set("action", "getPrices")
	params.Set("country", country)

	body, err := c.call(ctx, c.client, params)
	if err != nil {
		return nil, err
	}

	var prices map[string]map[string]priceEntry
	if err := json.Unmarshal([]byte(body), &prices); err != nil {
		return nil, fmt.Errorf("%s: %w: malformed getPrices response", c.name, domain.ErrProviderRejected)
	}

	services, ok := prices[country]
	if !ok {
		return nil, nil
	}

	offers := make([]domain.ServiceOffer, 0, len(services))
	for code, entry := range services {
		if entry.Count <= 0 {
			continue
		}
		offers = append(offers, domain.ServiceOffer{
			ServiceCode:  code,
			BasePriceUSD: entry.Cost,
		})
	}

	return offers, nil
}

// buy покупает номер через action=getNumber.
// Покупка идет без ретраев: повтор может арендовать второй номер.
func (c *activateClient) buy(ctx context.Context, service, country string) (*domain.NumberPurchase, error) {
	params := url.Values{}
	params.Set("action", "getNumber")
	params.Set("service", service)
	params.Set("country", country)

	body, err := c.call(ctx, c.buyClient, params)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(body, "ACCESS_NUMBER:"):
		parts := strings.SplitN(body, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s: %w: malformed getNumber response %q", c.name, domain.ErrProviderRejected, body)
		}
		return &domain.NumberPurchase{
			ActivationID: parts[1],
			PhoneNumber:  normalizePhone(parts[2]),
		}, nil
	case body == "NO_NUMBERS":
		return nil, fmt.Errorf("%s: %w", c.name, domain.ErrNoNumbersAvailable)
	case body == "NO_MONEY" || body == "NO_BALANCE":
		// Кончился баланс нашего аккаунта у провайдера, не пользователя
		return nil, fmt.Errorf("%s: %w", c.name, domain.ErrInsufficientUpstreamBalance)
	default:
		return nil, fmt.Errorf("%s: %w: %s", c.name, domain.ErrProviderRejected, body)
	}
}

// poll опрашивает активацию через action=getStatus
func (c *activateClient) poll(ctx context.Context, activationID string) (*domain.PollResult, error) {
	params := url.Values{}
	params.Set("action", "getStatus")
	params.Set("id", activationID)

	body, err := c.call(ctx, c.client, params)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(body, "STATUS_OK:"):
		return &domain.PollResult{
			Status: domain.PollStatusReceived,
			OTP:    strings.TrimPrefix(body, "STATUS_OK:"),
		}, nil
	case body == "STATUS_WAIT_CODE" || strings.HasPrefix(body, "STATUS_WAIT_RETRY"):
		return &domain.PollResult{Status: domain.PollStatusWaiting}, nil
	case body == "STATUS_CANCEL":
		return &domain.PollResult{Status: domain.PollStatusCancelled}, nil
	case body == "NO_ACTIVATION":
		return nil, fmt.Errorf("%s: %w", c.name, domain.ErrOrderGone)
	default:
		return nil, fmt.Errorf("%s: %w: %s", c.name, domain.ErrProviderRejected, body)
	}
}

// setStatus меняет статус активации (8 — отмена, 6 — завершение)
func (c *activateClient) setStatus(ctx context.Context, activationID, status string) (string, error) {
	params := url.Values{}
	params.Set("action", "setStatus")
	params.Set("status", status)
	params.Set("id", activationID)

	return c.call(ctx, c.client, params)
}

// cancel отменяет активацию
func (c *activateClient) cancel(ctx context.Context, activationID string) (*domain.CancelResult, error) {
	body, err := c.setStatus(ctx, activationID, "8")
	if err != nil {
		return nil, err
	}

	switch body {
	case "ACCESS_CANCEL":
		return &domain.CancelResult{Accepted: true}, nil
	case "EARLY_CANCEL_DENIED":
		return &domain.CancelResult{Accepted: false, Reason: "cancel requested too early"}, nil
	case "ACCESS_READY":
		return &domain.CancelResult{Accepted: false, Reason: "sms already received"}, nil
	case "NO_ACTIVATION":
		return nil, fmt.Errorf("%s: %w", c.name, domain.ErrOrderGone)
	default:
		return &domain.CancelResult{Accepted: false, Reason: body}, nil
	}
}

// finish помечает активацию завершенной
func (c *activateClient) finish(ctx context.Context, activationID string) error {
	_, err := c.setStatus(ctx, activationID, "6")
	return err
}
