package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/numrent/numrent/internal/domain"
)

// TigerSMS — международный провайдер на протоколе семейства SMS-Activate
type TigerSMS struct {
	api *activateClient
}

// NewTigerSMS создает адаптер TigerSMS
func NewTigerSMS(cfg Config) *TigerSMS {
	return &TigerSMS{api: newActivateClient("tigersms", cfg)}
}

func (p *TigerSMS) ID() string        { return "tigersms" }
func (p *TigerSMS) Aliases() []string { return nil }

// CancelHold — TigerSMS разрешает отмену сразу
func (p *TigerSMS) CancelHold() time.Duration { return 0 }

func (p *TigerSMS) RentalWindow() time.Duration { return defaultRentalWindow }

// ListCountries получает страны через action=getCountries.
// Формат: {"<код>": {"eng": "Russia", ...}}
func (p *TigerSMS) ListCountries(ctx context.Context) ([]domain.Country, error) {
	params := url.Values{}
	params.Set("action", "getCountries")

	body, err := p.api.call(ctx, p.api.client, params)
	if err != nil {
		return nil, err
	}

	var raw map[string]struct {
		Eng string `json:"eng"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("tigersms: %w: malformed getCountries response", domain.ErrProviderRejected)
	}

	countries := make([]domain.Country, 0, len(raw))
	for code, entry := range raw {
		countries = append(countries, domain.Country{Code: code, Name: entry.Eng})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Code < countries[j].Code })

	return countries, nil
}

// ListServices получает каталог сервисов с ценами в USD
func (p *TigerSMS) ListServices(ctx context.Context, country string) ([]domain.ServiceOffer, error) {
	return p.api.listServices(ctx, country)
}

// Buy покупает номер
func (p *TigerSMS) Buy(ctx context.Context, service, country, _ string) (*domain.NumberPurchase, error) {
	return p.api.buy(ctx, service, country)
}

// Poll опрашивает активацию
func (p *TigerSMS) Poll(ctx context.Context, activationID string) (*domain.PollResult, error) {
	return p.api.poll(ctx, activationID)
}

// Cancel отменяет активацию
func (p *TigerSMS) Cancel(ctx context.Context, activationID string) (*domain.CancelResult, error) {
	return p.api.cancel(ctx, activationID)
}

// Finish помечает активацию завершенной
func (p *TigerSMS) Finish(ctx context.Context, activationID string) error {
	return p.api.finish(ctx, activationID)
}
