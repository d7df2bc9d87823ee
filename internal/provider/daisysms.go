package provider

import (
	"context"
	"time"

	"github.com/numrent/numrent/internal/domain"
)

// Код страны США в протоколе DaisySMS
const daisyCountryUS = "187"

// DaisySMS — адаптер "US Server". Провайдер выдает только номера США
// и говорит на протоколе семейства SMS-Activate.
type DaisySMS struct {
	api *activateClient
}

// NewDaisySMS создает адаптер DaisySMS
func NewDaisySMS(cfg Config) *DaisySMS {
	return &DaisySMS{api: newActivateClient("daisysms", cfg)}
}

func (p *DaisySMS) ID() string        { return "us_server" }
func (p *DaisySMS) Aliases() []string { return []string{"daisysms"} }

// CancelHold — DaisySMS запрещает отмену раньше трех минут после покупки
func (p *DaisySMS) CancelHold() time.Duration { return 3 * time.Minute }

func (p *DaisySMS) RentalWindow() time.Duration { return defaultRentalWindow }

// ListCountries возвращает единственную страну провайдера
func (p *DaisySMS) ListCountries(_ context.Context) ([]domain.Country, error) {
	return []domain.Country{
		{Code: daisyCountryUS, Name: "United States", Region: "America"},
	}, nil
}

// ListServices получает каталог сервисов с ценами в USD
func (p *DaisySMS) ListServices(ctx context.Context, country string) ([]domain.ServiceOffer, error) {
	if country == "" {
		country = daisyCountryUS
	}
	return p.api.listServices(ctx, country)
}

// Buy покупает номер
func (p *DaisySMS) Buy(ctx context.Context, service, country, _ string) (*domain.NumberPurchase, error) {
	if country == "" {
		country = daisyCountryUS
	}
	return p.api.buy(ctx, service, country)
}

// Poll опрашивает активацию
func (p *DaisySMS) Poll(ctx context.Context, activationID string) (*domain.PollResult, error) {
	return p.api.poll(ctx, activationID)
}

// Cancel отменяет активацию
func (p *DaisySMS) Cancel(ctx context.Context, activationID string) (*domain.CancelResult, error) {
	return p.api.cancel(ctx, activationID)
}

// Finish помечает активацию завершенной
func (p *DaisySMS) Finish(ctx context.Context, activationID string) error {
	return p.api.finish(ctx, activationID)
}
