package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdapterResolver разрешает адаптер провайдера по имени или алиасу
type AdapterResolver interface {
	Get(name string) (domain.ProviderAdapter, error)
}

// PricingService реализует domain.PricingService.
// Конфигурация ценообразования общая на процесс: загружается при старте
// и перечитывается после изменения администратором.
type PricingService struct {
	adapters    AdapterResolver
	cache       domain.ServiceCache
	pricingRepo domain.PricingRepository
	logger      *zap.Logger

	mu  sync.RWMutex
	cfg *domain.PricingConfig
}

// NewPricingService создает новый PricingService
func NewPricingService(adapters AdapterResolver, cache domain.ServiceCache, pricingRepo domain.PricingRepository, logger *zap.Logger) *PricingService {
	return &PricingService{
		adapters:    adapters,
		cache:       cache,
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// Reload перечитывает конфигурацию ценообразования из БД
func (s *PricingService) Reload(ctx context.Context) error {
	cfg, err := s.pricingRepo.GetPricingConfig(ctx)
	if err != nil {
		return fmt.Errorf("pricing service: failed to load pricing config: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	return nil
}

// config возвращает текущую конфигурацию, загружая ее при первом обращении
func (s *PricingService) config(ctx context.Context) (*domain.PricingConfig, error) {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, nil
}

// ListCountries возвращает страны провайдера
func (s *PricingService) ListCountries(ctx context.Context, providerName string) ([]domain.Country, error) {
	adapter, err := s.adapters.Get(providerName)
	if err != nil {
		return nil, err
	}

	countries, err := adapter.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("pricing service: failed to list countries for %s: %w", adapter.ID(), err)
	}

	return countries, nil
}

// ListServices возвращает каталог с клиентскими ценами и write-through
// записывает снимок базовых цен в кэш. Цена в листинге совпадает с
// результатом CalculatePrice для тех же входов.
func (s *PricingService) ListServices(ctx context.Context, providerName, country string) ([]domain.ServiceQuote, error) {
	adapter, err := s.adapters.Get(providerName)
	if err != nil {
		return nil, err
	}

	cfg, err := s.config(ctx)
	if err != nil {
		return nil, err
	}

	offers, err := adapter.ListServices(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("pricing service: failed to list services for %s: %w", adapter.ID(), err)
	}

	if err := s.storeSnapshot(ctx, adapter.ID(), country, offers); err != nil {
		// Листинг важнее кэша: показываем каталог, даже если снимок не записался
		s.logger.Warn("failed to store services snapshot",
			zap.String("provider", adapter.ID()),
			zap.String("country", country),
			zap.Error(err),
		)
	}

	markup := cfg.MarkupFor(adapter.ID())
	quotes := make([]domain.ServiceQuote, 0, len(offers))
	for _, offer := range offers {
		_, finalNGN := applyMarkup(offer.BasePriceUSD, markup, cfg.NGNPerUSD)
		quotes = append(quotes, domain.ServiceQuote{
			ServiceCode:   offer.ServiceCode,
			Label:         offer.Label,
			BasePriceUSD:  offer.BasePriceUSD,
			FinalPriceNGN: finalNGN,
			Pool:          offer.Pool,
			Operators:     offer.Operators,
		})
	}

	return quotes, nil
}

func (s *PricingService) storeSnapshot(ctx context.Context, providerID, country string, offers []domain.ServiceOffer) error {
	entries := make([]*domain.CachedService, 0, len(offers))
	now := time.Now()
	for _, offer := range offers {
		entries = append(entries, &domain.CachedService{
			Provider:     providerID,
			CountryCode:  country,
			ServiceCode:  offer.ServiceCode,
			BasePriceUSD: offer.BasePriceUSD,
			Pool:         offer.Pool,
			LastSeen:     now,
		})
	}
	return s.cache.Put(ctx, entries)
}

// baseUSD возвращает базовую цену из кэша; при промахе один раз
// перечитывает каталог и повторяет попытку
func (s *PricingService) baseUSD(ctx context.Context, adapter domain.ProviderAdapter, service, country string) (decimal.Decimal, error) {
	entry, err := s.cache.Get(ctx, adapter.ID(), country, service)
	if err != nil {
		s.logger.Warn("service cache read failed", zap.Error(err))
	}
	if entry != nil {
		return entry.BasePriceUSD, nil
	}

	offers, err := adapter.ListServices(ctx, country)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pricing service: failed to refresh catalog for %s: %w", adapter.ID(), err)
	}
	if err := s.storeSnapshot(ctx, adapter.ID(), country, offers); err != nil {
		s.logger.Warn("failed to store services snapshot", zap.Error(err))
	}

	for _, offer := range offers {
		if offer.ServiceCode == service {
			return offer.BasePriceUSD, nil
		}
	}

	return decimal.Zero, fmt.Errorf("pricing service: %s/%s/%s: %w", adapter.ID(), country, service, domain.ErrServiceUnavailable)
}

// CalculatePrice вычисляет итоговую цену для клиента.
// Расчет детерминированный: при неизменных конфигурации и кэше
// повторный вызов дает тот же результат.
func (s *PricingService) CalculatePrice(ctx context.Context, providerName, service, country, operator, promoCode string) (*domain.PriceQuote, error) {
	adapter, err := s.adapters.Get(providerName)
	if err != nil {
		return nil, err
	}

	cfg, err := s.config(ctx)
	if err != nil {
		return nil, err
	}

	base, err := s.baseUSD(ctx, adapter, service, country)
	if err != nil {
		return nil, err
	}

	markup := cfg.MarkupFor(adapter.ID())
	markedUSD, markedNGN := applyMarkup(base, markup, cfg.NGNPerUSD)

	quote := &domain.PriceQuote{
		FinalPriceNGN: markedNGN,
		FinalPriceUSD: markedUSD,
		BaseUSD:       base,
		MarkupPct:     markup,
	}

	if promoCode != "" {
		promo, err := s.validatePromo(ctx, promoCode)
		if err != nil {
			return nil, err
		}
		applyPromo(quote, promo, cfg.NGNPerUSD)
	}

	return quote, nil
}

// validatePromo проверяет промокод: существует, не просрочен,
// лимит использований не исчерпан
func (s *PricingService) validatePromo(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.pricingRepo.GetPromoCode(ctx, code)
	if err != nil {
		if errors.Is(err, postgres.ErrPromoNotFound) {
			return nil, domain.ErrInvalidPromoCode
		}
		return nil, fmt.Errorf("pricing service: failed to get promo code %q: %w", code, err)
	}

	if promo.ExpiresAt != nil && !promo.ExpiresAt.After(time.Now()) {
		return nil, domain.ErrInvalidPromoCode
	}
	if promo.MaxUses != nil && promo.UsedCount >= *promo.MaxUses {
		return nil, domain.ErrInvalidPromoCode
	}

	return promo, nil
}

// UpdateConfig сохраняет конфигурацию ценообразования и перечитывает
// process-wide копию
func (s *PricingService) UpdateConfig(ctx context.Context, cfg *domain.PricingConfig) error {
	if cfg.NGNPerUSD.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("pricing service: %w: ngn_per_usd must be positive", ErrInvalidInput)
	}

	if err := s.pricingRepo.UpdatePricingConfig(ctx, cfg); err != nil {
		return fmt.Errorf("pricing service: failed to update pricing config: %w", err)
	}

	return s.Reload(ctx)
}

// CreatePromo создает промокод
func (s *PricingService) CreatePromo(ctx context.Context, promo *domain.PromoCode) error {
	switch promo.Kind {
	case domain.PromoKindPercent, domain.PromoKindFixedNGN, domain.PromoKindFixedUSD:
	default:
		return fmt.Errorf("pricing service: %w: unknown promo kind %q", ErrInvalidInput, promo.Kind)
	}
	if promo.Code == "" || promo.Value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("pricing service: %w: promo code and positive value are required", ErrInvalidInput)
	}

	if err := s.pricingRepo.CreatePromoCode(ctx, promo); err != nil {
		return fmt.Errorf("pricing service: failed to create promo code %q: %w", promo.Code, err)
	}

	return nil
}

// applyMarkup применяет наценку провайдера и конвертирует в NGN
func applyMarkup(baseUSD, markupPct, ngnPerUSD decimal.Decimal) (markedUSD, markedNGN decimal.Decimal) {
	factor := decimal.NewFromInt(1).Add(markupPct.Div(decimal.NewFromInt(100)))
	markedUSD = baseUSD.Mul(factor).Round(4)
	markedNGN = markedUSD.Mul(ngnPerUSD).Round(2)
	return markedUSD, markedNGN
}

// applyPromo применяет промокод к рассчитанной цене
func applyPromo(quote *domain.PriceQuote, promo *domain.PromoCode, ngnPerUSD decimal.Decimal) {
	applied := &domain.PromoApplied{
		Code:  promo.Code,
		Kind:  promo.Kind,
		Value: promo.Value,
	}

	switch promo.Kind {
	case domain.PromoKindPercent:
		applied.DiscountNGN = quote.FinalPriceNGN.Mul(promo.Value).Div(decimal.NewFromInt(100)).Round(2)
		applied.DiscountUSD = quote.FinalPriceUSD.Mul(promo.Value).Div(decimal.NewFromInt(100)).Round(4)
		quote.FinalPriceNGN = quote.FinalPriceNGN.Sub(applied.DiscountNGN)
		quote.FinalPriceUSD = quote.FinalPriceUSD.Sub(applied.DiscountUSD)

	case domain.PromoKindFixedNGN:
		discount := decimal.Min(promo.Value.Round(2), quote.FinalPriceNGN)
		applied.DiscountNGN = discount
		applied.DiscountUSD = discount.Div(ngnPerUSD).Round(4)
		quote.FinalPriceNGN = quote.FinalPriceNGN.Sub(discount)
		quote.FinalPriceUSD = quote.FinalPriceUSD.Sub(applied.DiscountUSD)

	case domain.PromoKindFixedUSD:
		discountUSD := decimal.Min(promo.Value.Round(4), quote.FinalPriceUSD)
		applied.DiscountUSD = discountUSD
		newUSD := quote.FinalPriceUSD.Sub(discountUSD)
		newNGN := newUSD.Mul(ngnPerUSD).Round(2)
		applied.DiscountNGN = quote.FinalPriceNGN.Sub(newNGN)
		quote.FinalPriceUSD = newUSD
		quote.FinalPriceNGN = newNGN
	}

	quote.Promo = applied
}
