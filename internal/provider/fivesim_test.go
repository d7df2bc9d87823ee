package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fivesimServer поднимает фейковый upstream 5sim и записывает путь
// и заголовок авторизации последнего запроса
func fivesimServer(t *testing.T, respond func(path string) (int, string)) (*httptest.Server, *string, *string) {
	t.Helper()

	var lastPath, lastAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		lastAuth = r.Header.Get("Authorization")
		code, body := respond(lastPath)
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &lastPath, &lastAuth
}

func newTestFiveSim(srv *httptest.Server) *FiveSim {
	return NewFiveSim(Config{BaseURL: srv.URL, APIKey: "test-key", CoinToUSD: 0.013, RPS: 100})
}

func TestFiveSim_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("Success converts coins to USD", func(t *testing.T) {
		srv, path, auth := fivesimServer(t, func(string) (int, string) {
			return http.StatusOK, `{"id": 123456, "phone": "+79000381454", "price": 50, "status": "PENDING"}`
		})

		purchase, err := newTestFiveSim(srv).Buy(ctx, "whatsapp", "russia", "")
		require.NoError(t, err)
		assert.Equal(t, "123456", purchase.ActivationID)
		assert.Equal(t, "+79000381454", purchase.PhoneNumber)
		assert.True(t, purchase.UpstreamCost.Equal(decimal.RequireFromString("0.65")), "cost = %s", purchase.UpstreamCost)

		assert.Equal(t, "/v1/user/buy/activation/russia/any/whatsapp", *path, "empty operator means any")
		assert.Equal(t, "Bearer test-key", *auth)
	})

	t.Run("No free phones", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusBadRequest, "no free phones"
		})

		_, err := newTestFiveSim(srv).Buy(ctx, "whatsapp", "russia", "")
		assert.ErrorIs(t, err, domain.ErrNoNumbersAvailable)
	})

	t.Run("Upstream account out of money", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusBadRequest, "not enough user balance"
		})

		_, err := newTestFiveSim(srv).Buy(ctx, "whatsapp", "russia", "")
		assert.ErrorIs(t, err, domain.ErrInsufficientUpstreamBalance)
	})

	t.Run("Upstream 5xx", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusInternalServerError, ""
		})

		_, err := newTestFiveSim(srv).Buy(ctx, "whatsapp", "russia", "")
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})
}

func TestFiveSim_Poll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		body       string
		wantStatus domain.PollStatus
		wantOTP    string
	}{
		{"Pending", `{"id": 123456, "status": "PENDING"}`, domain.PollStatusWaiting, ""},
		{"Received", `{"id": 123456, "status": "RECEIVED", "sms": [{"code": "482913"}]}`, domain.PollStatusReceived, "482913"},
		{"Received without sms yet", `{"id": 123456, "status": "RECEIVED", "sms": []}`, domain.PollStatusWaiting, ""},
		{"Finished", `{"id": 123456, "status": "FINISHED", "sms": [{"code": "482913"}]}`, domain.PollStatusReceived, "482913"},
		{"Cancelled", `{"id": 123456, "status": "CANCELED"}`, domain.PollStatusCancelled, ""},
		{"Banned number", `{"id": 123456, "status": "BANNED"}`, domain.PollStatusCancelled, ""},
		{"Timed out", `{"id": 123456, "status": "TIMEOUT"}`, domain.PollStatusExpired, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, path, _ := fivesimServer(t, func(string) (int, string) {
				return http.StatusOK, tt.body
			})

			result, err := newTestFiveSim(srv).Poll(ctx, "123456")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantOTP, result.OTP)
			assert.Equal(t, "/v1/user/check/123456", *path)
		})
	}

	t.Run("Order gone", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusNotFound, "order not found"
		})

		_, err := newTestFiveSim(srv).Poll(ctx, "123456")
		assert.ErrorIs(t, err, domain.ErrOrderGone)
	})
}

func TestFiveSim_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted", func(t *testing.T) {
		srv, path, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusOK, `{"id": 123456, "status": "CANCELED"}`
		})

		result, err := newTestFiveSim(srv).Cancel(ctx, "123456")
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, "/v1/user/cancel/123456", *path)
	})

	t.Run("Order gone", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusNotFound, "order not found"
		})

		_, err := newTestFiveSim(srv).Cancel(ctx, "123456")
		assert.ErrorIs(t, err, domain.ErrOrderGone)
	})

	t.Run("Rejected", func(t *testing.T) {
		srv, _, _ := fivesimServer(t, func(string) (int, string) {
			return http.StatusBadRequest, "order has sms"
		})

		result, err := newTestFiveSim(srv).Cancel(ctx, "123456")
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Equal(t, "order has sms", result.Reason)
	})
}

func TestFiveSim_ListServices(t *testing.T) {
	srv, path, _ := fivesimServer(t, func(string) (int, string) {
		return http.StatusOK, `{
			"whatsapp": {"Category": "activation", "Price": 50, "Qty": 10},
			"telegram": {"Category": "activation", "Price": 20, "Qty": 0},
			"vds": {"Category": "hosting", "Price": 500, "Qty": 5}
		}`
	})

	offers, err := newTestFiveSim(srv).ListServices(context.Background(), "russia")
	require.NoError(t, err)
	require.Len(t, offers, 1, "hosting products and empty stock are filtered out")
	assert.Equal(t, "whatsapp", offers[0].ServiceCode)
	assert.True(t, offers[0].BasePriceUSD.Equal(decimal.RequireFromString("0.65")))
	assert.Equal(t, "/v1/guest/products/russia/any", *path)
}

func TestFiveSim_ListCountries(t *testing.T) {
	srv, _, _ := fivesimServer(t, func(string) (int, string) {
		return http.StatusOK, `{"russia": {"text_en": "Russia"}, "usa": {"text_en": "USA"}}`
	})

	countries, err := newTestFiveSim(srv).ListCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "russia", countries[0].Code)
	assert.Equal(t, "Russia", countries[0].Name)
}

func TestFiveSim_Identity(t *testing.T) {
	p := NewFiveSim(Config{})
	assert.Equal(t, "5sim", p.ID())
	assert.Contains(t, p.Aliases(), "server2")
	assert.Zero(t, p.CancelHold())
}
