package sweeper

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"registrar/config"
	usecasemocks "registrar/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestSweeper(t *testing.T, reg *config.RegistrationConfig, uc *usecasemocks.MockRegistrationUsecase) (*sweeper, *fxtest.Lifecycle) {
	t.Helper()

	cfg := &config.Config{Registration: reg}
	lc := fxtest.NewLifecycle(t)
	d, err := New(Params{
		Lc:     lc,
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		UC:     uc,
	})
	require.NoError(t, err)

	return d.(*sweeper), lc
}

func TestSweeper_ExpiresOnEveryTick(t *testing.T) {
	uc := usecasemocks.NewMockRegistrationUsecase(t)
	var calls atomic.Int32
	uc.EXPECT().ExpireStale(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, now time.Time) (int64, error) {
			assert.Equal(t, time.UTC, now.Location())
			if calls.Add(1) == 1 {
				return 0, errors.New("database is locked")
			}

			return 2, nil
		})

	s, lc := newTestSweeper(t, &config.RegistrationConfig{TokenTTL: time.Hour, SweepInterval: 5 * time.Millisecond}, uc)
	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	lc.RequireStop()
	assert.NoError(t, <-served)
}

func TestSweeper_DisabledWithoutExpiry(t *testing.T) {
	tests := []struct {
		name string
		reg  *config.RegistrationConfig
	}{
		{name: "no registration config", reg: nil},
		{name: "tokens never expire", reg: &config.RegistrationConfig{SweepInterval: time.Millisecond}},
		{name: "zero interval", reg: &config.RegistrationConfig{TokenTTL: time.Hour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecasemocks.NewMockRegistrationUsecase(t)
			s, lc := newTestSweeper(t, tt.reg, uc)
			lc.RequireStart()

			require.NoError(t, s.Serve(context.Background()))
			lc.RequireStop()
		})
	}
}

func TestSweeper_StopWithoutServe(t *testing.T) {
	uc := usecasemocks.NewMockRegistrationUsecase(t)
	_, lc := newTestSweeper(t, &config.RegistrationConfig{TokenTTL: time.Hour, SweepInterval: time.Minute}, uc)

	lc.RequireStart()
	lc.RequireStop()
}
