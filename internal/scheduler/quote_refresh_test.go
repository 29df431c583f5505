package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpdater falha um número programado de vezes antes de suceder.
type fakeUpdater struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (f *fakeUpdater) AtualizarCotacoes(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.calls <= f.failures {
		return 0, errors.New("fonte indisponível")
	}
	return 3, nil
}

func (f *fakeUpdater) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestService(updater *fakeUpdater, maxRetries int) *QuoteRefreshService {
	return &QuoteRefreshService{
		updater: updater,
		config: QuoteRefreshConfig{
			Interval:   time.Minute,
			MaxRetries: maxRetries,
			RetryDelay: time.Millisecond,
			Enabled:    true,
		},
	}
}

func TestAtualizarCotacoes_SucessoNaPrimeiraTentativa(t *testing.T) {
	updater := &fakeUpdater{}
	service := newTestService(updater, 3)

	err := service.AtualizarCotacoes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, updater.callCount())
}

func TestAtualizarCotacoes_RecuperaAposFalhas(t *testing.T) {
	// Falha três vezes e sucede na última retentativa permitida
	updater := &fakeUpdater{failures: 3}
	service := newTestService(updater, 3)

	err := service.AtualizarCotacoes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, updater.callCount())
}

func TestAtualizarCotacoes_AbandonaAposEsgotarTentativas(t *testing.T) {
	updater := &fakeUpdater{failures: 10}
	service := newTestService(updater, 3)

	err := service.AtualizarCotacoes(context.Background())

	require.Error(t, err)
	// Execução inicial mais três retentativas, nunca infinito
	assert.Equal(t, 4, updater.callCount())
}

func TestAtualizarCotacoes_ExecucaoConcorrenteRecusada(t *testing.T) {
	updater := &fakeUpdater{}
	service := newTestService(updater, 3)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	err := service.AtualizarCotacoes(context.Background())

	// Recusa silenciosa: nenhuma chamada ao coletor
	require.NoError(t, err)
	assert.Zero(t, updater.callCount())
}

func TestDispatch_RetornaIDImediatamente(t *testing.T) {
	updater := &fakeUpdater{}
	service := newTestService(updater, 1)

	taskID, err := service.Dispatch()

	require.NoError(t, err)
	assert.Len(t, taskID, 6)

	// A execução acontece em background
	assert.Eventually(t, func() bool {
		return updater.callCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestStatus(t *testing.T) {
	updater := &fakeUpdater{}
	service := newTestService(updater, 3)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastRunStartedAt)

	require.NoError(t, service.AtualizarCotacoes(context.Background()))

	status = service.Status()
	assert.NotNil(t, status.LastRunStartedAt)
	assert.NotNil(t, status.LastRunCompletedAt)
}
