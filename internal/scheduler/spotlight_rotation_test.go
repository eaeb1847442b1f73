package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/spotlighting"
	"go.uber.org/mock/gomock"
)

type rotationMocks struct {
	businessRepo  *mocks.MockBusinessRepository
	metricsRepo   *mocks.MockEngagementMetricsRepository
	spotlightRepo *mocks.MockSpotlightRepository
	historyRepo   *mocks.MockSpotlightHistoryRepository
	voteRepo      *mocks.MockSpotlightVoteRepository
}

func newRotationService(ctrl *gomock.Controller, now time.Time) (*SpotlightRotationService, *rotationMocks) {
	m := &rotationMocks{
		businessRepo:  mocks.NewMockBusinessRepository(ctrl),
		metricsRepo:   mocks.NewMockEngagementMetricsRepository(ctrl),
		spotlightRepo: mocks.NewMockSpotlightRepository(ctrl),
		historyRepo:   mocks.NewMockSpotlightHistoryRepository(ctrl),
		voteRepo:      mocks.NewMockSpotlightVoteRepository(ctrl),
	}

	eligibility := spotlighting.NewEligibilityFilter(m.businessRepo, m.spotlightRepo, m.historyRepo)
	selector := spotlighting.NewSelector(m.metricsRepo, m.spotlightRepo, m.voteRepo, eligibility)

	service := &SpotlightRotationService{
		selector:      selector,
		spotlightRepo: m.spotlightRepo,
		config: SpotlightRotationConfig{
			CronSchedule:   "*/5 * * * *",
			Enabled:        true,
			MinInterval:    60 * time.Second,
			ManualCooldown: 30 * time.Second,
		},
		nowFn: func() time.Time { return now },
	}

	return service, m
}

func TestSpotlightRotationService_Rotate_Guardas(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Rotação já em andamento é no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newRotationService(ctrl, now)
		service.rotationInProgress = true

		// Nenhuma chamada de repositório é esperada
		err := service.Rotate()
		assert.NoError(t, err)
	})

	t.Run("Tick dentro do intervalo mínimo é descartado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newRotationService(ctrl, now)
		service.lastRotationStartedAt = now.Add(-30 * time.Second)

		err := service.Rotate()
		assert.NoError(t, err)
	})

	t.Run("Rotação manual ignora o intervalo mínimo mas não a exclusão mútua", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newRotationService(ctrl, now)
		service.lastRotationStartedAt = now.Add(-30 * time.Second)

		// forced: rotação prossegue mesmo dentro do intervalo mínimo.
		// Nenhum tipo está devido, mas o arquivamento sempre acontece.
		recent := &domain.Spotlight{CreatedAt: now.Add(-1 * time.Hour)}
		m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeDaily).Return(recent, nil)
		m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeWeekly).Return(recent, nil)
		m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeMonthly).Return(recent, nil)
		m.spotlightRepo.EXPECT().DeactivateExpired(now).Return(int64(0), nil)

		err := service.rotateAt(now, true)
		assert.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, false, status["rotation_in_progress"])
		assert.Equal(t, now, status["last_rotation_started_at"])
	})
}

func TestSpotlightRotationService_Rotate_TodosTiposDevido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newRotationService(ctrl, now)

	// Sem spotlight prévio todos os tipos estão devidos. Pool vazio: o lote
	// vigente é arquivado e nenhuma seleção nova é gravada.
	for _, spotlightType := range domain.SpotlightTypes {
		m.spotlightRepo.EXPECT().GetMostRecent(spotlightType).Return(nil, nil)
		m.spotlightRepo.EXPECT().DeactivateType(spotlightType).Return(int64(1), nil)
	}

	m.businessRepo.EXPECT().HasVerifiedBusiness().Return(true, nil).Times(3)
	m.businessRepo.EXPECT().ListActive(true).Return([]*domain.Business{}, nil).Times(3)

	m.spotlightRepo.EXPECT().DeactivateExpired(now).Return(int64(2), nil)

	err := service.Rotate()
	assert.NoError(t, err)
}

func TestSpotlightRotationService_Rotate_FalhaEmUmTipoNaoImpedeOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service, m := newRotationService(ctrl, now)

	recent := &domain.Spotlight{CreatedAt: now.Add(-1 * time.Hour)}

	// Falha na verificação do tipo diário não impede os demais nem o arquivamento
	m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeDaily).Return(nil, assert.AnError)
	m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeWeekly).Return(recent, nil)
	m.spotlightRepo.EXPECT().GetMostRecent(domain.SpotlightTypeMonthly).Return(recent, nil)
	m.spotlightRepo.EXPECT().DeactivateExpired(now).Return(int64(0), nil)

	err := service.Rotate()
	assert.NoError(t, err)
}

func TestSpotlightRotationService_ShouldRotate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		spotlightType domain.SpotlightType
		mostRecent    *domain.Spotlight
		expected      bool
	}{
		{
			name:          "Sem spotlight prévio a rotação é imediatamente devida",
			spotlightType: domain.SpotlightTypeDaily,
			mostRecent:    nil,
			expected:      true,
		},
		{
			name:          "Diário criado há 10h não está devido",
			spotlightType: domain.SpotlightTypeDaily,
			mostRecent:    &domain.Spotlight{CreatedAt: now.Add(-10 * time.Hour)},
			expected:      false,
		},
		{
			name:          "Diário criado há 21h está devido (folga de 20h)",
			spotlightType: domain.SpotlightTypeDaily,
			mostRecent:    &domain.Spotlight{CreatedAt: now.Add(-21 * time.Hour)},
			expected:      true,
		},
		{
			name:          "Semanal criado há 7 dias está devido (folga de 156h)",
			spotlightType: domain.SpotlightTypeWeekly,
			mostRecent:    &domain.Spotlight{CreatedAt: now.Add(-7 * 24 * time.Hour)},
			expected:      true,
		},
		{
			name:          "Mensal criado há 20 dias não está devido (folga de 600h)",
			spotlightType: domain.SpotlightTypeMonthly,
			mostRecent:    &domain.Spotlight{CreatedAt: now.Add(-20 * 24 * time.Hour)},
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newRotationService(ctrl, now)

			m.spotlightRepo.EXPECT().GetMostRecent(tt.spotlightType).Return(tt.mostRecent, nil)

			due, err := service.shouldRotate(tt.spotlightType, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, due)
		})
	}
}

func TestSpotlightRotationService_CanRotateManually(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(service *SpotlightRotationService)
		expected bool
	}{
		{
			name:     "Sem rotação manual prévia pode disparar",
			setup:    func(service *SpotlightRotationService) {},
			expected: true,
		},
		{
			name: "Dentro do cooldown manual de 30s não pode disparar",
			setup: func(service *SpotlightRotationService) {
				service.lastManualRotationAt = now.Add(-10 * time.Second)
			},
			expected: false,
		},
		{
			name: "Após o cooldown manual pode disparar novamente",
			setup: func(service *SpotlightRotationService) {
				service.lastManualRotationAt = now.Add(-31 * time.Second)
			},
			expected: true,
		},
		{
			name: "Rotação em andamento bloqueia o disparo manual",
			setup: func(service *SpotlightRotationService) {
				service.rotationInProgress = true
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _ := newRotationService(ctrl, now)
			tt.setup(service)

			allowed, reason := service.CanRotateManually()

			assert.Equal(t, tt.expected, allowed)
			if !tt.expected {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestSpotlightRotationService_TriggerManualRotation_Negada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service, _ := newRotationService(ctrl, now)
	service.lastManualRotationAt = now.Add(-5 * time.Second)

	started, reason := service.TriggerManualRotation()

	assert.False(t, started)
	assert.NotEmpty(t, reason)
	// O carimbo de rotação manual não é atualizado em disparo negado
	assert.Equal(t, now.Add(-5*time.Second), service.lastManualRotationAt)
}
