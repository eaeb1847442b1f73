// Package scheduler contém os serviços de agendamento da rotação de spotlights
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/config"
	"github.com/vfg2006/spotlight-manager-api/internal/domain"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/spotlighting"
)

type SpotlightRotationConfig struct {
	CronSchedule   string
	Enabled        bool
	MinInterval    time.Duration
	ManualCooldown time.Duration
}

// SpotlightRotationService orquestra a rotação dos três tipos de slot:
// verifica due-ness por tipo, invoca a estratégia de seleção e arquiva os
// spotlights expirados. Todo o estado de exclusão mútua vive neste struct,
// construído uma vez por processo. A guarda é local ao processo, não
// distribuída: com múltiplas instâncias a exclusão precisa vir de um lock
// no banco.
type SpotlightRotationService struct {
	scheduler     *gocron.Scheduler
	selector      *spotlighting.Selector
	spotlightRepo repository.SpotlightRepository
	config        SpotlightRotationConfig

	rotationMutex           sync.Mutex
	rotationInProgress      bool
	lastRotationStartedAt   time.Time
	lastRotationCompletedAt time.Time
	lastManualRotationAt    time.Time

	// nowFn é o relógio do serviço, injetável nos testes
	nowFn func() time.Time
}

func NewSpotlightRotationService(
	selector *spotlighting.Selector,
	spotlightRepo repository.SpotlightRepository,
	cfg *config.Config,
) *SpotlightRotationService {
	rotationConfig := SpotlightRotationConfig{
		CronSchedule:   cfg.SpotlightRotation.CronSchedule,
		Enabled:        cfg.SpotlightRotation.Enabled,
		MinInterval:    time.Duration(cfg.SpotlightRotation.MinIntervalSeconds) * time.Second,
		ManualCooldown: time.Duration(cfg.SpotlightRotation.ManualCooldownSeconds) * time.Second,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rotationConfig.CronSchedule,
	}).Info("Configuração do agendador de rotação de spotlights carregada")

	return &SpotlightRotationService{
		scheduler:     scheduler,
		selector:      selector,
		spotlightRepo: spotlightRepo,
		config:        rotationConfig,
		nowFn:         time.Now,
	}
}

func (s *SpotlightRotationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de rotação de spotlights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de rotação de spotlights")

	// A rotação é idempotente: ticks repetidos dentro do intervalo mínimo
	// são descartados pela guarda, então o cron pode ser agressivo
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Rotate(); err != nil {
			logrus.WithError(err).Error("Erro na rotação de spotlights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotação de spotlights: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de rotação de spotlights")
		s.scheduler.Stop()
	}()

	return nil
}

// Rotate executa uma passada de rotação automática. Seguro para chamadas
// repetidas: passadas concorrentes e ticks dentro do intervalo mínimo são
// no-ops.
func (s *SpotlightRotationService) Rotate() error {
	return s.rotateAt(s.nowFn(), false)
}

// rotateAt é o núcleo da rotação; forced pula a guarda de intervalo mínimo
// (rotação manual), mas nunca a guarda de exclusão mútua.
func (s *SpotlightRotationService) rotateAt(now time.Time, forced bool) error {
	s.rotationMutex.Lock()

	if s.rotationInProgress {
		s.rotationMutex.Unlock()
		logrus.Info("Rotação de spotlights já está em execução, ignorando")
		return nil
	}

	if !forced && !s.lastRotationStartedAt.IsZero() && now.Sub(s.lastRotationStartedAt) < s.config.MinInterval {
		s.rotationMutex.Unlock()
		logrus.WithFields(logrus.Fields{
			"min_interval": s.config.MinInterval,
			"elapsed":      now.Sub(s.lastRotationStartedAt),
		}).Info("Rotação de spotlights dentro do intervalo mínimo, ignorando")
		return nil
	}

	s.rotationInProgress = true
	s.lastRotationStartedAt = now
	s.rotationMutex.Unlock()

	// A guarda é liberada incondicionalmente, mesmo sob panic de uma
	// estratégia de seleção
	defer func() {
		s.rotationMutex.Lock()
		s.rotationInProgress = false
		s.lastRotationCompletedAt = s.nowFn()
		s.rotationMutex.Unlock()
	}()

	logrus.Info("Iniciando rotação de spotlights")

	for _, spotlightType := range domain.SpotlightTypes {
		due, err := s.shouldRotate(spotlightType, now)
		if err != nil {
			// Falha de leitura em um tipo não impede os demais
			logrus.WithError(err).WithField("type", spotlightType).
				Error("Erro ao verificar due-ness da rotação")
			continue
		}

		if !due {
			logrus.WithField("type", spotlightType).Debug("Rotação não devida para o tipo")
			continue
		}

		if err := s.rotateType(spotlightType, now); err != nil {
			logrus.WithError(err).WithField("type", spotlightType).
				Error("Erro na rotação do tipo, prosseguindo com os demais")
		}
	}

	// Arquivamento sempre acontece, independentemente de quais tipos rotacionaram
	archived, err := s.spotlightRepo.DeactivateExpired(now)
	if err != nil {
		logrus.WithError(err).Error("Erro ao arquivar spotlights expirados")
		return err
	}

	if archived > 0 {
		logrus.WithField("archived", archived).Info("Spotlights expirados arquivados")
	}

	logrus.Info("Rotação de spotlights concluída")

	return nil
}

// rotateType arquiva o lote ativo do tipo e roda a estratégia de seleção
func (s *SpotlightRotationService) rotateType(spotlightType domain.SpotlightType, now time.Time) error {
	// Arquivar o lote vigente antes de criar o novo preserva o limite de
	// slots ativos por tipo
	if _, err := s.spotlightRepo.DeactivateType(spotlightType); err != nil {
		return err
	}

	var selections []*domain.SpotlightSelection
	var err error

	switch spotlightType {
	case domain.SpotlightTypeDaily:
		selections, err = s.selector.SelectDaily(now)
	case domain.SpotlightTypeWeekly:
		selections, err = s.selector.SelectWeekly(now)
	case domain.SpotlightTypeMonthly:
		selections, err = s.selector.SelectMonthly(now)
	default:
		return spotlighting.ErrInvalidSpotlightType
	}

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"type":       spotlightType,
		"selections": len(selections),
	}).Info("Rotação do tipo concluída")

	return nil
}

// shouldRotate verifica se o tipo está devido comparando now com o
// created_at do spotlight mais recente do tipo. Os intervalos têm folga
// embutida (20h/6.5d/25d) para tolerar jitter do agendador; sem spotlight
// prévio a rotação é imediatamente devida.
func (s *SpotlightRotationService) shouldRotate(spotlightType domain.SpotlightType, now time.Time) (bool, error) {
	mostRecent, err := s.spotlightRepo.GetMostRecent(spotlightType)
	if err != nil {
		return false, err
	}

	if mostRecent == nil {
		return true, nil
	}

	return now.Sub(mostRecent.CreatedAt) >= spotlightType.SoftInterval(), nil
}

// CanRotateManually informa se uma rotação manual pode ser disparada agora
// e, caso não possa, o motivo. O cooldown manual de 30s é independente da
// guarda automática de 60s, dando retorno mais rápido ao operador.
func (s *SpotlightRotationService) CanRotateManually() (bool, string) {
	s.rotationMutex.Lock()
	defer s.rotationMutex.Unlock()

	if s.rotationInProgress {
		return false, "rotação já em andamento"
	}

	if !s.lastManualRotationAt.IsZero() {
		elapsed := s.nowFn().Sub(s.lastManualRotationAt)
		if elapsed < s.config.ManualCooldown {
			remaining := s.config.ManualCooldown - elapsed
			return false, fmt.Sprintf("aguarde %ds para disparar nova rotação manual", int(remaining.Seconds())+1)
		}
	}

	return true, ""
}

// TriggerManualRotation dispara uma rotação manual em background. A guarda
// de exclusão mútua continua valendo; apenas o intervalo mínimo automático
// é ignorado.
func (s *SpotlightRotationService) TriggerManualRotation() (bool, string) {
	allowed, reason := s.CanRotateManually()
	if !allowed {
		logrus.WithField("reason", reason).Info("Rotação manual de spotlights negada")
		return false, reason
	}

	now := s.nowFn()

	s.rotationMutex.Lock()
	s.lastManualRotationAt = now
	s.rotationMutex.Unlock()

	logrus.Info("Iniciando rotação manual de spotlights")

	go func() {
		if err := s.rotateAt(now, true); err != nil {
			logrus.WithError(err).Error("Erro na rotação manual de spotlights")
		}
	}()

	return true, ""
}

// GetStatus retorna o status atual do agendador
func (s *SpotlightRotationService) GetStatus() map[string]any {
	s.rotationMutex.Lock()
	defer s.rotationMutex.Unlock()

	return map[string]any{
		"rotation_enabled":           s.config.Enabled,
		"rotation_cron":              s.config.CronSchedule,
		"rotation_in_progress":       s.rotationInProgress,
		"last_rotation_started_at":   s.lastRotationStartedAt,
		"last_rotation_completed_at": s.lastRotationCompletedAt,
		"last_manual_rotation_at":    s.lastManualRotationAt,
	}
}
