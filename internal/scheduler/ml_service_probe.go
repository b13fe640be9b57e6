package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice"
	"github.com/retail-analytics/dashboard-api/internal/config"
	"github.com/retail-analytics/dashboard-api/internal/domain"
	"github.com/retail-analytics/dashboard-api/pkg/metrics"
)

const probeTimeout = 5 * time.Second

// StatusReader expõe o último estado conhecido do serviço de ML
type StatusReader interface {
	GetStatus() domain.MLServiceStatus
}

// StatusChecker também permite verificar o serviço fora do agendamento
type StatusChecker interface {
	StatusReader
	TriggerManualCheck(ctx context.Context) domain.MLServiceStatus
}

// MLServiceProbeConfig representa a configuração da sonda
type MLServiceProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// MLServiceProbe verifica periodicamente se o serviço de ML responde.
// O resultado é apenas informativo: cada requisição de previsão ou cluster
// continua tentando o serviço antes de cair no fallback.
type MLServiceProbe struct {
	scheduler *gocron.Scheduler
	config    MLServiceProbeConfig
	mlService mlservice.MLIntegrator

	checkRunning bool
	checkMutex   sync.Mutex

	statusMutex sync.RWMutex
	status      domain.MLServiceStatus
}

// NewMLServiceProbe cria uma nova instância da sonda
func NewMLServiceProbe(mlService mlservice.MLIntegrator, appConfig *config.Config) *MLServiceProbe {
	probeConfig := MLServiceProbeConfig{
		CronSchedule: appConfig.MLProbe.CronSchedule,
		Enabled:      appConfig.MLProbe.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da sonda do serviço de ML carregada")

	return &MLServiceProbe{
		scheduler: gocron.NewScheduler(time.Local),
		config:    probeConfig,
		mlService: mlService,
	}
}

// Start agenda a sonda e faz uma primeira verificação em background
func (p *MLServiceProbe) Start(ctx context.Context) error {
	if !p.config.Enabled {
		logrus.Info("Sonda do serviço de ML desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", p.config.CronSchedule).Info("Iniciando sonda do serviço de ML")

	_, err := p.scheduler.Cron(p.config.CronSchedule).Do(func() {
		p.check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sonda do serviço de ML: %w", err)
	}

	p.scheduler.StartAsync()

	go p.check(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("Parando sonda do serviço de ML")
		p.scheduler.Stop()
	}()

	return nil
}

// TriggerManualCheck executa a verificação imediatamente, fora do agendamento
func (p *MLServiceProbe) TriggerManualCheck(ctx context.Context) domain.MLServiceStatus {
	logrus.Info("Disparando verificação manual do serviço de ML")
	p.check(ctx)
	return p.GetStatus()
}

func (p *MLServiceProbe) GetStatus() domain.MLServiceStatus {
	p.statusMutex.RLock()
	defer p.statusMutex.RUnlock()
	return p.status
}

func (p *MLServiceProbe) check(ctx context.Context) {
	p.checkMutex.Lock()
	if p.checkRunning {
		p.checkMutex.Unlock()
		logrus.Debug("Verificação do serviço de ML já em andamento, ignorando")
		return
	}
	p.checkRunning = true
	p.checkMutex.Unlock()

	defer func() {
		p.checkMutex.Lock()
		p.checkRunning = false
		p.checkMutex.Unlock()
	}()

	checkCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.mlService.CheckConnection(checkCtx)
	checkedAt := time.Now()

	status := domain.MLServiceStatus{
		Available:     err == nil,
		LastCheckedAt: &checkedAt,
	}
	if err != nil {
		status.LastError = err.Error()
	}

	p.statusMutex.Lock()
	previous := p.status
	p.status = status
	p.statusMutex.Unlock()

	metrics.SetMLServiceAvailable(status.Available)

	if previous.LastCheckedAt == nil || previous.Available != status.Available {
		entry := logrus.WithField("available", status.Available)
		if err != nil {
			entry.WithError(err).Warn("Serviço de ML indisponível")
			return
		}
		entry.Info("Serviço de ML disponível")
	}
}
