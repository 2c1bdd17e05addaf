package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
)

// DailyReportCloseConfig representa la configuración del cierre nocturno de reportes
type DailyReportCloseConfig struct {
	CronSchedule string
	CloseEnabled bool
}

// DailyReportCloseService agenda el cierre del reporte del día anterior.
// Corre de madrugada para que el día recién terminado quede persistido
// aunque nadie lo consulte por la API.
type DailyReportCloseService struct {
	scheduler            *gocron.Scheduler
	config               DailyReportCloseConfig
	reportService        reporting.Reporter
	clock                timezone.Clock
	closeRunning         bool
	closeMutex           sync.Mutex
	lastCloseStartedAt   time.Time
	lastCloseCompletedAt time.Time
}

// NewDailyReportCloseService crea una nueva instancia del servicio de cierre nocturno
func NewDailyReportCloseService(
	reportService reporting.Reporter,
	clock timezone.Clock,
	appConfig *config.Config,
) *DailyReportCloseService {
	closeConfig := DailyReportCloseConfig{
		CronSchedule: appConfig.Report.CloseCron,
		CloseEnabled: appConfig.Report.CloseEnabled,
	}

	scheduler := gocron.NewScheduler(timezone.Bogota())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closeConfig.CronSchedule,
		"close_enabled": closeConfig.CloseEnabled,
	}).Info("Configuración del cierre nocturno de reportes cargada")

	return &DailyReportCloseService{
		scheduler:     scheduler,
		config:        closeConfig,
		reportService: reportService,
		clock:         clock,
		closeRunning:  false,
	}
}

// Start inicia el agendador
func (s *DailyReportCloseService) Start(ctx context.Context) error {
	if !s.config.CloseEnabled {
		logrus.Info("Cierre nocturno de reportes deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de cierre nocturno de reportes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.closeYesterday()
	})
	if err != nil {
		return fmt.Errorf("error al agendar el cierre nocturno de reportes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo el agendador de cierre nocturno de reportes")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara el cierre manualmente
func (s *DailyReportCloseService) RunNow() {
	go s.closeYesterday()
}

// closeYesterday genera el reporte del día anterior si aún no existe.
// GetOrGenerate ya no recalcula fechas pasadas que tengan reporte.
func (s *DailyReportCloseService) closeYesterday() {
	s.closeMutex.Lock()
	if s.closeRunning {
		s.closeMutex.Unlock()
		logrus.Warn("Cierre nocturno ya en ejecución, se omite esta corrida")
		return
	}
	s.closeRunning = true
	s.lastCloseStartedAt = time.Now()
	s.closeMutex.Unlock()

	defer func() {
		s.closeMutex.Lock()
		s.closeRunning = false
		s.lastCloseCompletedAt = time.Now()
		s.closeMutex.Unlock()
	}()

	yesterday := timezone.Today(s.clock).AddDate(0, 0, -1)

	report, err := s.reportService.GetOrGenerate(yesterday)
	if err != nil {
		logrus.WithError(err).WithField("date", yesterday.Format("2006-01-02")).
			Error("Error al cerrar el reporte del día anterior")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":      yesterday.Format("2006-01-02"),
		"report_id": report.ID,
		"ganancias": report.Ganancias,
		"gastos":    report.Gastos,
	}).Info("Reporte del día anterior cerrado")
}
