package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/database/postgres"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/api"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/scheduler"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/authenticating"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/awarding"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/sessioning"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/transacting"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
)

func main() {
	// Inicializa configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log según la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	sessionRepo := repository.NewSessionRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	bonoRepo := repository.NewBonoRepository(pgConn)
	jackpotWinRepo := repository.NewJackpotWinRepository(pgConn)
	reportRepo := repository.NewDailyReportRepository(pgConn)

	clock := timezone.SystemClock{}

	authenticator := authenticating.NewService(userRepo, cfg, clock)
	sessionService := sessioning.NewService(sessionRepo, userRepo, clock)
	transactionService := transacting.NewService(transactionRepo, sessionRepo, clock)
	awardService := awarding.NewService(cfg, bonoRepo, jackpotWinRepo, userRepo, sessionRepo, clock)
	reportService := reporting.NewService(cfg, reportRepo, sessionRepo, jackpotWinRepo, bonoRepo, clock)

	// Inicializa el agendador de cierre nocturno de reportes
	reportCloseService := scheduler.NewDailyReportCloseService(reportService, clock, cfg)

	if err := reportCloseService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de cierre nocturno de reportes")
	} else {
		logrus.Info("Agendador de cierre nocturno de reportes iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sessionService,
		transactionService,
		awardService,
		reportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea una conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
