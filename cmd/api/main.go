package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/spotlight-manager-api/infrastructure/repository"
	"github.com/vfg2006/spotlight-manager-api/internal/api"
	"github.com/vfg2006/spotlight-manager-api/internal/config"
	"github.com/vfg2006/spotlight-manager-api/internal/scheduler"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/spotlighting"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/voting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	businessRepo := repository.NewBusinessRepository(pgConn)
	metricsRepo := repository.NewEngagementMetricsRepository(pgConn)
	spotlightRepo := repository.NewSpotlightRepository(pgConn)
	historyRepo := repository.NewSpotlightHistoryRepository(pgConn)
	voteRepo := repository.NewSpotlightVoteRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Motor de seleção: filtro de elegibilidade + estratégias por tipo
	eligibility := spotlighting.NewEligibilityFilter(businessRepo, spotlightRepo, historyRepo)
	selector := spotlighting.NewSelector(metricsRepo, spotlightRepo, voteRepo, eligibility)

	spotlightService := spotlighting.NewService(spotlightRepo, historyRepo, businessRepo)
	voteService := voting.NewService(voteRepo, businessRepo)

	// Agendador da rotação de spotlights
	rotationService := scheduler.NewSpotlightRotationService(selector, spotlightRepo, cfg)

	if err := rotationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de rotação de spotlights")
	} else {
		logrus.Info("Agendador de rotação de spotlights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		spotlightService,
		voteService,
		authenticator,
		rotationService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
