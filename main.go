package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	orchestratorx "github.com/viliokaized/prime-intake/agent/orchestrator"
	statex "github.com/viliokaized/prime-intake/agent/state"
	"github.com/viliokaized/prime-intake/api"
	configx "github.com/viliokaized/prime-intake/pkg/config"
	"github.com/viliokaized/prime-intake/pkg/doctext"
	"github.com/viliokaized/prime-intake/pkg/knowledge"
	"github.com/viliokaized/prime-intake/pkg/leadstore"
	_ "github.com/viliokaized/prime-intake/pkg/logger/autoload"
	"github.com/viliokaized/prime-intake/pkg/webhook"
)

type AppConfig struct {
	HTTPAddr       string        `envconfig:"HTTP_ADDR" split_words:"true" default:":3000"`
	ScheduleLink   string        `envconfig:"SCHEDULE_LINK" split_words:"true" required:"true"`
	KnowledgeDir   string        `envconfig:"KNOWLEDGE_DIR" split_words:"true" default:"documents_for_base"`
	GatewayTimeout time.Duration `envconfig:"GATEWAY_TIMEOUT" split_words:"true" default:"30s"`

	// SessionTTL bounds session retention; zero keeps conversations for the
	// lifetime of the process.
	SessionTTL           time.Duration `envconfig:"SESSION_TTL" split_words:"true"`
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" split_words:"true" default:"5m"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[AppConfig]("")

	base, err := knowledge.LoadBase(appCfg.KnowledgeDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load knowledge base")
	}

	openaiCfg := configx.MustNew[knowledge.Config]("OPENAI")
	answerer, err := knowledge.NewAnswerer(*openaiCfg, base)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize answerer")
	}

	webhookCfg := configx.MustNew[webhook.Config]("WEBHOOK")
	notifier, err := webhook.NewClient(*webhookCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize webhook client")
	}

	pgCfg := configx.MustNew[leadstore.Config]("POSTGRES")
	persister, err := leadstore.New(*pgCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize lead store")
	}
	defer persister.Close()
	if err := persister.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize leads schema")
	}

	store := statex.NewStore(
		statex.WithTTL(appCfg.SessionTTL),
		statex.WithSweepInterval(appCfg.SessionSweepInterval),
	)
	go store.RunJanitor(ctx)

	orch, err := orchestratorx.New(store, answerer, notifier, persister, orchestratorx.Config{
		ScheduleLink:   appCfg.ScheduleLink,
		GatewayTimeout: appCfg.GatewayTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize orchestrator")
	}

	server := api.NewServer(orch, store, doctext.Extractor{})
	if err := server.Run(ctx, appCfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}
