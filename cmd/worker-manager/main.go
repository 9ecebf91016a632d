// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"everaftr-workers/internal/catalog"
	commonaws "everaftr-workers/internal/common/aws"
	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/config"
	"everaftr-workers/internal/common/database"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/common/observability"
	"everaftr-workers/internal/common/validation"
	"everaftr-workers/internal/savethedate"
	"everaftr-workers/internal/session"
	"everaftr-workers/pkg/registry"

	// Directory
	fv "everaftr-workers/internal/workers/directory/filter-vendors"

	// Matchmaker
	mq "everaftr-workers/internal/workers/matchmaker/matchmaker-quiz"
	sv "everaftr-workers/internal/workers/matchmaker/score-vendors"

	// Planner
	ms "everaftr-workers/internal/workers/planner/manage-sponsors"
	pw "everaftr-workers/internal/workers/planner/planner-workspace"
	ub "everaftr-workers/internal/workers/planner/update-budget"
	uc "everaftr-workers/internal/workers/planner/update-checklist"

	// Save-the-date
	ap "everaftr-workers/internal/workers/savethedate/attach-photo"
	ec "everaftr-workers/internal/workers/savethedate/edit-card"
	rc "everaftr-workers/internal/workers/savethedate/render-card"
	sc "everaftr-workers/internal/workers/savethedate/share-card"

	// Guides
	bt "everaftr-workers/internal/workers/guides/browse-traditions"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// registration builds one worker's handler from its config entry.
type registration struct {
	taskType string
	build    func(wc config.WorkerConfig) (camunda.JobHandler, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("catalog", cfg.Catalog.Source),
		zap.String("sessions", cfg.Session.Store),
	)

	ctx := context.Background()

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
	})
	if err != nil {
		zapLog.Warn("observability disabled", zap.Error(err))
		obs = nil
	} else {
		defer obs.Shutdown()
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClient(camunda.ConfigFrom(cfg.Camunda))
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	pingers := []database.Pinger{zeebe}

	// --- Init Redis with retry (session store and catalog cache) ---
	var redis *database.RedisClient
	if cfg.UsesRedis() {
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		pingers = append(pingers, redis)
		zapLog.Info("Redis connected successfully")
	}

	// --- Vendor catalog ---
	var source catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		pingers = append(pingers, pg)

		source, err = catalog.NewPostgresSource(pg.DB, cfg.Catalog.Table)
		if err != nil {
			zapLog.Fatal("postgres catalog failed", zap.Error(err))
		}
		zapLog.Info("PostgreSQL connected successfully")

	case config.CatalogSourceElasticsearch:
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		pingers = append(pingers, esClient)
		source = catalog.NewElasticsearchSource(esClient.Client, cfg.Catalog.Index)
		zapLog.Info("Elasticsearch connected successfully")

	default:
		source = catalog.NewStaticSource()
	}
	if cfg.Catalog.CacheEnabled {
		source = catalog.NewCachedSource(source, redis.Client, cfg.Session.KeyPrefix+"catalog:",
			config.GetDuration(cfg.Catalog.CacheTTL), log)
	}
	zapLog.Info("vendor catalog ready", zap.String("source", source.Name()))

	// --- Session store ---
	var sessions session.Store
	sessionTTL := config.GetDuration(cfg.Session.TTL)
	if cfg.Session.Store == config.SessionStoreRedis {
		sessions = session.NewRedisStore(redis.Client, cfg.Session.KeyPrefix, sessionTTL)
	} else {
		mem := session.NewMemoryStore(sessionTTL)
		go sweepSessions(ctx, mem, time.Minute, zapLog)
		sessions = mem
	}

	// --- Schema validation and error handling ---
	reg, err := registry.LoadRegistry(cfg.Validation.RegistryPath)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.String("path", cfg.Validation.RegistryPath), zap.Error(err))
	}
	validator, err := validation.NewValidator(reg)
	if err != nil {
		zapLog.Fatal("activity schemas invalid", zap.Error(err))
	}

	deps := camunda.Deps{
		Validator: validator,
		Errors:    errors.NewErrorHandler(log),
		Obs:       obs,
	}

	// --- Share channels ---
	sharers := savethedate.DefaultSharers()
	if cfg.Share.Email.Enabled {
		sesClient, err := commonaws.NewSESClient(ctx, cfg.Share.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		sharers.Add(savethedate.NewEmailSharer(sesClient, cfg.Share.Email.FromEmail))
	}
	if cfg.Share.SMS.Enabled {
		snsClient, err := commonaws.NewSNSClient(ctx, cfg.Share.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		sharers.Add(savethedate.NewSMSSharer(snsClient, cfg.Share.SMS.SenderID))
	}
	zapLog.Info("share channels configured", zap.Any("channels", sharers.Channels()))

	// --- Register workers ---
	registrations := []registration{
		{fv.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return fv.NewHandler(fv.NewConfig(wc), deps, source, log), nil
		}},
		{mq.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			h, err := mq.NewHandler(mq.NewConfig(wc), deps, sessions, source, log)
			if err != nil {
				return nil, err
			}
			return h, nil
		}},
		{sv.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return sv.NewHandler(sv.NewConfig(wc), deps, source, sessions, log), nil
		}},
		{pw.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return pw.NewHandler(pw.NewConfig(wc), deps, sessions, log), nil
		}},
		{uc.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return uc.NewHandler(uc.NewConfig(wc), deps, sessions, log), nil
		}},
		{ub.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return ub.NewHandler(ub.NewConfig(wc), deps, sessions, log), nil
		}},
		{ms.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return ms.NewHandler(ms.NewConfig(wc), deps, sessions, log), nil
		}},
		{ec.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return ec.NewHandler(ec.NewConfig(wc), deps, sessions, log), nil
		}},
		{ap.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return ap.NewHandler(ap.NewConfig(wc), deps, sessions, log), nil
		}},
		{rc.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return rc.NewHandler(rc.NewConfig(wc, cfg.Render), deps, sessions, log), nil
		}},
		{sc.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return sc.NewHandler(sc.NewConfig(wc, cfg.Render, cfg.Share), deps, sessions, sharers, log), nil
		}},
		{bt.TaskType, func(wc config.WorkerConfig) (camunda.JobHandler, error) {
			return bt.NewHandler(bt.NewConfig(wc), deps, log), nil
		}},
	}

	var workers []*camunda.Worker
	for _, r := range registrations {
		if !config.IsWorkerEnabled(cfg, r.taskType) {
			zapLog.Info("worker disabled", zap.String("taskType", r.taskType))
			continue
		}
		if _, ok := reg.Find(r.taskType); !ok {
			zapLog.Warn("no registry entry, job variables are not schema-checked", zap.String("taskType", r.taskType))
		}

		wc := config.GetWorkerConfig(cfg, r.taskType)
		handler, err := r.build(wc)
		if err != nil {
			zapLog.Fatal("failed to create handler", zap.String("taskType", r.taskType), zap.Error(err))
		}
		workers = append(workers, camunda.StartWorker(zeebe.Zeebe(), r.taskType, wc, handler, log))
	}
	zapLog.Info("workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	server := &http.Server{Addr: cfg.Server.Address, ReadHeaderTimeout: 5 * time.Second}
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		failures := database.CheckAll(r.Context(), 2*time.Second, pingers...)
		if len(failures) > 0 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":   "not ready",
				"failures": failures,
				"time":     time.Now().Format(time.RFC3339),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"workers": len(workers),
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// sweepSessions evicts expired in-memory sessions until ctx ends.
func sweepSessions(ctx context.Context, s *session.MemoryStore, every time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}
