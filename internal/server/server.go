// Package server assembles the game server: infrastructure clients,
// services, the HTTP API and its observability endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/victornm/pord/internal/api"
	"github.com/victornm/pord/internal/event"
	"github.com/victornm/pord/internal/game"
	"github.com/victornm/pord/internal/highscore"
	"github.com/victornm/pord/internal/leaderboard"
	"github.com/victornm/pord/internal/score"
	"github.com/victornm/pord/internal/session"
	"github.com/victornm/pord/internal/sprite"
	"github.com/victornm/pord/internal/telemetry"
)

type Config struct {
	HTTP struct {
		Port int32
	}

	Redis struct {
		Leaderboard struct {
			Addrs  []string
			Pass   string
			Prefix string
		}

		Pubsub struct {
			Addrs  []string
			Pass   string
			Prefix string
		}
	}

	Postgres struct {
		Score struct {
			Addr string
			User string
			Pass string
			Name string
		}
	}

	Data struct {
		// Dir holds the local high-score and medal files.
		Dir string
	}

	Sprite struct {
		BaseURL string
	}

	Remote struct {
		// URL of the global leaderboard endpoint; empty disables it.
		URL string
	}
}

type Server struct {
	c Config

	eb *event.Bus

	infra struct {
		redis struct {
			leaderboard redis.UniversalClient
			pubsub      redis.UniversalClient
		}

		postgres struct {
			score *pgxpool.Pool
		}
	}

	service struct {
		sessions    *session.Manager
		score       *score.Service
		leaderboard *leaderboard.Service
		highscores  *highscore.Store
		sprites     *sprite.Client
	}

	http *http.Server
}

func Init(c Config) (*Server, error) {
	s := &Server{c: c}

	s.eb = event.NewBus()

	if err := s.initInfra(); err != nil {
		return nil, fmt.Errorf("server: init infra: %w", err)
	}

	s.initService()
	s.initAPI()
	return s, nil
}

func (s *Server) initInfra() error {
	if err := s.initRedis(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if err := s.initPostgres(); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	return nil
}

func (s *Server) initRedis() error {
	connect := func(addrs []string, pass string) (redis.UniversalClient, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		r := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    addrs,
			Password: pass,
		})

		if err := telemetry.MonitorRedis(r); err != nil {
			return nil, err
		}

		if err := r.Ping(ctx).Err(); err != nil {
			return nil, err
		}

		return r, nil
	}

	var err error
	s.infra.redis.leaderboard, err = connect(s.c.Redis.Leaderboard.Addrs, s.c.Redis.Leaderboard.Pass)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}

	s.infra.redis.pubsub, err = connect(s.c.Redis.Pubsub.Addrs, s.c.Redis.Pubsub.Pass)
	if err != nil {
		return fmt.Errorf("pubsub: %w", err)
	}

	return nil
}

func (s *Server) initPostgres() (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sc := s.c.Postgres.Score
	cc, err := pgxpool.ParseConfig(fmt.Sprintf("postgres://%s:%s@%s/%s", sc.User, sc.Pass, sc.Addr, sc.Name))
	if err != nil {
		return err
	}

	db, err := pgxpool.NewWithConfig(ctx, cc)
	if err != nil {
		return err
	}

	if err := db.Ping(ctx); err != nil {
		return err
	}

	s.infra.postgres.score = db
	return nil
}

func (s *Server) initService() {
	s.service.score = score.NewService(score.Config{
		EventBus: s.eb,
		DB:       s.infra.postgres.score,
	})

	s.service.leaderboard = leaderboard.NewService(leaderboard.Config{
		EventBus: s.eb,
		Redis:    s.infra.redis.leaderboard,
		Prefix:   s.c.Redis.Leaderboard.Prefix,
	})

	dataDir := s.c.Data.Dir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		slog.Warn("server: create data dir", "dir", dataDir, "error", err)
	}
	s.service.highscores = highscore.NewStore(dataDir)

	var spriteOpts []sprite.Option
	if s.c.Sprite.BaseURL != "" {
		spriteOpts = append(spriteOpts, sprite.WithBaseURL(s.c.Sprite.BaseURL))
	}
	s.service.sprites = sprite.NewClient(spriteOpts...)

	var remote session.RemoteBoard
	if s.c.Remote.URL != "" {
		remote = leaderboard.NewClient(s.c.Remote.URL)
	}

	s.service.sessions = session.NewManager(session.Config{
		EventBus:   s.eb,
		Engine:     game.New(game.Config{}),
		HighScores: s.service.highscores,
		Results:    s.service.score,
		Ranker:     s.service.leaderboard,
		Remote:     remote,
	})
}

func (s *Server) initAPI() {
	e := gin.New()
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
	pprof.Register(e, "/debug/pprof")
	e.Use(gin.Recovery(), telemetry.HTTPLogger(), telemetry.HTTPMetrics())

	api.New(api.Config{
		Router:       e,
		EventBus:     s.eb,
		Sessions:     s.service.sessions,
		Score:        s.service.score,
		Leaderboard:  s.service.leaderboard,
		HighScores:   s.service.highscores,
		Sprites:      s.service.sprites,
		Redis:        s.infra.redis.pubsub,
		PubsubPrefix: s.c.Redis.Pubsub.Prefix,
	})

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.c.HTTP.Port),
		Handler:           e,
		ReadHeaderTimeout: 60 * time.Second,
	}
}

func (s *Server) Start() {
	ctx := context.TODO()

	slog.InfoContext(ctx, fmt.Sprintf("server: HTTP listening on port %d", s.c.HTTP.Port))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.ErrorContext(ctx, "server: shutdown with error", "error", err)
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "server: shutdown HTTP failed", "error", err)
	}

	s.service.sessions.Close()
	s.eb.Stop()

	slog.InfoContext(ctx, "server: shutdown completed")
}
