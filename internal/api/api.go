// Package api exposes the game over HTTP: a REST surface for session
// management, action dispatch, leaderboards and local records, plus a
// websocket stream of session snapshots.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/victornm/pord/internal/domain"
	"github.com/victornm/pord/internal/errors"
	"github.com/victornm/pord/internal/event"
	"github.com/victornm/pord/internal/highscore"
	"github.com/victornm/pord/internal/leaderboard"
	"github.com/victornm/pord/internal/pool"
	"github.com/victornm/pord/internal/score"
	"github.com/victornm/pord/internal/session"
	"github.com/victornm/pord/internal/sprite"
)

type Config struct {
	Router       *gin.Engine
	EventBus     *event.Bus
	Sessions     *session.Manager
	Score        *score.Service
	Leaderboard  *leaderboard.Service
	HighScores   *highscore.Store
	Sprites      *sprite.Client
	Redis        Redis
	PubsubPrefix string
}

type Redis interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type API struct {
	sessions *session.Manager
	ss       *score.Service
	ls       *leaderboard.Service
	hs       *highscore.Store
	sprites  *sprite.Client

	hub    *hub
	redis  Redis
	prefix string
}

func New(c Config) *API {
	a := &API{
		sessions: c.Sessions,
		ss:       c.Score,
		ls:       c.Leaderboard,
		hs:       c.HighScores,
		sprites:  c.Sprites,
		hub:      newHub(),
		redis:    c.Redis,
		prefix:   c.PubsubPrefix,
	}

	v1 := c.Router.Group("/v1")
	{
		v1.POST("/sessions", a.createSession)
		v1.GET("/sessions/:id", a.getSession)
		v1.DELETE("/sessions/:id", a.deleteSession)
		v1.POST("/sessions/:id/actions", a.dispatchAction)
		v1.GET("/sessions/:id/stream", a.streamSession)

		v1.GET("/leagues", a.listLeagues)
		v1.GET("/leaderboard", a.getLeaderboard)

		v1.GET("/highscores", a.listHighScores)
		v1.DELETE("/highscores", a.clearHighScores)
		v1.GET("/medals", a.listMedals)
		v1.GET("/results", a.listResults)

		v1.GET("/sprites/:name", a.getSprite)

		v1.GET("/prefs/sound", a.getSoundPref)
		v1.PUT("/prefs/sound", a.setSoundPref)
	}

	if c.EventBus != nil {
		c.EventBus.Subscribe(domain.EventNameStateChanged, func(ctx context.Context, e event.Event) error {
			return a.pushStateChanged(ctx, e.(domain.EventStateChanged))
		})
		c.EventBus.Subscribe(domain.EventNameLeaderboardUpdated, func(ctx context.Context, e event.Event) error {
			return a.publishLeaderboardUpdated(ctx, e.(domain.EventLeaderboardUpdated))
		})
	}

	return a
}

func (a *API) createSession(c *gin.Context) {
	s := a.sessions.Create(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": s.ID(),
		"state":     s.State(),
	})
}

func (a *API) getSession(c *gin.Context) {
	s, err := a.sessions.Get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": s.State()})
}

func (a *API) deleteSession(c *gin.Context) {
	a.sessions.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (a *API) dispatchAction(c *gin.Context) {
	s, err := a.sessions.Get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	var env actionEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		abort(c, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("decode action: %v", err)))
		return
	}

	action, err := env.action()
	if err != nil {
		abort(c, err)
		return
	}

	st := s.Dispatch(c.Request.Context(), action)
	c.JSON(http.StatusOK, gin.H{"state": st})
}

func (a *API) listLeagues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"leagues": pool.Leagues()})
}

func (a *API) getLeaderboard(c *gin.Context) {
	period := domain.Period(c.DefaultQuery("period", string(domain.PeriodAllTime)))
	if period != domain.PeriodDaily && period != domain.PeriodAllTime {
		abort(c, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("unknown period %q", period)))
		return
	}

	l, err := a.ls.GetLeaderboard(c.Request.Context(), leaderboard.GetLeaderboardRequest{
		League: c.Query("league"),
		Period: period,
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": l})
}

func (a *API) listHighScores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"highScores": a.hs.HighScores()})
}

func (a *API) clearHighScores(c *gin.Context) {
	a.hs.Clear()
	c.Status(http.StatusNoContent)
}

func (a *API) listMedals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"medals": a.hs.Medals()})
}

func (a *API) listResults(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abort(c, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("name is required")))
		return
	}

	results, err := a.ss.ListResults(c.Request.Context(), score.ListResultsRequest{
		Name:   name,
		League: c.Query("league"),
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (a *API) getSprite(c *gin.Context) {
	url := a.sprites.FetchSpriteURL(c.Request.Context(), c.Param("name"))
	if url == "" {
		abort(c, errors.New(errors.CodeNotFound,
			errors.WithMessagef("no sprite for %q", c.Param("name"))))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (a *API) getSoundPref(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"muted": a.hs.Muted()})
}

func (a *API) setSoundPref(c *gin.Context) {
	var body struct {
		Muted bool `json:"muted"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("decode preference: %v", err)))
		return
	}

	a.hs.SetMuted(body.Muted)
	c.JSON(http.StatusOK, gin.H{"muted": body.Muted})
}

func abort(c *gin.Context, err error) {
	e := errors.Convert(err)
	c.AbortWithStatusJSON(e.HTTPStatusCode(), gin.H{
		"code":    e.Code.String(),
		"message": e.Message,
	})
}
