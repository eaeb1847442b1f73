package handler

import (
	"net/http"

	"github.com/vfg2006/spotlight-manager-api/internal/api/handler/router"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/spotlighting"
	"github.com/vfg2006/spotlight-manager-api/internal/usecases/voting"
	"github.com/vfg2006/spotlight-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Spotlights(service spotlighting.SpotlightService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/spotlights/:type",
			Method:      http.MethodGet,
			Handler:     GetCurrentSpotlights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/spotlights",
			Method:      http.MethodGet,
			Handler:     GetBusinessSpotlightHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Votes(service voting.VoteAggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/spotlights/votes",
			Method:      http.MethodPost,
			Handler:     CastVote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/spotlights/votes/stats",
			Method:      http.MethodGet,
			Handler:     GetVoteStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/can-rotate",
			Method:      http.MethodGet,
			Handler:     CanRotateManually(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
