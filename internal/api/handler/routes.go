package handler

import (
	"net/http"

	"github.com/vfigueroa/casino-manager-api/internal/api/handler/router"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/authenticating"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/awarding"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/reporting"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/sessioning"
	"github.com/vfigueroa/casino-manager-api/internal/usecases/transacting"
	"github.com/vfigueroa/casino-manager-api/pkg/middleware"
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

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/password",
			Method:      http.MethodPut,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sessions(service sessioning.Sessioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sessions",
			Method:      http.MethodGet,
			Handler:     ListSessions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sessions",
			Method:      http.MethodPost,
			Handler:     CreateSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/stats/sessions",
			Method:      http.MethodGet,
			Handler:     GetSessionStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/sessions/:id",
			Method:      http.MethodGet,
			Handler:     GetSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sessions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/sessions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sessions/:id/end",
			Method:      http.MethodPost,
			Handler:     EndSession(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/sessions/:id/jackpot",
			Method:      http.MethodPost,
			Handler:     AddSessionJackpot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/sessions/:id/reik",
			Method:      http.MethodPost,
			Handler:     AddSessionReik(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/sessions/:id/tips",
			Method:      http.MethodPost,
			Handler:     AddSessionTips(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
	}
}

func Transactions(service transacting.Transactor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/transactions",
			Method:      http.MethodGet,
			Handler:     ListTransactions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/transactions",
			Method:      http.MethodPost,
			Handler:     CreateTransaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/stats/transactions",
			Method:      http.MethodGet,
			Handler:     GetTransactionStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/transactions/:id",
			Method:      http.MethodGet,
			Handler:     GetTransaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/transactions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTransaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/transactions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTransaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sessions/:id/balance",
			Method:      http.MethodGet,
			Handler:     GetSessionBalance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
	}
}

func Awards(service awarding.Awarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bonos",
			Method:      http.MethodGet,
			Handler:     ListBonos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bonos",
			Method:      http.MethodPost,
			Handler:     CreateBono(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/bonos/:id",
			Method:      http.MethodGet,
			Handler:     GetBono(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bonos/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBono(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/bonos/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBono(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/bonos/total",
			Method:      http.MethodGet,
			Handler:     GetUserBonoTotal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/jackpots",
			Method:      http.MethodGet,
			Handler:     ListJackpotWins(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jackpots",
			Method:      http.MethodPost,
			Handler:     CreateJackpotWin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DealerOrAdmin()},
		},
		{
			Path:        "/v1/stats/jackpots/biggest",
			Method:      http.MethodGet,
			Handler:     GetBiggestJackpotWin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jackpots/:id",
			Method:      http.MethodGet,
			Handler:     GetJackpotWin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/jackpots/:id",
			Method:      http.MethodPut,
			Handler:     UpdateJackpotWin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/jackpots/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteJackpotWin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     CreateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports/date/:date",
			Method:      http.MethodGet,
			Handler:     GetOrGenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports/profitable/list",
			Method:      http.MethodGet,
			Handler:     ListProfitableReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/stats/reports",
			Method:      http.MethodGet,
			Handler:     GetReportStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports/id/:id",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodPut,
			Handler:     UpdateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
