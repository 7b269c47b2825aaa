package handler

import (
	"net/http"

	"github.com/vfg2006/ads-reporter/internal/api/handler/router"
	"github.com/vfg2006/ads-reporter/internal/usecases/account"
	"github.com/vfg2006/ads-reporter/internal/usecases/reporting"
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

func Reports(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/run",
			Method:  http.MethodPost,
			Handler: RunReport(reporter),
		},
		{
			Path:    "/v1/reports/last",
			Method:  http.MethodGet,
			Handler: GetLastReport(reporter),
		},
		{
			Path:    "/v1/reports/last/segments",
			Method:  http.MethodGet,
			Handler: GetLastReportSegments(reporter),
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: UpsertAdAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateAdAccountStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/daily-report/run",
			Method:  http.MethodPost,
			Handler: RunDailyReportJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
