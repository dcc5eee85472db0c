package handler

import (
	"net/http"

	"github.com/vfg2006/order-reports-api/internal/api/handler/router"
	"github.com/vfg2006/order-reports-api/internal/usecases/reporting"
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

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/orders/range",
			Method:  http.MethodGet,
			Handler: GetOrdersByRange(service),
		},
		{
			Path:    "/orders/day",
			Method:  http.MethodGet,
			Handler: GetOrdersByDay(service),
		},
	}
}
