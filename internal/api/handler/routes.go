package handler

import (
	"net/http"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/api/handler/router"
	"github.com/AirPlr/smart-control-api/internal/usecases/appointments"
	"github.com/AirPlr/smart-control-api/internal/usecases/authenticating"
	"github.com/AirPlr/smart-control-api/internal/usecases/billing"
	"github.com/AirPlr/smart-control-api/internal/usecases/hierarchy"
	"github.com/AirPlr/smart-control-api/internal/usecases/reporting"
	"github.com/AirPlr/smart-control-api/internal/usecases/scheduling"
	"github.com/AirPlr/smart-control-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
	}
}

func Appointments(service appointments.AppointmentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/appointments",
			Method:      http.MethodGet,
			Handler:     ListAppointments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/appointments",
			Method:      http.MethodPost,
			Handler:     CreateAppointment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodGet,
			Handler:     GetAppointment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAppointment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/appointments/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAppointment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/appointments/:id/sold",
			Method:      http.MethodPost,
			Handler:     MarkAppointmentSold(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func FollowUps(service scheduling.SchedulingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/appointments/:id/followups",
			Method:      http.MethodGet,
			Handler:     ListFollowUpsByAppointment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/pending",
			Method:      http.MethodGet,
			Handler:     ListPendingFollowUps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/overdue",
			Method:      http.MethodGet,
			Handler:     ListOverdueFollowUps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/upcoming",
			Method:      http.MethodGet,
			Handler:     ListUpcomingFollowUps(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/statistics",
			Method:      http.MethodGet,
			Handler:     GetFollowUpStatistics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteFollowUp(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followups/:id/postpone",
			Method:      http.MethodPost,
			Handler:     PostponeFollowUp(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Consultants(service hierarchy.HierarchyService, appointmentService appointments.AppointmentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultants",
			Method:      http.MethodGet,
			Handler:     ListConsultants(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultants",
			Method:      http.MethodPost,
			Handler:     CreateConsultant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/consultants/:id",
			Method:      http.MethodGet,
			Handler:     GetConsultant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultants/:id",
			Method:      http.MethodPut,
			Handler:     UpdateConsultant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/consultants/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteConsultant(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/consultants/:id/subordinates",
			Method:      http.MethodGet,
			Handler:     ListSubordinates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultants/:id/group-sales",
			Method:      http.MethodGet,
			Handler:     GetGroupSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultants/:id/appointments",
			Method:      http.MethodGet,
			Handler:     ListAppointmentsByConsultant(appointmentService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consultants/:id/stats",
			Method:      http.MethodGet,
			Handler:     GetConsultantStats(appointmentService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/hierarchy/children-index",
			Method:      http.MethodGet,
			Handler:     GetChildrenIndex(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/hierarchy/dangling-appointments",
			Method:      http.MethodGet,
			Handler:     GetDanglingAppointments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Commissions(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commissions/statement",
			Method:      http.MethodPost,
			Handler:     GenerateStatement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/commissions/statement/accept",
			Method:      http.MethodPost,
			Handler:     AcceptStatement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/consultants/:id/sold-appointments",
			Method:      http.MethodGet,
			Handler:     ListSoldAppointmentsForStatement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/performance",
			Method:      http.MethodGet,
			Handler:     GetMonthlyPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
		{
			Path:        "/v1/reports/ranking",
			Method:      http.MethodGet,
			Handler:     GetConsultantRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDealer()},
		},
	}
}

func Clients(repo repository.ClientRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Events(repo repository.CalendarNoteRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     ListCalendarNotes(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodPost,
			Handler:     CreateCalendarNote(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCalendarNote(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCalendarNote(repo),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
