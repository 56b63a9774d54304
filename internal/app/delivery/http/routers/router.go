package routers

import (
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/delivery/http/controllers"
	"medconnect-service/internal/app/delivery/http/middlewares"
	"medconnect-service/internal/pkg/constvars"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Doctor       *controllers.DoctorController
	Calendar     *controllers.CalendarController
	Appointment  *controllers.AppointmentController
	Assistant    *controllers.AssistantController
	Consultation *controllers.ConsultationController
	Profile      *controllers.ProfileController
}

func pathSegment(value string) string {
	return "/" + strings.Trim(value, "/")
}

// SetupRoutes mounts every API route under /<prefix>/<version> and the
// Prometheus handler at /metrics. A nil gatherer serves the default registry.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
	gatherer prometheus.Gatherer,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)
	if timeout := internalConfig.App.RequestTimeoutInSeconds; timeout > 0 {
		router.Use(chiMiddleware.Timeout(time.Duration(timeout) * time.Second))
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	endpointPrefix := pathSegment(internalConfig.App.EndpointPrefix)
	versionPrefix := pathSegment(internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, controllers.Doctor)
			})

			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, controllers.Calendar)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, controllers.Appointment)
			})

			r.Route("/assistant", func(r chi.Router) {
				attachAssistantRoutes(r, middlewares, controllers.Assistant)
			})

			r.Route("/consultations", func(r chi.Router) {
				attachConsultationRoutes(r, controllers.Consultation)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, controllers.Profile)
			})
		})
	})
}
