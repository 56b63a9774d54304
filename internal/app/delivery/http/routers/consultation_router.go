package routers

import (
	"medconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, consultationController *controllers.ConsultationController) {
	router.Route("/{session_id}", func(r chi.Router) {
		r.Get("/", consultationController.GetConsultation)
		r.Post("/pre-consultation", consultationController.SubmitPreConsultation)
		r.Post("/start", consultationController.StartConsultation)
		r.Post("/end", consultationController.EndConsultation)
		r.Get("/join", consultationController.JoinConsultation)
		r.Post("/media/{device}", consultationController.ToggleMedia)
	})
}
