package routers

import (
	"medconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/facets", doctorController.FindFacets)
	router.Get("/{doctor_id}", doctorController.FindByID)
}
