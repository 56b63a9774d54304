package routers

import (
	"medconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Get("/", profileController.GetProfile)
	router.Put("/", profileController.UpdateProfile)
	router.Get("/appointments", profileController.ListAppointments)
	router.Post("/avatar", profileController.UploadProfilePicture)
}
