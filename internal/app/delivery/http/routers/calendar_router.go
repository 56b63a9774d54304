package routers

import (
	"medconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, calendarController *controllers.CalendarController) {
	router.Get("/", calendarController.GetCalendar)
}
