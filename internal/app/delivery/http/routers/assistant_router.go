package routers

import (
	"medconnect-service/internal/app/delivery/http/controllers"
	"medconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssistantRoutes(router chi.Router, middlewares *middlewares.Middlewares, assistantController *controllers.AssistantController) {
	router.Use(middlewares.AssistantRateLimit())

	router.Post("/conversations", assistantController.StartConversation)
	router.Get("/conversations/{conversation_id}", assistantController.GetConversation)
	router.Post("/conversations/{conversation_id}/messages", assistantController.SendMessage)
	router.Post("/voice", assistantController.StartVoiceInput)
	router.Post("/images", assistantController.UploadImage)
}
