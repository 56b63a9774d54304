package requests

type SendAssistantMessage struct {
	Content string `json:"content" validate:"max=2000"`
}
