package assistant

import "fmt"

const greeting = "Hello! I'm your AI medical assistant. I can help you understand symptoms and suggest preliminary care, but I'm not a replacement for professional medical advice. How can I assist you today?"

const replyTemplate = "Based on your symptoms \"%s\", here are some general suggestions:\n\n" +
	"• Rest and stay hydrated\n" +
	"• Consider over-the-counter pain relief if appropriate\n" +
	"• Monitor your symptoms\n" +
	"• Apply cold/warm compress as needed\n\n" +
	"If symptoms persist or worsen, please consult a healthcare professional immediately."

// Reply returns the canned guidance quoting the patient's symptoms.
func Reply(symptoms string) string {
	return fmt.Sprintf(replyTemplate, symptoms)
}
