package explain

import (
	"fmt"
	"strings"
)

const explanationSystemPrompt = `You are an experienced California real estate exam tutor. A student preparing for the salesperson exam asks you to explain a key concept. Be precise about California-specific rules and terminology, and keep the language accessible to someone without a legal background.`

func buildExplanationUserMessage(topic, subtopic, concept string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain the concept %q for the California real estate salesperson exam.\n", concept)
	if topic != "" {
		fmt.Fprintf(&b, "Exam topic area: %s\n", topic)
	}
	if subtopic != "" {
		fmt.Fprintf(&b, "Subtopic: %s\n", subtopic)
	}
	b.WriteString("\nRespond with the structured explanation only.")

	return b.String()
}
