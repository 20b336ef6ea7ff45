package chatbot

import (
	"github.com/campusgate/uniportal/services/knowledge"
	"github.com/campusgate/uniportal/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ChatbotHandler serves the public FAQ chatbot
type ChatbotHandler struct{}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

// AskRequest is a single free-text chatbot question
type AskRequest struct {
	Message string `json:"message"`
}

// AskResponse carries the generated reply and the matched categories, which
// the UI renders as suggestion chips.
type AskResponse struct {
	Reply   string   `json:"reply"`
	Matches []string `json:"matches"`
}

// Ask handles POST /api/v1/chatbot. The chatbot is public and must never
// surface an error for a bad question; unmatched queries get the fallback
// answer.
func (h *ChatbotHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entries := knowledge.FindRelevant(req.Message, knowledge.Table)
	reply := knowledge.GenerateAnswer(req.Message, entries)

	matches := make([]string, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, e.Category)
	}

	return response.Success(c, AskResponse{
		Reply:   reply,
		Matches: matches,
	})
}
