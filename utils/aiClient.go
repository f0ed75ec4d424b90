package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"iapt/config"

	"github.com/go-resty/resty/v2"
)

// AIError carries the upstream status code so rate-limit (429) and exhausted
// credits (402) can be surfaced verbatim to the caller. The two require
// different user messaging.
type AIError struct {
	StatusCode int
	Message    string
}

func (e *AIError) Error() string {
	return fmt.Sprintf("ai api error %d: %s", e.StatusCode, e.Message)
}

// GeneratedQuizQuestion is one AI-authored quiz question
type GeneratedQuizQuestion struct {
	Question      string   `json:"question"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// GeneratedModule is one AI-authored course module with an optional quiz
type GeneratedModule struct {
	Title     string                  `json:"title"`
	Content   string                  `json:"content"`
	Questions []GeneratedQuizQuestion `json:"questions"`
}

// GeneratedCourse is the structured result of a course generation request
type GeneratedCourse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Level       string            `json:"level"`
	Sector      string            `json:"sector"`
	Modules     []GeneratedModule `json:"modules"`
}

// GeneratedArticle is the structured result of a blog generation request
type GeneratedArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

const courseSystemPrompt = `Tu es un formateur expert en intelligence artificielle pour les marchés africains francophones.
Génère un cours complet en français, au format JSON strict:
{"title":"...","description":"...","level":"debutant|intermediaire|avance","sector":"...","modules":[{"title":"...","content":"markdown...","questions":[{"question":"...","question_type":"qcm|vrai_faux","options":["..."],"correct_answer":"..."}]}]}
Chaque module doit contenir 3 à 5 questions de quiz. Réponds uniquement avec le JSON.`

const blogSystemPrompt = `Tu es un rédacteur spécialisé en intelligence artificielle pour l'Afrique francophone.
Génère un article de blog en français, au format JSON strict: {"title":"...","content":"markdown..."}.
Réponds uniquement avec le JSON.`

// GenerateCourse asks the AI completion API for a full draft course
func GenerateCourse(prompt, sector, level string) (*GeneratedCourse, error) {
	userPrompt := prompt
	if sector != "" {
		userPrompt += "\nSecteur cible: " + sector
	}
	if level != "" {
		userPrompt += "\nNiveau: " + level
	}

	body, err := completion(courseSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var course GeneratedCourse
	if err := json.Unmarshal([]byte(body), &course); err != nil {
		return nil, fmt.Errorf("invalid generated course payload: %w", err)
	}
	if course.Title == "" || len(course.Modules) == 0 {
		return nil, fmt.Errorf("generated course is incomplete")
	}
	return &course, nil
}

// GenerateBlogArticle asks the AI completion API for a draft blog article
func GenerateBlogArticle(content string) (*GeneratedArticle, error) {
	body, err := completion(blogSystemPrompt, content)
	if err != nil {
		return nil, err
	}

	var article GeneratedArticle
	if err := json.Unmarshal([]byte(body), &article); err != nil {
		return nil, fmt.Errorf("invalid generated article payload: %w", err)
	}
	if article.Title == "" || article.Content == "" {
		return nil, fmt.Errorf("generated article is incomplete")
	}
	return &article, nil
}

// completion calls the chat-completions endpoint and returns the first choice
// content with any markdown fences stripped
func completion(systemPrompt, userPrompt string) (string, error) {
	if config.AppConfig.AIApiKey == "" {
		return "", &AIError{StatusCode: 503, Message: "AI API key not configured"}
	}

	client := resty.New().SetTimeout(90 * time.Second)
	resp, err := client.R().
		SetAuthToken(config.AppConfig.AIApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": "google/gemini-2.5-flash",
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userPrompt},
			},
		}).
		Post(config.AppConfig.AIApiURL)
	if err != nil {
		log.Printf("AI completion request failed: %v", err)
		return "", fmt.Errorf("ai completion request failed: %w", err)
	}

	switch resp.StatusCode() {
	case 429:
		return "", &AIError{StatusCode: 429, Message: "Trop de requêtes. Réessayez dans quelques instants."}
	case 402:
		return "", &AIError{StatusCode: 402, Message: "Crédits IA épuisés."}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &AIError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &completionResp); err != nil {
		return "", fmt.Errorf("invalid ai response: %w", err)
	}
	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("empty ai response")
	}

	content := strings.TrimSpace(completionResp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content), nil
}
