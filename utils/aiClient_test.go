package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iapt/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) []byte {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestGenerateBlogArticle(t *testing.T) {
	t.Run("StripsMarkdownFences", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(completionResponse("```json\n{\"title\":\"L'IA au Sénégal\",\"content\":\"## Introduction\"}\n```"))
		}))
		defer server.Close()

		config.AppConfig.AIApiKey = "sk-test"
		config.AppConfig.AIApiURL = server.URL

		article, err := GenerateBlogArticle("L'IA dans l'agriculture")
		require.NoError(t, err)
		assert.Equal(t, "L'IA au Sénégal", article.Title)
		assert.Equal(t, "## Introduction", article.Content)
	})

	t.Run("RateLimitedPassesStatusThrough", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		config.AppConfig.AIApiKey = "sk-test"
		config.AppConfig.AIApiURL = server.URL

		_, err := GenerateBlogArticle("sujet")
		var aiErr *AIError
		require.ErrorAs(t, err, &aiErr)
		assert.Equal(t, 429, aiErr.StatusCode)
		assert.Equal(t, "Trop de requêtes. Réessayez dans quelques instants.", aiErr.Message)
	})

	t.Run("CreditsExhausted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer server.Close()

		config.AppConfig.AIApiKey = "sk-test"
		config.AppConfig.AIApiURL = server.URL

		_, err := GenerateBlogArticle("sujet")
		var aiErr *AIError
		require.ErrorAs(t, err, &aiErr)
		assert.Equal(t, 402, aiErr.StatusCode)
		assert.Equal(t, "Crédits IA épuisés.", aiErr.Message)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		config.AppConfig.AIApiKey = ""

		_, err := GenerateBlogArticle("sujet")
		var aiErr *AIError
		require.ErrorAs(t, err, &aiErr)
		assert.Equal(t, 503, aiErr.StatusCode)
	})
}

func TestGenerateCourse(t *testing.T) {
	t.Run("ParsesModulesAndQuestions", func(t *testing.T) {
		generated := `{"title":"Introduction à l'IA","description":"desc","level":"debutant","sector":"agriculture","modules":[{"title":"Module 1","content":"...","questions":[{"question":"Q1","question_type":"qcm","options":["a","b"],"correct_answer":"a"}]}]}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(completionResponse(generated))
		}))
		defer server.Close()

		config.AppConfig.AIApiKey = "sk-test"
		config.AppConfig.AIApiURL = server.URL

		course, err := GenerateCourse("Un cours sur l'IA", "agriculture", "debutant")
		require.NoError(t, err)
		assert.Equal(t, "Introduction à l'IA", course.Title)
		require.Len(t, course.Modules, 1)
		require.Len(t, course.Modules[0].Questions, 1)
		assert.Equal(t, "a", course.Modules[0].Questions[0].CorrectAnswer)
	})

	t.Run("RejectsEmptyCourse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(completionResponse(`{"title":"","modules":[]}`))
		}))
		defer server.Close()

		config.AppConfig.AIApiKey = "sk-test"
		config.AppConfig.AIApiURL = server.URL

		_, err := GenerateCourse("prompt", "", "")
		assert.Error(t, err)
	})
}
