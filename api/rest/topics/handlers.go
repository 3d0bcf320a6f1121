package topics

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/internal/errors"
	"codeberg.org/socialhub/server/internal/llm"
	"codeberg.org/socialhub/server/internal/logger"
	"codeberg.org/socialhub/server/internal/prompts"
	"codeberg.org/socialhub/server/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	suggestionMaxTokens   = 500
	suggestionTemperature = 0.8
	maxTopics             = 5
)

// creates the handler for topic suggestion.
// Suggestions consume the same daily quota as content generation: each call
// stores a record in the same per-session, per-day bucket.
func Handler(generator llm.TextGenerator, store *contents.Store, counter *quota.Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if generator == nil {
			errors.ServiceUnavailable(c, "OpenAI API가 설정되지 않았습니다. 잠시 후 다시 시도해주세요.")
			return
		}

		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, "입력 데이터가 올바르지 않습니다", err)
			return
		}

		contentType := contents.ContentType(req.ContentType)
		sessionID := session.FromContext(c)

		if err := counter.CheckAndReserve(sessionID); err != nil {
			errors.QuotaExceeded(c,
				fmt.Sprintf("일일 생성 한도 %d개를 초과했습니다. 내일 다시 시도해주세요.", counter.Limit()),
				counter.Limit(),
			)

			return
		}

		// topic suggestions are stored under a synthetic topic and a generic
		// content type; they exist only to count toward the quota bucket
		record := store.Create(fmt.Sprintf("Topic generation for %s", req.ContentType), contents.TypeInfo, sessionID)

		resp, err := generator.GenerateText(c.Request.Context(), llm.TextGenerationRequest{
			SystemPrompt: prompts.TopicPrompt(contentType, req.Industry),
			UserMessage:  prompts.TopicUserMessage,
			MaxTokens:    suggestionMaxTokens,
			Temperature:  suggestionTemperature,
		})

		if err != nil {
			if stderrors.Is(err, llm.ErrUnavailable) {
				logger.ErrorErr(err, "generation service unavailable",
					"record_id", record.ID,
					"session_id", sessionID,
				)

				errors.ServiceUnavailable(c, "OpenAI API 설정을 확인해주세요.")

				return
			}

			errors.InternalError(c, "주제 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.", err)

			return
		}

		if _, ok := store.AttachGeneratedContent(record.ID, resp.Text); !ok {
			errors.InternalError(c, "주제 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
				fmt.Errorf("record %d disappeared before content could be attached", record.ID))

			return
		}

		status := counter.Status(sessionID)

		c.JSON(http.StatusOK, Response{
			Topics:         splitTopics(resp.Text),
			ContentType:    req.ContentType,
			RemainingCount: status.RemainingCount,
			MaxDaily:       status.MaxDaily,
		})
	}
}

// splits the raw completion into topic lines, dropping blanks and capping
// the list at five entries
func splitTopics(text string) []string {
	topics := make([]string, 0, maxTopics)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		topics = append(topics, line)

		if len(topics) == maxTopics {
			break
		}
	}

	return topics
}
