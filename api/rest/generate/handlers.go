package generate

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/internal/errors"
	"codeberg.org/socialhub/server/internal/llm"
	"codeberg.org/socialhub/server/internal/logger"
	"codeberg.org/socialhub/server/internal/prompts"
	"codeberg.org/socialhub/server/internal/session"
	"github.com/gin-gonic/gin"
)

const generationMaxTokens = 1000

// creates the handler for SNS copy generation
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

		// quota check and record creation are two separate steps; concurrent
		// requests from one session can race past the boundary
		if err := counter.CheckAndReserve(sessionID); err != nil {
			errors.QuotaExceeded(c,
				fmt.Sprintf("일일 생성 한도 %d개를 초과했습니다. 내일 다시 시도해주세요.", counter.Limit()),
				counter.Limit(),
			)

			return
		}

		record := store.Create(req.Topic, contentType, sessionID)

		resp, err := generator.GenerateText(c.Request.Context(), llm.TextGenerationRequest{
			SystemPrompt: prompts.ContentPrompt(contentType, prompts.Tone(req.Tone)),
			UserMessage:  prompts.UserMessage(req.Topic),
			MaxTokens:    generationMaxTokens,
		})

		if err != nil {
			// the record stays pending; a retry creates a new record
			if stderrors.Is(err, llm.ErrUnavailable) {
				logger.ErrorErr(err, "generation service unavailable",
					"record_id", record.ID,
					"session_id", sessionID,
				)

				errors.ServiceUnavailable(c, "OpenAI API 설정을 확인해주세요. API 키가 올바른지, 사용 한도가 남아있는지 확인하세요.")

				return
			}

			errors.InternalError(c, "콘텐츠 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.", err)

			return
		}

		if _, ok := store.AttachGeneratedContent(record.ID, resp.Text); !ok {
			errors.InternalError(c, "콘텐츠 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
				fmt.Errorf("record %d disappeared before content could be attached", record.ID))

			return
		}

		logger.Debug("content generated",
			"record_id", record.ID,
			"content_type", contentType,
			"tokens", resp.Usage.TotalTokens,
		)

		// recount after the insert so the response reflects this request
		status := counter.Status(sessionID)

		c.JSON(http.StatusOK, Response{
			ID:             record.ID,
			Content:        resp.Text,
			ContentType:    req.ContentType,
			Topic:          req.Topic,
			RemainingCount: status.RemainingCount,
			MaxDaily:       status.MaxDaily,
		})
	}
}
