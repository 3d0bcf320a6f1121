package share

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"codeberg.org/socialhub/server/contenthub/sharing"
	"codeberg.org/socialhub/server/internal/errors"
	"codeberg.org/socialhub/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// creates the handler minting a public share link for a content record
func CreateHandler(registry *sharing.Registry, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentID, err := strconv.Atoi(c.Param("id"))
		if err != nil || contentID <= 0 {
			errors.BadRequest(c, "유효하지 않은 콘텐츠 ID입니다.", nil)
			return
		}

		shareID, err := registry.CreateShareID(contentID)

		if err != nil {
			switch {
			case stderrors.Is(err, sharing.ErrNotFound):
				errors.NotFound(c, "콘텐츠를 찾을 수 없습니다.")
			case stderrors.Is(err, sharing.ErrNotGenerated):
				errors.NotGenerated(c, "아직 생성되지 않은 콘텐츠입니다. 생성이 완료된 후 다시 시도해주세요.")
			default:
				errors.InternalError(c, "공유 링크 생성에 실패했습니다.", err)
			}

			return
		}

		logger.Debug("share link created", "content_id", contentID, "share_id", shareID)

		c.JSON(http.StatusOK, CreateResponse{
			ShareURL: fmt.Sprintf("%s/share/%s", baseURL, shareID),
			ShareID:  shareID,
		})
	}
}

// creates the handler resolving a share id to its public record
func SharedHandler(registry *sharing.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := registry.Resolve(c.Param("shareId"))
		if err != nil {
			errors.NotFound(c, "공유된 콘텐츠를 찾을 수 없습니다.")
			return
		}

		c.JSON(http.StatusOK, SharedResponse{
			Topic:       record.Topic,
			ContentType: string(record.ContentType),
			Content:     record.GeneratedContent,
			CreatedAt:   record.CreatedAt,
		})
	}
}
