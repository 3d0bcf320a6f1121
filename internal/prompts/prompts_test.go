package prompts

import (
	"testing"

	"codeberg.org/socialhub/server/contenthub/contents"
	"github.com/stretchr/testify/assert"
)

func TestContentPrompt_ProfileIgnoresTone(t *testing.T) {
	formal := ContentPrompt(contents.TypeProfile, ToneFormal)
	casual := ContentPrompt(contents.TypeProfile, ToneCasual)

	assert.Equal(t, formal, casual)
	assert.Contains(t, formal, "프로필")
}

func TestContentPrompt_ToneInstruction(t *testing.T) {
	assert.Contains(t, ContentPrompt(contents.TypeReview, ToneFormal), "존댓말")
	assert.Contains(t, ContentPrompt(contents.TypeReview, ToneCasual), "반말")

	// empty tone defaults to casual
	assert.Contains(t, ContentPrompt(contents.TypeInfo, ""), "반말")
}

func TestContentPrompt_UnknownType(t *testing.T) {
	assert.Empty(t, ContentPrompt(contents.ContentType("story"), ToneCasual))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "주제: 카페 추천", UserMessage("카페 추천"))
}

func TestTopicPrompt_WithIndustry(t *testing.T) {
	prompt := TopicPrompt(contents.TypeReview, "요가")

	assert.Contains(t, prompt, `"요가"`)
	assert.Contains(t, prompt, "후기")
	assert.NotContains(t, prompt, "일반적인 주제로")
}

func TestTopicPrompt_WithoutIndustry(t *testing.T) {
	prompt := TopicPrompt(contents.TypeProfile, "")

	assert.Contains(t, prompt, "프로필 문구")
	assert.Contains(t, prompt, "일반적인 주제로")
}

func TestTopicPrompt_FiveTopicsRequested(t *testing.T) {
	for _, ct := range []contents.ContentType{contents.TypeProfile, contents.TypeReview, contents.TypeInfo} {
		assert.Contains(t, TopicPrompt(ct, ""), "주제 5개", "content type %s", ct)
	}
}
