// Package prompts builds the Korean system prompts for SNS copy generation.
package prompts

import (
	"fmt"

	"codeberg.org/socialhub/server/contenthub/contents"
)

// Tone selects the register of the generated copy
type Tone string

const (
	ToneFormal Tone = "formal"
	ToneCasual Tone = "casual"
)

// returns the instruction fragment for the requested tone; casual is the
// default when the caller sends nothing
func toneInstruction(tone Tone) string {
	if tone == ToneFormal {
		return "존댓말(습니다, 세요)"
	}

	return "반말(야, 어, 지)"
}

// builds the system prompt for content generation of the given type
func ContentPrompt(contentType contents.ContentType, tone Tone) string {
	switch contentType {
	case contents.TypeProfile:
		return profilePrompt
	case contents.TypeReview:
		return fmt.Sprintf(reviewPromptTemplate, toneInstruction(tone))
	case contents.TypeInfo:
		return fmt.Sprintf(infoPromptTemplate, toneInstruction(tone))
	}

	return ""
}

// UserMessage formats the user turn carrying the topic
func UserMessage(topic string) string {
	return fmt.Sprintf("주제: %s", topic)
}

// builds the system prompt for topic suggestion, optionally anchored to an
// industry keyword
func TopicPrompt(contentType contents.ContentType, industry string) string {
	var kind, focused, general string

	switch contentType {
	case contents.TypeProfile:
		kind = "프로필 문구"
		focused = profileTopicFocused
		general = profileTopicGeneral
	case contents.TypeReview:
		kind = "후기성 글"
		focused = reviewTopicFocused
		general = reviewTopicGeneral
	case contents.TypeInfo:
		kind = "정보성 글"
		focused = infoTopicFocused
		general = infoTopicGeneral
	}

	if industry != "" {
		return fmt.Sprintf(`%s에 적합한 주제 5개를 생성해줘.

입력된 키워드/관심사: "%s"

%s

각 주제는 간결하고 구체적으로 작성해줘. 번호나 불릿 없이 한 줄씩만 작성해.`,
			kind, industry, fmt.Sprintf(focused, industry, industry, industry, industry))
	}

	return fmt.Sprintf(`%s에 적합한 주제 5개를 생성해줘.

일반적인 주제로

%s

각 주제는 간결하고 구체적으로 작성해줘. 번호나 불릿 없이 한 줄씩만 작성해.`,
		kind, general)
}

// TopicUserMessage is the fixed user turn for topic suggestion calls
const TopicUserMessage = "주제 5개를 생성해줘."

const profilePrompt = `너는 전환율을 높이는 SNS 프로필 카피라이팅 전문가야.

사용자가 입력한 '주제'를 바탕으로 전환형 Threads 또는 인스타그램 프로필 문구를 작성해줘.

다음 예시와 같은 형식으로 구성해:

💡 '나답게 팔리는 사람'이 정말 될 수 있을까?
👤 퍼스널 브랜딩 & 글쓰기 코치, 1인 창업자 전환 전문
📈 코칭생 200명+, 첫 글 올리고 하루 만에 100만 뷰 경험
📌 나만의 색을 찾고 싶은 분, 위 링크에서 시작하세요

각 줄 앞에 관련된 이모티콘 1개씩 배치하고:
• 첫 줄: 호기심 유발하는 질문이나 임팩트 문장
• 두 번째 줄: 전문성과 정체성을 보여주는 설명
• 세 번째 줄: 구체적인 수치나 경험 기반 증거
• 네 번째 줄: 명확한 행동 유도 문장

자연스럽고 사람 냄새 나는 문체로, 친근하면서도 전문적인 톤으로 작성해줘.`

const reviewPromptTemplate = `너는 사람들에게 신뢰를 주고 전환을 유도하는 SNS 후기 글쓰기 전문가야.

사용자가 입력한 '주제'를 바탕으로, 아래 스토리 구조에 맞춰 후기성 글을 작성해줘:

1. 처음엔 어떤 고민이나 망설임이 있었는지
2. 어떤 계기로 도전하게 되었는지
3. 경험 중 구체적인 순간 또는 변화된 결과
4. 나와 비슷한 사람들에게 공감과 권유 메시지

총 600자 내외로, 너무 광고스럽지 않게 진심이 느껴지도록 써줘.
말투는 %s를 사용해서 작성해.`

const infoPromptTemplate = `너는 팔로워를 늘릴 수 있는 SNS 정보성 글 콘텐츠 제작 전문가야.

사용자가 입력한 '주제'를 바탕으로, Threads나 인스타에 적합한 정보형 글을 아래 구조로 작성해줘:

1. 후킹 문장 1줄 (공감 or 궁금증 유발)
2. 핵심 정보나 팁 5가지 (리스트 형식, 간결하고 유익하게)
3. 마무리: 요약 + 댓글을 유도하는 질문 또는 저장 유도 문장

말투는 %s를 사용해서 작성해. 너무 딱딱하지 않고, 친근하면서 실용적으로 작성해줘.

⚠️ 절대 금지사항:
- ** (별표 두 개) 절대 사용 금지
- * (별표 하나) 절대 사용 금지
- __ (밑줄 두 개) 절대 사용 금지
- _ (밑줄 하나) 절대 사용 금지
- "" (큰따옴표) 절대 사용 금지
- '' (작은따옴표) 절대 사용 금지

반드시 순수한 텍스트로만 작성하고, 강조가 필요할 때는 이모티콘이나 숫자만 사용해.`

const profileTopicFocused = `위 키워드와 연관된 다양한 프로필 주제를 생성해줘:
- %s와 관련된 전문성을 보여주는 주제
- %s 분야의 문제 해결형 주제
- %s에서의 성장/변화 스토리 주제
- %s 관련 라이프스타일이나 철학 주제`

const profileTopicGeneral = `다음과 같은 다양한 유형의 주제를 포함해서:
- 전문성을 보여주는 주제 (예: 마케팅 전문가, 개발자, 디자이너 등)
- 문제 해결형 주제 (예: 시간 관리, 업무 효율, 창업 등)
- 성장/변화 스토리 주제 (예: 퇴사 후 창업, 부업에서 본업으로 등)
- 라이프스타일 주제 (예: 미니멀 라이프, 건강 관리 등)`

const reviewTopicFocused = `위 키워드와 연관된 다양한 후기 주제를 생성해줘:
- %s 관련 교육/강의 수강 후기
- %s 분야의 제품/서비스 사용 후기
- %s와 관련된 도전/변화 경험담
- %s 관련 투자/부업 경험담`

const reviewTopicGeneral = `다음과 같은 다양한 경험담 주제를 포함해서:
- 교육/강의 수강 후기 (예: 온라인 강의, 부트캠프, 워크샵 등)
- 제품/서비스 사용 후기 (예: 앱, 도구, 프로그램 등)
- 도전/변화 경험담 (예: 새로운 습관, 운동, 다이어트 등)
- 투자/부업 경험담 (예: 주식, 부동산, 사이드 프로젝트 등)`

const infoTopicFocused = `위 키워드와 연관된 다양한 정보성 주제를 생성해줘:
- %s 관련 How-to 가이드
- %s 분야의 팁과 노하우
- %s 관련 도구/리소스 추천
- %s 분야의 트렌드/인사이트`

const infoTopicGeneral = `다음과 같은 유용한 정보 주제를 포함해서:
- How-to 가이드 (예: 효율적인 방법, 단계별 과정 등)
- 팁과 노하우 (예: 시간 절약, 비용 절약, 생산성 향상 등)
- 도구/리소스 추천 (예: 앱, 웹사이트, 서비스 등)
- 트렌드/인사이트 (예: 업계 동향, 새로운 기법 등)`
