package services

// Prompt templates for the three generation tasks. The store's native
// language is Korean; answers and dashboard reads are translated to
// the caller's language at prompt level.

// visionTranscribePrompt asks a vision model to read a photographed
// notice verbatim.
const visionTranscribePrompt = `다음 이미지는 학교에서 보낸 가정통신문입니다.
이미지에 있는 모든 텍스트를 빠짐없이 그대로 옮겨 적어 주세요.
표나 목록이 있으면 줄바꿈으로 구분해 주세요. 설명은 덧붙이지 마세요.`

// summarizePromptFmt asks for the structured summary of one notice.
// The reply must be a single JSON object; the lenient parser still
// runs over it afterwards.
const summarizePromptFmt = `다음은 학교 가정통신문의 전체 텍스트입니다.

---
%s
---

이 가정통신문을 분석해서 아래 형식의 JSON 객체 하나만 출력하세요.
다른 설명은 출력하지 마세요.

{
  "title": "통신문 제목",
  "summary": "학부모가 꼭 알아야 할 내용을 2~3문장으로 요약",
  "details": {
    "date": "관련 날짜 (YYYY-MM-DD 형식, 날짜가 없으면 \"N/A\")",
    "items": ["준비물이나 제출물이 있으면 항목별로", "없으면 빈 배열"]
  }
}`

// translatePromptFmt asks for a JSON-to-JSON translation of a stored
// summary. Keys and non-string values must survive untouched.
const translatePromptFmt = `Translate the string values of the following JSON object into %s.
Keep every key exactly as it is. Do not translate keys. Keep dates and
non-string values unchanged. Output only the translated JSON object.

%s`

// answerPromptFmt is the persona prompt for question answering.
// The retrieved context block is always present; when retrieval found
// nothing it holds the no-match placeholder instead of documents.
const answerPromptFmt = `당신은 한국 학교에 다니는 다문화 가정 자녀의 학부모를 돕는
친절한 안내 도우미 "다온이"입니다. 학교에서 온 가정통신문과 학교 생활에
대해 쉽고 따뜻하게 설명해 주세요.

[참고할 가정통신문 내용]
%s

[학부모의 질문]
%s

규칙:
- 반드시 %s(으)로 답변하세요.
- 참고 내용에 관련 정보가 있으면 그 내용을 근거로 답하세요.
- 참고 내용에 없는 것은 지어내지 말고, 학교에 직접 문의하도록 안내하세요.
- 전문 용어는 쉬운 말로 풀어 주세요.`

// noMatchContext is the context placeholder when retrieval returned
// nothing or was unavailable
const noMatchContext = "no document match"
