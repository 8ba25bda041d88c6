package ai

import (
	"strings"

	"github.com/PabloGalante/mawazo/internal/domain"
)

const probeInstruction = "You are a helpful assistant."

const probePrompt = `Hello, can you respond with "AI is working"?`

var moodInstruction = "You are a mood analyzer. Analyze the emotional tone of the provided text and return EXACTLY 1-3 single words from this exact list: " +
	domain.MoodList() +
	`. Return ONLY the mood words separated by commas. NO explanations, NO additional text, NO markdown. Maximum 3 words. If no clear mood, return "neutral".`

const enhanceInstruction = "You are a comedy writer. Take the given text and expand it in a funny, witty, sarcastic way. " +
	"Write exactly 2-3 sentences maximum of pure comedy. Be hilarious, clever, and sarcastic. " +
	"Return only the funny expanded version with no explanations, no options, no additional text, no markdown formatting."

const summaryInstruction = "You are a journal assistant. Create exactly 4 short, concise sentences that summarize the journal entry. " +
	"Focus on the main events, emotions, and key insights. Each sentence should be clear and impactful. " +
	"Return only the 4 sentences without any explanations, numbers, or bullet points."

const translateInstruction = "You are a translation machine. Your ONLY job is to translate text. " +
	"Do NOT provide explanations, options, alternatives, notes, or any other text. " +
	`Do NOT say "Here are options" or "The translation is". Do NOT add language labels like "Deutsch:" or "Spanish:". ` +
	"Just translate the text and return ONLY the translated text. Nothing else."

const lifeStoryInstruction = "You are a witty, sarcastic, and wise life story narrator. " +
	"Write a novel-style reflection that captures the person's journey with humor, insight, and a touch of sarcasm. " +
	"Be funny but not mean, wise but not preachy, and honest but not cruel. " +
	"Write it like a clever friend telling their story with wit and wisdom. " +
	"Include observations about patterns, growth, and the absurdity of life. Make it engaging and entertaining to read. " +
	"Do not use any markdown formatting, asterisks, or special characters."

// proofreadDenyList holds phrasings the proofreader must never wrap its answer in.
var proofreadDenyList = []string{
	"here is",
	"here are",
	"the corrected version is",
	"the text is already grammatically correct",
	"however",
	"depending on",
	"you could make",
	"here are a few options",
	"option 1",
	"option 2",
	"option 3",
	"the original is perfectly good",
	"the best choice depends",
	"subtle variations",
	"more polished feel",
	"slightly more",
	"more empathetic",
	"more concise",
	"more formal",
	"more playful",
	"more encouraging",
	"it is a perfectly fine sentence",
	"if you are looking for",
	"this is a bit more",
	"more conversational",
	"slightly more descriptive",
	"however the original",
	"there is nothing wrong",
	"no correction is strictly necessary",
	"the text is grammatically correct",
	"here are a few slightly more polished options",
	"depending on the nuance you want to convey",
	"adds a bit more emphasis",
	"emphasizes the importance",
	"slightly more direct and concise",
	"the original sentence is perfectly acceptable",
	"these options offer subtle variations in phrasing",
	"the corrected text is",
	"here is why",
	"quotation marks",
	"the original text used",
	"while sometimes acceptable",
	"using double quotation marks",
	"is generally preferred",
	"when quoting someone",
	"capitalization",
	"the phrase",
	"should be capitalized",
	"when it is part of",
	"a quoted statement",
	"the text can be improved for clarity",
	"ranging from subtle to more polished",
	"replacing with",
	"is a little more formal",
	"changing the verb conjugation",
	"makes it flow better",
	"using is a very common",
	"the best option depends on the context",
	"option is generally the most natural",
	"but it can be improved",
	"for clarity and naturalness",
	"slightly more formal",
	"replacing usually with typically",
	"more concise and common",
	"most natural and common",
	"using often is a very common",
	"and natural way to phrase this",
	"and the desired tone",
	"however option 3",
	"is generally the most natural",
	"and commonly used phrasing",
}

var proofreadInstruction = buildProofreadInstruction(proofreadDenyList)

func buildProofreadInstruction(deny []string) string {
	quoted := make([]string, len(deny))
	for i, phrase := range deny {
		quoted[i] = `"` + phrase + `"`
	}

	var b strings.Builder
	b.WriteString("You are a text processor that fixes spelling and grammar errors. ")
	b.WriteString("Your output must be EXACTLY one of these two things: 1) The corrected text if there are errors, OR 2) The original text unchanged if there are no errors. ")
	b.WriteString("You must NOT include any explanations, commentary, options, suggestions, alternatives, stylistic advice, or any other text. ")
	b.WriteString("You must NOT use phrases like ")
	b.WriteString(strings.Join(quoted, ", "))
	b.WriteString(". You must NOT answer questions. You must NOT provide examples. You must NOT give multiple versions. ")
	b.WriteString("You must return EXACTLY the corrected text or the original text unchanged.")
	return b.String()
}

// journalPrompts are served without touching the model.
var journalPrompts = [...]string{
	"What made you smile today? What are you grateful for?",
	"What moment today made you pause and think, 'huh, that's interesting'?",
	"If today had a soundtrack, what songs would be on it and why?",
	"What's one thing that happened today that you didn't expect?",
	"What conversation or interaction stuck with you today?",
	"What did you learn about yourself today, even if it's something small?",
	"What's one thing you did today that you're proud of?",
	"If you could relive one moment from today, which would it be and why?",
	"What emotion did you feel most strongly today and what triggered it?",
	"What's something you noticed today that you usually overlook?",
}

// JournalPrompts returns a copy of the fixed prompt pool.
func JournalPrompts() []string {
	out := make([]string, len(journalPrompts))
	copy(out, journalPrompts[:])
	return out
}
