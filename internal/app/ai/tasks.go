package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// AnalyzeMood returns up to three moods from the closed vocabulary.
// "neutral", unknown words and every failure yield an empty slice.
func (g *Gateway) AnalyzeMood(ctx context.Context, text string) []domain.Mood {
	host := g.snapshot(ctx, "analyze_mood")
	if host == nil {
		return []domain.Mood{}
	}

	out, _, err := firstSuccess(ctx, "analyze_mood", []attempt{
		sessionAttempt(host, moodInstruction, "Analyze the mood of this text: "+text),
		promptAttempt(namespace(host),
			"Analyze the mood of this text and return EXACTLY 1-3 single words from: "+domain.MoodList()+
				". Maximum 3 words separated by commas: "+text),
	})
	if err != nil {
		return []domain.Mood{}
	}
	return parseMoods(out)
}

// parseMoods keeps vocabulary words in the order the model gave them,
// without duplicates, capped at domain.MaxDetectedMoods.
func parseMoods(s string) []domain.Mood {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	moods := make([]domain.Mood, 0, domain.MaxDetectedMoods)
	seen := make(map[domain.Mood]bool, domain.MaxDetectedMoods)
	for _, w := range words {
		m, ok := domain.ParseMood(w)
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
		moods = append(moods, m)
		if len(moods) == domain.MaxDetectedMoods {
			break
		}
	}
	return moods
}

// EnhanceWriting rewrites text as a short comedic embellishment.
// Degraded results are the original text followed by a note.
func (g *Gateway) EnhanceWriting(ctx context.Context, text string) string {
	host := g.snapshot(ctx, "enhance_writing")
	if host == nil {
		return text + "\n\n[Note: AI enhancement unavailable - " + notEnabled + "]"
	}

	ns := namespace(host)
	out, _, err := firstSuccess(ctx, "enhance_writing", []attempt{
		sessionAttempt(host, enhanceInstruction, "Make this funny and sarcastic in 2-3 sentences:\n\n"+text),
		directAttempt(APIRewrite, ns.Rewriter != nil, func(ctx context.Context) (string, error) {
			return ns.Rewriter.Rewrite(ctx, text)
		}),
		promptAttempt(ns, "Make this funny and sarcastic: "+text),
	})
	if err != nil {
		if msg := faultMessage(err); msg != "" {
			return text + "\n\n[Note: AI enhancement failed: " + msg + "]"
		}
		return text + "\n\n[Note: AI enhancement unavailable - " + noSuitableAPI + "]"
	}
	return out
}

// SummarizeContent condenses an entry into four short sentences.
func (g *Gateway) SummarizeContent(ctx context.Context, text string) string {
	host := g.snapshot(ctx, "summarize")
	if host == nil {
		return "Summary unavailable - " + notEnabled
	}

	ns := namespace(host)
	out, _, err := firstSuccess(ctx, "summarize", []attempt{
		sessionAttempt(host, summaryInstruction, "Summarize this journal entry in exactly 4 short sentences:\n\n"+text),
		directAttempt(APISummarize, ns.Summarizer != nil, func(ctx context.Context) (string, error) {
			return ns.Summarizer.Summarize(ctx, text)
		}),
		promptAttempt(ns, "Summarize this journal entry in 4 short sentences: "+text),
	})
	if err != nil {
		if msg := faultMessage(err); msg != "" {
			return "Summary unavailable - AI processing failed: " + msg
		}
		return "Summary unavailable - " + noSuitableAPI
	}
	return out
}

// GenerateJournalPrompt picks one of the fixed prompts uniformly at random.
// It never calls the host.
func (g *Gateway) GenerateJournalPrompt() string {
	return journalPrompts[g.intn(len(journalPrompts))]
}

// TranslateEntry translates text into targetLang (a language code such as "es").
// Degraded results always carry the original text.
func (g *Gateway) TranslateEntry(ctx context.Context, text, targetLang string) string {
	host := g.snapshot(ctx, "translate")
	if host == nil {
		return "Translation unavailable - " + notEnabled + ". Original text: " + text
	}

	ns := namespace(host)
	out, _, err := firstSuccess(ctx, "translate", []attempt{
		sessionAttempt(host, translateInstruction,
			"Translate this to "+targetLang+". Return only the translation:\n\n"+text),
		directAttempt(APITranslate, ns.Translator != nil, func(ctx context.Context) (string, error) {
			return ns.Translator.Translate(ctx, text, targetLang)
		}),
		promptAttempt(ns, "Translate this to "+targetLang+". Return only the translation: "+text),
	})
	if err != nil {
		if msg := faultMessage(err); msg != "" {
			return "Translation unavailable - AI processing failed: " + msg + ". Original text: " + text
		}
		return "Translation unavailable - " + noSuitableAPI + ". Original text: " + text
	}
	return out
}

// ProofreadEntry returns the corrected text, or text unchanged on any failure.
func (g *Gateway) ProofreadEntry(ctx context.Context, text string) string {
	host := g.snapshot(ctx, "proofread")
	if host == nil {
		return text
	}

	ns := namespace(host)
	out, _, err := firstSuccess(ctx, "proofread", []attempt{
		sessionAttempt(host, proofreadInstruction, "Correct this text: "+text),
		directAttempt(APIProofread, ns.Proofreader != nil, func(ctx context.Context) (string, error) {
			return ns.Proofreader.Proofread(ctx, text)
		}),
		promptAttempt(ns, "Check and correct: "+text),
	})
	if err != nil {
		return text
	}
	return out
}

// GenerateLifeStory writes one narrative across all entries. onProgress, if
// set, receives the final sanitized story exactly once, and only on success.
func (g *Gateway) GenerateLifeStory(ctx context.Context, entries []string, onProgress func(string)) string {
	count := strconv.Itoa(len(entries))

	host := g.snapshot(ctx, "life_story")
	if host == nil {
		return "Life story generation unavailable - " + notEnabled + ". You have " + count + " journal entries."
	}

	combined := strings.Join(entries, "\n\n")
	ns := namespace(host)
	story, _, err := firstSuccess(ctx, "life_story", []attempt{
		sessionAttempt(host, lifeStoryInstruction,
			"Create a witty, sarcastic, and wise life story reflection from these journal entries. "+
				"Write it like a novel chapter with humor and insight:\n\n"+combined),
		directAttempt(APIWrite, ns.Writer != nil, func(ctx context.Context) (string, error) {
			return ns.Writer.Write(ctx, "Create a witty, sarcastic, and wise life story reflection from these journal entries: "+combined)
		}),
		promptAttempt(ns, "Create a witty, sarcastic, and wise life story reflection from these journal entries: "+combined),
	})
	if err != nil {
		if msg := faultMessage(err); msg != "" {
			return fmt.Sprintf("Life story generation unavailable - AI processing failed: %s. You have %s journal entries.", msg, count)
		}
		return "Life story generation unavailable - " + noSuitableAPI + ". You have " + count + " journal entries."
	}

	if onProgress != nil {
		onProgress(story)
	}
	return story
}
