package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

func TestIsAvailable(t *testing.T) {
	ops := &fakeOps{}
	tests := []struct {
		name string
		gw   *Gateway
		want bool
	}{
		{name: "nil provider", gw: NewGateway(nil), want: false},
		{name: "nil snapshot", gw: NewGateway(staticHost(nil)), want: false},
		{name: "empty namespace", gw: NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{}})), want: false},
		{name: "direct creator", gw: NewGateway(staticHost(&domain.Host{LanguageModel: newCreator("x", nil)})), want: true},
		{name: "namespaced creator", gw: NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{LanguageModel: newCreator("x", nil)}})), want: true},
		{name: "translator only", gw: NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Translator: ops}})), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gw.IsAvailable())
		})
	}
}

func TestIsAvailableIsNotCached(t *testing.T) {
	var current *domain.Host
	gw := NewGateway(domain.HostProviderFunc(func() *domain.Host { return current }))

	assert.False(t, gw.IsAvailable())

	current = &domain.Host{LanguageModel: newCreator("ready", nil)}
	assert.True(t, gw.IsAvailable())
	assert.Equal(t, "ready", gw.SummarizeContent(context.Background(), "entry"))

	current = nil
	assert.False(t, gw.IsAvailable())
	assert.Equal(t, "Summary unavailable - Chrome AI APIs not enabled", gw.SummarizeContent(context.Background(), "entry"))
}

func TestEnhanceWritingCapabilityAbsent(t *testing.T) {
	gw := NewGateway(nil)

	got := gw.EnhanceWriting(context.Background(), "I had a good day")

	assert.Equal(t, "I had a good day\n\n[Note: AI enhancement unavailable - Chrome AI APIs not enabled]", got)
}

func TestTasksFallBackWhenUnavailable(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{}}))

	assert.Empty(t, gw.AnalyzeMood(ctx, "what a day"))
	assert.NotNil(t, gw.AnalyzeMood(ctx, "what a day"))
	assert.Equal(t, "text\n\n[Note: AI enhancement unavailable - Chrome AI APIs not enabled]", gw.EnhanceWriting(ctx, "text"))
	assert.Equal(t, "Summary unavailable - Chrome AI APIs not enabled", gw.SummarizeContent(ctx, "text"))
	assert.Equal(t, "Translation unavailable - Chrome AI APIs not enabled. Original text: text", gw.TranslateEntry(ctx, "text", "fr"))
	assert.Equal(t, "text", gw.ProofreadEntry(ctx, "text"))
	assert.Equal(t,
		"Life story generation unavailable - Chrome AI APIs not enabled. You have 2 journal entries.",
		gw.GenerateLifeStory(ctx, []string{"a", "b"}, func(string) { t.Fatal("onProgress must not run") }))
}

func TestLifeStoryWithoutEntriesWhenAbsent(t *testing.T) {
	got := NewGateway(nil).GenerateLifeStory(context.Background(), []string{}, nil)
	assert.Contains(t, got, "You have 0 journal entries.")
}

func TestTranslateAllInterfacesAbsent(t *testing.T) {
	got := NewGateway(staticHost(nil)).TranslateEntry(context.Background(), "Hello", "es")

	assert.Contains(t, got, "unavailable")
	assert.Contains(t, got, "Hello")
}

func TestSessionCreationFaultFallsThroughToNamespacedCreator(t *testing.T) {
	direct := &fakeCreator{err: errors.New("direct creator exploded")}
	namespaced := newCreator("**Sure**, the day was *legendary*.", nil)
	ops := &fakeOps{reply: "from rewrite"}
	ns := namespaceWith(ops)
	ns.LanguageModel = namespaced
	gw := NewGateway(staticHost(&domain.Host{LanguageModel: direct, AI: ns}))

	got := gw.EnhanceWriting(context.Background(), "I had a good day")

	assert.Equal(t, "Sure, the day was legendary.", got)
	assert.Equal(t, 1, direct.calls, "a failed creator is not retried")
	require.Equal(t, 1, namespaced.calls)
	assert.Equal(t, enhanceInstruction, namespaced.opts[0].SystemPrompt)
	assert.Equal(t, []string{"Make this funny and sarcastic in 2-3 sentences:\n\nI had a good day"}, namespaced.session.prompts)
	assert.Empty(t, ops.calls)
}

func TestPromptFaultFallsThroughToDirectInterface(t *testing.T) {
	direct := newCreator("", errors.New("model is still downloading"))
	ops := &fakeOps{reply: "1. Short summary."}
	ns := namespaceWith(ops)
	gw := NewGateway(staticHost(&domain.Host{LanguageModel: direct, AI: ns}))

	got := gw.SummarizeContent(context.Background(), "long entry")

	assert.Equal(t, "Short summary.", got)
	assert.Equal(t, []string{"summarize:long entry"}, ops.calls)
}

func TestDirectFaultFallsThroughToGenericPrompt(t *testing.T) {
	rewriter := &fakeOps{err: errors.New("rewriter offline")}
	prompter := &fakeOps{reply: "prompted"}
	gw := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Rewriter: rewriter, Prompter: prompter}}))

	got := gw.EnhanceWriting(context.Background(), "walked the dog")

	assert.Equal(t, "prompted", got)
	assert.Equal(t, []string{"rewrite:walked the dog"}, rewriter.calls)
	assert.Equal(t, []string{"prompt:Make this funny and sarcastic: walked the dog"}, prompter.calls)
}

func TestAllPathsFailedEmbedsLastFault(t *testing.T) {
	summarizer := &fakeOps{err: errors.New("quota exceeded")}
	prompter := &fakeOps{err: errors.New("model busy")}
	gw := NewGateway(staticHost(&domain.Host{
		LanguageModel: &fakeCreator{err: errors.New("no gpu")},
		AI:            &domain.Namespace{Summarizer: summarizer, Prompter: prompter},
	}))
	ctx := context.Background()

	assert.Equal(t, "Summary unavailable - AI processing failed: model busy", gw.SummarizeContent(ctx, "x"))
	assert.Equal(t, "x\n\n[Note: AI enhancement failed: model busy]", gw.EnhanceWriting(ctx, "x"))
	assert.Equal(t, "Translation unavailable - AI processing failed: model busy. Original text: Hello", gw.TranslateEntry(ctx, "Hello", "es"))
	assert.Equal(t, "keep me", gw.ProofreadEntry(ctx, "keep me"))
	assert.Empty(t, gw.AnalyzeMood(ctx, "x"))
	assert.Equal(t,
		"Life story generation unavailable - AI processing failed: model busy. You have 1 journal entries.",
		gw.GenerateLifeStory(ctx, []string{"one"}, nil))
}

func TestNoSuitableAPIWhenTaskPathsAreMissing(t *testing.T) {
	// Only a rewriter exists: the host is available, but summarizing has no path.
	gw := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Rewriter: &fakeOps{}}}))
	ctx := context.Background()

	assert.Equal(t, "Summary unavailable - No suitable API found", gw.SummarizeContent(ctx, "x"))
	assert.Equal(t, "Translation unavailable - No suitable API found. Original text: Hola", gw.TranslateEntry(ctx, "Hola", "en"))
	assert.Equal(t, "Life story generation unavailable - No suitable API found. You have 0 journal entries.", gw.GenerateLifeStory(ctx, nil, nil))
}

func TestEmptyOutputCountsAsFailure(t *testing.T) {
	ops := &fakeOps{reply: "translated"}
	ns := namespaceWith(ops)
	gw := NewGateway(staticHost(&domain.Host{LanguageModel: newCreator("  **  **  ", nil), AI: ns}))

	got := gw.TranslateEntry(context.Background(), "Hello", "es")

	assert.Equal(t, "translated", got)
	assert.Equal(t, []string{"translate:es:Hello"}, ops.calls)
}

func TestAnalyzeMood(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []domain.Mood
	}{
		{name: "single", reply: "happy", want: []domain.Mood{domain.MoodHappy}},
		{name: "comma list keeps order", reply: "Grateful, tired", want: []domain.Mood{domain.MoodGrateful, domain.MoodTired}},
		{name: "capped at three", reply: "happy, sad, excited, anxious", want: []domain.Mood{domain.MoodHappy, domain.MoodSad, domain.MoodExcited}},
		{name: "neutral is empty", reply: "neutral", want: []domain.Mood{}},
		{name: "unknown words dropped", reply: "**Joyful**, hopeful, reflective.", want: []domain.Mood{domain.MoodHopeful, domain.MoodReflective}},
		{name: "duplicates collapse", reply: "calm\nsad\nsad", want: []domain.Mood{domain.MoodSad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := newCreator(tt.reply, nil)
			gw := NewGateway(staticHost(&domain.Host{LanguageModel: creator}))

			got := gw.AnalyzeMood(context.Background(), "my entry")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, moodInstruction, creator.opts[0].SystemPrompt)
			assert.Equal(t, []string{"Analyze the mood of this text: my entry"}, creator.session.prompts)
		})
	}
}

func TestAnalyzeMoodOutputStaysInVocabulary(t *testing.T) {
	replies := []string{
		"happy sad excited anxious peaceful",
		"I feel hopeful and a little tired, maybe confused",
		"neutral, neutral",
		"MOTIVATED!!! grateful?? peaceful...",
		"",
	}
	for _, reply := range replies {
		gw := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Prompter: &fakeOps{reply: reply}}}))

		got := gw.AnalyzeMood(context.Background(), "entry")

		assert.LessOrEqual(t, len(got), domain.MaxDetectedMoods)
		for _, m := range got {
			_, ok := domain.ParseMood(string(m))
			assert.True(t, ok, "mood %q from reply %q", m, reply)
		}
	}
}

func TestProofreadUsesDenyListInstruction(t *testing.T) {
	creator := newCreator("I went to the store.", nil)
	gw := NewGateway(staticHost(&domain.Host{LanguageModel: creator}))

	got := gw.ProofreadEntry(context.Background(), "i goed to the store")

	assert.Equal(t, "I went to the store.", got)
	instruction := creator.opts[0].SystemPrompt
	for _, phrase := range proofreadDenyList {
		assert.Contains(t, instruction, `"`+phrase+`"`)
	}
}

func TestGenerateLifeStoryCallsProgressOnce(t *testing.T) {
	creator := newCreator("## Chapter One\nYou wrote *a lot*.", nil)
	gw := NewGateway(staticHost(&domain.Host{LanguageModel: creator}))

	var updates []string
	got := gw.GenerateLifeStory(context.Background(), []string{"first", "second"}, func(s string) {
		updates = append(updates, s)
	})

	assert.Equal(t, "Chapter One\nYou wrote a lot.", got)
	assert.Equal(t, []string{got}, updates)
	assert.Equal(t, lifeStoryInstruction, creator.opts[0].SystemPrompt)
	require.Len(t, creator.session.prompts, 1)
	assert.True(t, strings.HasSuffix(creator.session.prompts[0], "first\n\nsecond"))
}

func TestGenerateLifeStoryUsesWriter(t *testing.T) {
	writer := &fakeOps{reply: "story"}
	gw := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Writer: writer}}))

	calls := 0
	got := gw.GenerateLifeStory(context.Background(), []string{"a"}, func(string) { calls++ })

	assert.Equal(t, "story", got)
	assert.Equal(t, 1, calls)
	require.Len(t, writer.calls, 1)
	assert.True(t, strings.HasPrefix(writer.calls[0], "write:Create a witty"))
}

func TestGenerateJournalPrompt(t *testing.T) {
	gw := NewGateway(nil)
	pool := JournalPrompts()
	require.Len(t, pool, 10)

	counts := make(map[string]int, len(pool))
	const n = 10000
	for i := 0; i < n; i++ {
		p := gw.GenerateJournalPrompt()
		require.Contains(t, pool, p)
		counts[p]++
	}

	// Expected 1000 each; the standard deviation is about 30.
	for _, p := range pool {
		assert.InDelta(t, n/len(pool), counts[p], 200, "prompt %q", p)
	}
}

func TestGenerateJournalPromptUsesInjectedRandom(t *testing.T) {
	gw := NewGateway(nil)
	gw.intn = func(int) int { return 9 }

	assert.Equal(t, JournalPrompts()[9], gw.GenerateJournalPrompt())
}

func TestFailedPathsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := observability.Logger()
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(prev) })

	gw := NewGateway(staticHost(&domain.Host{
		LanguageModel: &fakeCreator{err: errors.New("boom")},
		AI:            &domain.Namespace{Proofreader: &fakeOps{reply: "fixed"}},
	}))

	assert.Equal(t, "fixed", gw.ProofreadEntry(context.Background(), "fixd"))
	assert.Equal(t, 1, logs.FilterMessage("session creation failed").Len())
	failed := logs.FilterMessage("ai path failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "proofread", failed[0].ContextMap()["task"])
}

func TestProbe(t *testing.T) {
	ctx := context.Background()

	absent := NewGateway(nil).Probe(ctx)
	assert.False(t, absent.Available)
	assert.NotEmpty(t, absent.Error)

	direct := &fakeCreator{err: errors.New("nope")}
	ns := &domain.Namespace{LanguageModel: newCreator("AI is working", nil)}
	got := NewGateway(staticHost(&domain.Host{LanguageModel: direct, AI: ns})).Probe(ctx)
	assert.Equal(t, ProbeResult{Available: true, Result: "AI is working", API: APINamespacedModel}, got)

	prompter := &fakeOps{reply: "AI is working"}
	got = NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Prompter: prompter}})).Probe(ctx)
	assert.Equal(t, APIPrompt, got.API)
	assert.Equal(t, []string{"prompt:" + probePrompt}, prompter.calls)

	got = NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Rewriter: &fakeOps{}}})).Probe(ctx)
	assert.Equal(t, ProbeResult{Error: "No suitable API found"}, got)
}

func TestWarmUp(t *testing.T) {
	ctx := context.Background()

	ok := NewGateway(staticHost(&domain.Host{LanguageModel: newCreator("ok", nil)})).WarmUp(ctx)
	assert.True(t, ok.Success)

	downloading := NewGateway(staticHost(&domain.Host{LanguageModel: newCreator("", errors.New("model download in progress"))})).WarmUp(ctx)
	assert.True(t, downloading.Success)
	assert.Contains(t, downloading.Message, "may take a few minutes")

	broken := NewGateway(staticHost(&domain.Host{LanguageModel: newCreator("", errors.New("permission denied"))})).WarmUp(ctx)
	assert.False(t, broken.Success)
	assert.Equal(t, "permission denied", broken.Error)

	noSession := NewGateway(staticHost(&domain.Host{AI: &domain.Namespace{Prompter: &fakeOps{}}})).WarmUp(ctx)
	assert.Equal(t, WarmUpResult{Error: "LanguageModel API not available"}, noSession)
}
