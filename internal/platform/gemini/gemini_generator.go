package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/jvanloon/bingo-api/internal/config"
	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
)

// placeholderKeys are values that show up when someone copies an example
// env file without filling in a real key. They fail construction just like
// an absent key.
var placeholderKeys = map[string]struct{}{
	"undefined":         {},
	"YOUR_API_KEY_HERE": {},
	"PLACEHOLDER":       {},
}

// modelCaller is the narrow seam between prompt construction and the genai
// SDK. Tests substitute a fake; production uses genaiCaller.
type modelCaller interface {
	// generateContent sends the given parts and returns the reply text.
	generateContent(
		ctx context.Context,
		parts []*genai.Part,
		cfg *genai.GenerateContentConfig,
	) (string, error)
}

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	caller modelCaller
}

// Compile-time check that Generator satisfies the generation boundary.
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator bound to a single API key.
//
// The key is validated at construction, not at first use: it must be
// present, must not be the literal string "undefined", and must not be a
// known placeholder value. A violation returns an error wrapping
// generation.ErrInvalidConfig with a user-facing message.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateAPIKey(cfg.GeminiAPIKey); err != nil {
		return nil, err
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		caller: &genaiCaller{client: client, model: cfg.ModelName},
	}, nil
}

// validateAPIKey rejects missing and placeholder-valued keys.
func validateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf(
			"%w: Gemini API key is not configured; set BINGO_LLM_GEMINI_API_KEY",
			generation.ErrInvalidConfig,
		)
	}
	if _, ok := placeholderKeys[key]; ok {
		return fmt.Errorf(
			"%w: Gemini API key is set to the placeholder value %q; replace it with a real key",
			generation.ErrInvalidConfig, key,
		)
	}
	return nil
}

// DetectSubject implements generation.SubjectDetector.
//
// Error policy: configuration errors propagate verbatim; every other
// call or parse failure is swallowed and replaced with the constant
// fallback, favoring game continuity over correctness.
func (g *Generator) DetectSubject(
	ctx context.Context,
	topic string,
	image *domain.ImageData,
) (domain.SubjectContext, error) {
	parts := buildParts(subjectPrompt(topic, image != nil), image)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   subjectSchema,
	}

	text, err := g.caller.generateContent(ctx, parts, cfg)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidConfig) {
			return domain.SubjectContext{}, err
		}
		g.logger.WarnContext(ctx, "subject detection failed, using fallback",
			"error", err,
			"fallback_subject", domain.FallbackSubject)
		return domain.FallbackSubjectContext(), nil
	}

	var payload subjectPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		g.logger.WarnContext(ctx, "subject detection reply unparsable, using fallback",
			"error", err,
			"reply_length", len(text))
		return domain.FallbackSubjectContext(), nil
	}

	if payload.Subject == "" {
		g.logger.WarnContext(ctx, "subject detection reply missing subject, using fallback")
		return domain.FallbackSubjectContext(), nil
	}

	g.logger.DebugContext(ctx, "subject detected",
		"subject", payload.Subject,
		"is_math", payload.IsMath)

	return domain.SubjectContext{Subject: payload.Subject, IsMath: payload.IsMath}, nil
}

// GenerateItems implements generation.ItemGenerator.
//
// Error policy: configuration errors propagate verbatim; an empty or
// unparsable reply fails with an error wrapping generation.ErrGenerationFailed.
// Individual items missing a problem or answer are repaired with the
// sentinel rather than failing the batch.
func (g *Generator) GenerateItems(
	ctx context.Context,
	req generation.ItemRequest,
) ([]domain.BingoItem, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: item count must be at least 1", generation.ErrGenerationFailed)
	}

	parts := buildParts(itemUserPrompt(req), req.Image)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: itemSystemInstruction(req.Context, req.Count)}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   itemsSchema,
	}

	text, err := g.caller.generateContent(ctx, parts, cfg)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	var payload itemsPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w: %v",
			generation.ErrGenerationFailed, generation.ErrInvalidResponse, err)
	}

	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: %w: no items in reply",
			generation.ErrGenerationFailed, generation.ErrInvalidResponse)
	}

	items := make([]domain.BingoItem, 0, len(payload.Items))
	for i, item := range payload.Items {
		if item.Problem == "" || item.Answer == "" {
			g.logger.WarnContext(ctx, "repairing malformed item with sentinel",
				"index", i,
				"missing_problem", item.Problem == "",
				"missing_answer", item.Answer == "")
		}
		items = append(items, domain.NewBingoItem(i, item.Problem, item.Answer))
	}

	g.logger.InfoContext(ctx, "generated bingo items",
		"requested", req.Count,
		"received", len(items),
		"subject", req.Context.Subject)

	return items, nil
}

// buildParts assembles the content parts for one call: the optional inline
// image first, then the text instruction.
func buildParts(prompt string, image *domain.ImageData) []*genai.Part {
	parts := make([]*genai.Part, 0, 2)
	if image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: image.MIMEType,
				Data:     image.Data,
			},
		})
	}
	return append(parts, &genai.Part{Text: prompt})
}

// genaiCaller is the production modelCaller backed by the genai SDK.
type genaiCaller struct {
	client *genai.Client
	model  string
}

func (c *genaiCaller) generateContent(
	ctx context.Context,
	parts []*genai.Part,
	cfg *genai.GenerateContentConfig,
) (string, error) {
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in reply", generation.ErrInvalidResponse)
	}

	if result.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", generation.ErrInvalidResponse)
	}

	return text, nil
}
