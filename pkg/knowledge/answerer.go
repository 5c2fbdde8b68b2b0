package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/viliokaized/prime-intake/agent/contract"
)

const allSetMessage = "✅ Thank you! You're all set. A licensed agent will contact you soon. " +
	"You can also book a meeting or ask more questions here.\n\n💬 How else can I help you today?"

const answerSuffix = "\n\n🙏 Thank you for your question! 💬 How else can I help you today?"

type Config struct {
	APIKey              string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	BaseURL             string        `envconfig:"BASE_URL" split_words:"true"`
	Model               string        `envconfig:"MODEL" split_words:"true" default:"gpt-4"`
	MaxCompletionTokens int64         `envconfig:"MAX_COMPLETION_TOKENS" split_words:"true" default:"300"`
	Temperature         float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout             time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Answerer answers visitor questions from the knowledge base via the OpenAI
// chat completions API. It implements contract.Answerer.
type Answerer struct {
	client      *openaisdk.Client
	base        *Base
	model       string
	maxTokens   int64
	temperature float64
}

var _ contractx.Answerer = (*Answerer)(nil)

func NewAnswerer(cfg Config, base *Base) (*Answerer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("openai model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openaisdk.NewClient(opts...)

	return &Answerer{
		client:      &client,
		base:        base,
		model:       model,
		maxTokens:   cfg.MaxCompletionTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Answer produces a knowledge-base answer for the question. When the request
// carries a full identity triple it returns the canned acknowledgment without
// touching the generation capability.
func (a *Answerer) Answer(ctx context.Context, req contractx.AnswerRequest) (string, error) {
	if req.HasFullIdentity() {
		return allSetMessage, nil
	}

	content, err := a.complete(ctx, a.answerPrompt(req), "")
	if err != nil {
		return "", err
	}
	return content + answerSuffix, nil
}

// Generate invokes the raw generation capability with an explicit system
// instruction.
func (a *Answerer) Generate(ctx context.Context, system, user string) (string, error) {
	return a.complete(ctx, system, user)
}

func (a *Answerer) complete(ctx context.Context, system, user string) (string, error) {
	messages := []openaisdk.ChatCompletionMessageParamUnion{
		openaisdk.SystemMessage(system),
	}
	if user != "" {
		messages = append(messages, openaisdk.UserMessage(user))
	}

	resp, err := a.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(a.model),
		Messages:    messages,
		MaxTokens:   openaisdk.Int(a.maxTokens),
		Temperature: openaisdk.Float(a.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("chat completion returned empty content")
	}
	return content, nil
}

func (a *Answerer) answerPrompt(req contractx.AnswerRequest) string {
	var sb strings.Builder
	sb.WriteString(`You are Prime, a smart and friendly virtual insurance agent.
Your job is to help users, collect their contact info (full name, email, phone, type of insurance), and answer questions clearly.

Speak like a real human: short sentences, warm tone, not robotic.
Always thank the user after each message.
Only ask one question at a time.
If the user already gave some info, don't ask again.

If you don't know something, politely say so.
When answering, be kind and professional - like a real insurance expert.

Always end your response with:
💬 How else can I help you today?

Keep responses under 2-3 sentences.
`)

	if kb := a.base.Text(); kb != "" {
		sb.WriteString("\nKnowledge Base:\n")
		sb.WriteString(kb)
		sb.WriteString("\n")
	}
	if req.Supplemental != "" {
		sb.WriteString("\nAdditional context from the visitor's documents:\n")
		sb.WriteString(req.Supplemental)
		sb.WriteString("\n")
	}

	sb.WriteString("\nQuestion: ")
	sb.WriteString(req.Question)
	sb.WriteString("\nAnswer:")
	return sb.String()
}
