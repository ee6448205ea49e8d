package gemini

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/campus-sathi/campus-sathi/pkg/ai"
)

const NAME = "gemini"

type Driver struct {
	client *genai.Client
	model  ai.ModelName
}

func New(token string, model ai.ModelName) *Driver {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(token))
	if err != nil {
		panic(err)
	}

	if model.ChatModel == "" {
		model.ChatModel = "gemini-1.5-flash"
	}
	if model.EmbeddingModel == "" {
		model.EmbeddingModel = "embedding-001"
	}

	return &Driver{
		client: client,
		model:  model,
	}
}

func (s *Driver) Name() string {
	return NAME
}

// Query maps the openai-shaped message list onto a gemini chat session: the
// system message becomes the system instruction, prior turns become history
// and the last user message is sent as the request.
func (s *Driver) Query(ctx context.Context, messages []ai.MessageContext) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("empty message list")
	}

	model := s.client.GenerativeModel(s.model.ChatModel)

	var history []*genai.Content
	var last string
	for i, msg := range messages {
		switch msg.Role {
		case openai.ChatMessageRoleSystem:
			model.SystemInstruction = genai.NewUserContent(genai.Text(msg.Content))
		case openai.ChatMessageRoleAssistant:
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			if i == len(messages)-1 {
				last = msg.Content
				continue
			}
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}

	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	session := model.StartChat()
	session.History = history

	resp, err := session.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("empty response content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if resp.Candidates[0].FinishReason != genai.FinishReasonStop {
			slog.Warn("Query, ai finished without stop", slog.String("reason", resp.Candidates[0].FinishReason.String()))
		}
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}

func (s *Driver) embedding(ctx context.Context, title string, content []string) ([][]float32, error) {
	slog.Debug("Embedding", slog.String("driver", NAME))
	em := s.client.EmbeddingModel(s.model.EmbeddingModel)
	if title != "" {
		em.TaskType = genai.TaskTypeRetrievalDocument
	} else {
		em.TaskType = genai.TaskTypeRetrievalQuery
	}

	var result [][]float32
	for _, v := range content {
		res, err := em.EmbedContentWithTitle(ctx, title, genai.Text(v))
		if err != nil {
			return nil, err
		}
		result = append(result, res.Embedding.Values)
	}
	return result, nil
}

func (s *Driver) EmbeddingForQuery(ctx context.Context, content []string) ([][]float32, error) {
	return s.embedding(ctx, "", content)
}

func (s *Driver) EmbeddingForDocument(ctx context.Context, title string, content []string) ([][]float32, error) {
	return s.embedding(ctx, title, content)
}
