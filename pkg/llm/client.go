// Package llm wraps the gRPC connection to the LLM sidecar service.
package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/hugocool/fateforger/proto"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn sent to the model.
type Message struct {
	Role    Role
	Content string
}

// StreamChunk represents a streaming chunk from the LLM.
type StreamChunk struct {
	Content string
	IsFinal bool
	Error   string
}

// Client wraps the gRPC connection to the LLM service.
type Client struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
	logger      *slog.Logger
}

// NewClient creates a new LLM client. Model settings come from the
// environment so deployments can switch backends without a rebuild.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if m, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			m32 := int32(m)
			maxTokens = &m32
		}
	}

	logger := slog.Default().With("component", "llm.client")
	logger.Info("LLM client configured", "model", model)

	return &Client{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// GenerateStream generates a response with streaming.
func (c *Client) GenerateStream(ctx context.Context, sessionID string, messages []Message) (<-chan StreamChunk, <-chan error) {
	chunks := make(chan StreamChunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		pbMessages := make([]*pb.Message, len(messages))
		for i, msg := range messages {
			var role pb.Message_Role
			switch msg.Role {
			case RoleSystem:
				role = pb.Message_ROLE_SYSTEM
			case RoleUser:
				role = pb.Message_ROLE_USER
			case RoleAssistant:
				role = pb.Message_ROLE_ASSISTANT
			default:
				role = pb.Message_ROLE_USER
			}

			pbMessages[i] = &pb.Message{
				Role:    role,
				Content: msg.Content,
			}
		}

		req := &pb.GenerateRequest{
			SessionId:      sessionID,
			Messages:       pbMessages,
			Model:          c.model,
			Temperature:    c.temperature,
			MaxTokens:      c.maxTokens,
			ResponseFormat: "json",
		}

		stream, err := c.client.Generate(ctx, req)
		if err != nil {
			errs <- fmt.Errorf("failed to call Generate: %w", err)
			return
		}

		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				errs <- fmt.Errorf("stream error: %w", err)
				return
			}

			switch x := chunk.ChunkType.(type) {
			case *pb.GenerateChunk_Content:
				select {
				case chunks <- StreamChunk{
					Content: x.Content.Content,
					IsFinal: x.Content.IsFinal,
				}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}

			case *pb.GenerateChunk_Error:
				select {
				case chunks <- StreamChunk{Error: x.Error.Message}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
		}
	}()

	return chunks, errs
}

// CollectText drains a generation stream into the full response text.
// A chunk-level error from the backend aborts the collection.
func (c *Client) CollectText(ctx context.Context, sessionID string, messages []Message) (string, error) {
	chunks, errs := c.GenerateStream(ctx, sessionID, messages)

	var sb strings.Builder
	for chunk := range chunks {
		if chunk.Error != "" {
			return "", fmt.Errorf("llm backend error: %s", chunk.Error)
		}
		sb.WriteString(chunk.Content)
	}
	if err := <-errs; err != nil {
		return "", err
	}
	return sb.String(), nil
}
