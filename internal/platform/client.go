package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coursepilot/searchcache/internal/domain"
	"github.com/coursepilot/searchcache/internal/observability"
)

// EmbeddingGenerator turns query text into the fixed-dimension vector
// the transcript index was built with.
type EmbeddingGenerator interface {
	Generate(ctx context.Context, text string) ([]float64, error)
}

// Client calls the host commerce platform's internal APIs. It implements
// both consumed collaborator capabilities: vector search over transcript
// chunks and the creator-to-video-IDs lookup. Candidate expansion and
// viewed-content re-ranking happen inside the platform; the result
// ordering is trusted as-is.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	embedder   EmbeddingGenerator
}

// NewClient creates a new host platform client.
func NewClient(config Config, embedder EmbeddingGenerator) *Client {
	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		embedder: embedder,
	}
}

type searchChunksRequest struct {
	QueryEmbedding      []float64 `json:"query_embedding"`
	VideoIDs            []string  `json:"video_ids,omitempty"`
	StudentID           string    `json:"student_id,omitempty"`
	MatchCount          int       `json:"match_count"`
	SimilarityThreshold float64   `json:"similarity_threshold"`
}

type searchChunksResponse struct {
	Matches []chunkMatch `json:"matches"`
}

type chunkMatch struct {
	Content     string  `json:"content"`
	VideoID     string  `json:"video_id"`
	StartTime   float64 `json:"start_time"`
	Similarity  float64 `json:"similarity"`
	ViewedBoost float64 `json:"viewed_boost,omitempty"`
}

type creatorVideosResponse struct {
	VideoIDs []string `json:"video_ids"`
}

// Search embeds the query text and runs the platform's transcript
// similarity search, returning ranked chunk matches.
func (c *Client) Search(ctx context.Context, req *domain.SearchRequest) ([]domain.SearchResult, error) {
	logger := observability.FromContext(ctx)

	embedding, err := c.embedder.Generate(ctx, req.QueryText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	logger.Debug("query embedded",
		observability.Int("embedding_dimension", len(embedding)))

	payload := searchChunksRequest{
		QueryEmbedding:      embedding,
		VideoIDs:            req.VideoIDFilter,
		StudentID:           req.StudentID,
		MatchCount:          req.MatchCount,
		SimilarityThreshold: req.SimilarityThreshold,
	}

	var resp searchChunksResponse
	if err := c.post(ctx, "/internal/v1/transcripts/search", payload, &resp); err != nil {
		return nil, fmt.Errorf("transcript search failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		results = append(results, domain.SearchResult{
			Content:     match.Content,
			VideoID:     match.VideoID,
			StartTime:   match.StartTime,
			Similarity:  match.Similarity,
			ViewedBoost: match.ViewedBoost,
		})
	}

	return results, nil
}

// ListCreatorVideos returns all video IDs belonging to a creator.
func (c *Client) ListCreatorVideos(ctx context.Context, creatorID string) ([]string, error) {
	var resp creatorVideosResponse
	path := fmt.Sprintf("/internal/v1/creators/%s/videos", creatorID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("creator video lookup failed: %w", err)
	}

	return resp.VideoIDs, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(httpReq, out)
}

func (c *Client) do(httpReq *http.Request, out interface{}) error {
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("platform returned status %d: %s", resp.StatusCode, string(body))
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return nil
}
