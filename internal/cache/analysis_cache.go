package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-analyzer/internal/model"

	"github.com/redis/go-redis/v9"
)

// AnalysisCache handles Redis storage of the most recent portfolio
// analysis per student, so the dashboard can re-fetch a report without
// re-running the rule engine.
type AnalysisCache interface {
	GetLatest(ctx context.Context, studentID string) (*model.PortfolioAnalyzeResponse, error)
	SetLatest(ctx context.Context, studentID string, analysis *model.PortfolioAnalyzeResponse) error
}

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a new analysis cache
func NewAnalysisCache(client *redis.Client) AnalysisCache {
	return &analysisCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *analysisCache) latestKey(studentID string) string {
	return fmt.Sprintf("student:%s:portfolio:latest", studentID)
}

func (c *analysisCache) GetLatest(ctx context.Context, studentID string) (*model.PortfolioAnalyzeResponse, error) {
	data, err := c.client.Get(ctx, c.latestKey(studentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analysis model.PortfolioAnalyzeResponse
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *analysisCache) SetLatest(ctx context.Context, studentID string, analysis *model.PortfolioAnalyzeResponse) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.latestKey(studentID), data, c.ttl).Err()
}
