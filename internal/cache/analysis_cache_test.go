package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"portfolio-analyzer/internal/model"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *model.PortfolioAnalyzeResponse {
	return &model.PortfolioAnalyzeResponse{
		Scores: model.PortfolioScores{
			ImpactTotal: 8.0,
			LensScores:  map[string]float64{"Leadership": 8.0},
			Coverage:    1.0 / 6.0,
		},
		Gaps: []model.PortfolioGap{{Type: "no_spike", Severity: 3}},
	}
}

func TestGetLatest_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAnalysisCache(client)

	mock.ExpectGet("student:stu-1:portfolio:latest").RedisNil()

	analysis, err := c.GetLatest(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Nil(t, analysis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatest_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAnalysisCache(client)

	want := sampleAnalysis()
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("student:stu-1:portfolio:latest").SetVal(string(data))

	got, err := c.GetLatest(context.Background(), "stu-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Scores.ImpactTotal, got.Scores.ImpactTotal)
	assert.Equal(t, want.Gaps, got.Gaps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatest_CorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAnalysisCache(client)

	mock.ExpectGet("student:stu-1:portfolio:latest").SetVal("not json")

	_, err := c.GetLatest(context.Background(), "stu-1")
	assert.Error(t, err)
}

func TestSetLatest(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewAnalysisCache(client)

	analysis := sampleAnalysis()
	data, err := json.Marshal(analysis)
	require.NoError(t, err)

	mock.ExpectSet("student:stu-1:portfolio:latest", data, 24*time.Hour).SetVal("OK")

	require.NoError(t, c.SetLatest(context.Background(), "stu-1", analysis))
	assert.NoError(t, mock.ExpectationsWereMet())
}
