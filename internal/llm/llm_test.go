package llm

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := buildSystemPrompt("zh-CN")
	assert.Contains(t, p, "zh-CN")
	assert.Contains(t, p, "|||")
}

func TestBuildBatchPrompt(t *testing.T) {
	p := buildBatchPrompt([]string{"user", "name"}, nil)
	assert.Contains(t, p, "[1] user")
	assert.Contains(t, p, "[2] name")
	assert.NotContains(t, p, "Established terminology")
}

func TestBuildBatchPromptReferenceTermsSorted(t *testing.T) {
	p := buildBatchPrompt([]string{"widget"}, map[string]string{
		"beta":  "乙",
		"alpha": "甲",
	})
	assert.Contains(t, p, "Established terminology")
	assert.Less(t,
		strings.Index(p, "alpha = 甲"),
		strings.Index(p, "beta = 乙"),
		"reference terms listed in sorted order")
}

type stubTransport func(*http.Request) (*http.Response, error)

func (s stubTransport) RoundTrip(r *http.Request) (*http.Response, error) { return s(r) }

func stubClient(t *testing.T, responseText string) *Client {
	t.Helper()
	c := NewClient("test-key", "test-model")
	c.httpClient.Transport = stubTransport(func(r *http.Request) (*http.Response, error) {
		body := `{"candidates":[{"content":{"parts":[{"text":` + responseText + `}]}}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})
	return c
}

func TestTranslateBatchParsesDelimitedResponse(t *testing.T) {
	c := stubClient(t, `"用户 ||| 名称"`)

	pairs, err := c.TranslateBatch(context.Background(), "zh-CN", []string{"user", "name"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "user", pairs[0].Original)
	assert.Equal(t, "用户", pairs[0].Translated)
	assert.Equal(t, "名称", pairs[1].Translated)
}

func TestTranslateBatchShortResponseLeavesGaps(t *testing.T) {
	c := stubClient(t, `"用户"`)

	pairs, err := c.TranslateBatch(context.Background(), "zh-CN", []string{"user", "name"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "用户", pairs[0].Translated)
	assert.Empty(t, pairs[1].Translated, "missing segments come back empty")
}

func TestTranslateBatchEmptyInput(t *testing.T) {
	c := NewClient("test-key", "test-model")
	pairs, err := c.TranslateBatch(context.Background(), "zh-CN", nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)
}
