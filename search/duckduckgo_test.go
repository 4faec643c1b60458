package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/attune/core"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *DuckDuckGo {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewDuckDuckGo(func(o *DuckDuckGoOptions) {
		o.BaseURL = server.URL
	})
}

func TestDuckDuckGo_AnswerField(t *testing.T) {
	var gotQuery string
	d := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"Answer": "42", "Abstract": "ignored"}`))
	})

	text, err := d.Search(context.Background(), "meaning of life")

	require.NoError(t, err)
	assert.Equal(t, "42.", text)
	assert.Equal(t, "meaning of life", gotQuery)
}

func TestDuckDuckGo_DefinitionBeforeAbstract(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Definition": "A definition.", "Abstract": "An abstract."}`))
	})

	text, err := d.Search(context.Background(), "word")

	require.NoError(t, err)
	assert.Equal(t, "A definition.", text)
}

func TestDuckDuckGo_AbstractTrimmedToTwoSentences(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Abstract": "First sentence. Second sentence. Third sentence. Fourth."}`))
	})

	text, err := d.Search(context.Background(), "topic")

	require.NoError(t, err)
	assert.Equal(t, "First sentence. Second sentence.", text)
}

func TestDuckDuckGo_RelatedTopicsFallback(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"RelatedTopics": [{"Text": ""}, {"Text": "Topic answer."}]}`))
	})

	text, err := d.Search(context.Background(), "topic")

	require.NoError(t, err)
	assert.Equal(t, "Topic answer.", text)
}

func TestDuckDuckGo_NoAnswer(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Answer": "", "Abstract": "", "RelatedTopics": []}`))
	})

	_, err := d.Search(context.Background(), "obscure")

	assert.ErrorIs(t, err, core.ErrNoAnswer)
}

func TestDuckDuckGo_UnexpectedStatus(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := d.Search(context.Background(), "anything")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNoAnswer)
}

func TestDuckDuckGo_ContextCancelled(t *testing.T) {
	d := newTestSearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Answer": "late"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Search(ctx, "anything")
	assert.Error(t, err)
}
