package tagging_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/helpmatch-api/external/mocks"
	"github.com/campusconnect/helpmatch-api/tagging"
)

func TestAISuggest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return(`{"suggestedTags": ["coding", "backend", "database"], "confidence": 0.9}`, nil).
		Times(1)

	result, err := tagging.NewAI(g).Suggest(context.Background(), "my api is down", 3)
	require.NoError(t, err)
	assert.Equal(t, tagging.SourceAI, result.Source)
	assert.Equal(t, []string{"coding", "backend", "database"}, result.Tags)
}

func TestAISuggestStripsCodeFences(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return("```json\n{\"suggestedTags\": [\"design\", \"frontend\"], \"confidence\": 0.8}\n```", nil).
		Times(1)

	result, err := tagging.NewAI(g).Suggest(context.Background(), "figma mockups look off", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"design", "frontend"}, result.Tags)
}

func TestAISuggestDropsUnknownTagsAndCaps(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return(`{"suggestedTags": ["Quantum", "CODING", "coding", "backend", "frontend"], "confidence": 0.7}`, nil).
		Times(1)

	result, err := tagging.NewAI(g).Suggest(context.Background(), "help with my code", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"coding", "backend"}, result.Tags)
}

func TestAISuggestTextTooShort(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)

	_, err := tagging.NewAI(g).Suggest(context.Background(), " a ", 3)
	assert.Equal(t, tagging.ErrTextTooShort, err)
}

func TestAISuggestUnparseableOutput(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return("Sure! Here are some tags: coding, backend", nil).
		Times(1)

	_, err := tagging.NewAI(g).Suggest(context.Background(), "my api is down", 3)
	assert.Error(t, err)
}

func TestAISuggestNoUsableTags(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return(`{"suggestedTags": ["astrology"], "confidence": 0.4}`, nil).
		Times(1)

	_, err := tagging.NewAI(g).Suggest(context.Background(), "my api is down", 3)
	assert.Equal(t, tagging.ErrNoUsableResult, err)
}

func TestAISuggestModelError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGemini(ctl)
	g.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("upstream unavailable")).
		Times(1)

	_, err := tagging.NewAI(g).Suggest(context.Background(), "my api is down", 3)
	assert.Error(t, err)
}
