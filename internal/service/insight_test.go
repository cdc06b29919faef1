package service

import (
	"context"
	"errors"
	"testing"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/genai"
)

func mockGenAI(t *testing.T) *genai.MockClient {
	t.Helper()
	mock, ok := genai.GetClient().(*genai.MockClient)
	if !ok {
		t.Fatal("genai client is not the mock, check TestMain configuration")
	}
	mock.FailNext = false
	mock.FailAlways = false
	mock.Calls = nil
	return mock
}

func TestGenerateInsightsFromAI(t *testing.T) {
	mockGenAI(t)

	insights, source, err := Insight().GenerateInsights(context.Background(), dto.GetInsightsRequest{
		Mood: "happy",
		Note: "aced the interview",
	})
	if err != nil {
		t.Fatalf("GenerateInsights: %v", err)
	}
	if source != model.InsightSourceAI {
		t.Errorf("source = %q, want %q", source, model.InsightSourceAI)
	}
	if insights.Summary == "" || len(insights.Tips) == 0 {
		t.Errorf("insights incomplete: %+v", insights)
	}
}

func TestGenerateInsightsFallsBackOnFailure(t *testing.T) {
	mock := mockGenAI(t)
	mock.FailAlways = true

	insights, source, err := Insight().GenerateInsights(context.Background(), dto.GetInsightsRequest{
		Mood: "sad",
	})
	if err != nil {
		t.Fatalf("failure path must not surface an error, got %v", err)
	}
	if source != model.InsightSourceFallback {
		t.Errorf("source = %q, want %q", source, model.InsightSourceFallback)
	}

	fallback := model.FallbackInsights()
	if insights.Summary != fallback.Summary {
		t.Errorf("summary = %q, want fixed fallback summary", insights.Summary)
	}
	if len(insights.Tips) != len(fallback.Tips) {
		t.Fatalf("fallback tips = %d, want %d", len(insights.Tips), len(fallback.Tips))
	}
	for i, tip := range insights.Tips {
		if tip != fallback.Tips[i] {
			t.Errorf("tip %d = %+v, want %+v", i, tip, fallback.Tips[i])
		}
	}
}

func TestGenerateInsightsRejectsUnknownMood(t *testing.T) {
	mock := mockGenAI(t)

	_, _, err := Insight().GenerateInsights(context.Background(), dto.GetInsightsRequest{Mood: "meh"})
	if !errors.Is(err, pkgerrors.MoodInvalid) {
		t.Fatalf("error = %v, want MOOD_INVALID", err)
	}
	if len(mock.Calls) != 0 {
		t.Error("invalid mood must not reach the AI client")
	}
}
