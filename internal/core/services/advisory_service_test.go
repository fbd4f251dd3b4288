package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caremate-health/internal/config"
)

// stubAdvisory is a scriptable AdvisoryGateway
type stubAdvisory struct {
	answer string
	err    error
}

func (s *stubAdvisory) Ask(_ context.Context, _ string) (string, error) {
	return s.answer, s.err
}

func TestAskHealthQuestionReturnsGatewayAnswer(t *testing.T) {
	svc := NewAdvisoryService(&stubAdvisory{answer: "Drink fluids and rest."})

	got := svc.AskHealthQuestion(context.Background(), "fever")
	if got != "Drink fluids and rest." {
		t.Errorf("expected gateway answer, got %q", got)
	}
}

func TestAskHealthQuestionFallsBackOnFault(t *testing.T) {
	svc := NewAdvisoryService(&stubAdvisory{err: errors.New("quota exceeded")})

	got := svc.AskHealthQuestion(context.Background(), "fever")
	if got != AdvisoryFallback {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestAskHealthQuestionFallsBackOnEmptyQuery(t *testing.T) {
	svc := NewAdvisoryService(&stubAdvisory{answer: "should not be used"})

	if got := svc.AskHealthQuestion(context.Background(), "   "); got != AdvisoryFallback {
		t.Errorf("expected fallback for blank query, got %q", got)
	}
}

func advisoryTestConfig(endpoint string) config.AdvisoryConfig {
	return config.AdvisoryConfig{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Model:    "test-model",
		Timeout:  200 * time.Millisecond,
	}
}

func TestGenerativeClientParsesCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Stay hydrated."}]}}]}`))
	}))
	defer server.Close()

	client := NewGenerativeClient(advisoryTestConfig(server.URL))
	got, err := client.Ask(context.Background(), "fever")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "Stay hydrated." {
		t.Errorf("expected candidate text, got %q", got)
	}
}

func TestGenerativeClientErrorsOnNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGenerativeClient(advisoryTestConfig(server.URL))
	if _, err := client.Ask(context.Background(), "fever"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestGenerativeClientErrorsOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGenerativeClient(advisoryTestConfig(server.URL))
	if _, err := client.Ask(context.Background(), "fever"); !errors.Is(err, ErrEmptyAdvisoryResponse) {
		t.Fatalf("expected ErrEmptyAdvisoryResponse, got %v", err)
	}
}

func TestAdvisoryTimeoutDegradesToFallbackThroughService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"too late"}]}}]}`))
	}))
	defer server.Close()

	svc := NewAdvisoryService(NewGenerativeClient(advisoryTestConfig(server.URL)))
	if got := svc.AskHealthQuestion(context.Background(), "fever"); got != AdvisoryFallback {
		t.Errorf("expected fallback on timeout, got %q", got)
	}
}
