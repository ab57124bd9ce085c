package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neuro-assist/pkg/gemini"
)

func TestBuildIntentPrompt(t *testing.T) {
	transcript := "I need to brush my teeth"

	prompt := gemini.BuildIntentPrompt(transcript)

	if !strings.Contains(prompt, "You are an assistant for a neurodivergent individual") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, transcript) {
		t.Errorf("prompt missing source transcript")
	}
	if !strings.Contains(prompt, "ADD_ROUTINE") || !strings.Contains(prompt, "ADD_EMOTION") {
		t.Errorf("prompt missing intent vocabulary")
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	prompt := gemini.BuildFeedbackPrompt("Breakfast", "None", "Happy (3/5)", `Q: "Sleep?" A: "Well"`)

	for _, want := range []string{"Breakfast", "None", "Happy (3/5)", `Q: "Sleep?" A: "Well"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(prompt, "compassionate therapist") {
		t.Errorf("prompt missing system context")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mock LLM generation check
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text, err := resp.FirstText()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected text: %q", text)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		if _, err := client.GenerateContent(context.Background(), req); err == nil {
			t.Errorf("expected error for 500 response")
		}
	})

	t.Run("No API Key", func(t *testing.T) {
		bare := gemini.NewClient("")
		if bare.Configured() {
			t.Errorf("expected Configured to be false")
		}

		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello"}}},
			},
		}
		if _, err := bare.GenerateContent(context.Background(), req); err == nil {
			t.Errorf("expected error without API key")
		}
	})
}

func TestFirstText_Empty(t *testing.T) {
	resp := &gemini.GenerateResponse{}
	if _, err := resp.FirstText(); err == nil {
		t.Errorf("expected error for empty candidates")
	}
}

func TestSanitizeJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"intent":"ANSWER"}`, `{"intent":"ANSWER"}`},
		{"code fence", "```json\n{\"intent\":\"ANSWER\"}\n```", `{"intent":"ANSWER"}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"surrounding prose", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"array in prose", `Sure! [{"id":"1"}] done`, `[{"id":"1"}]`},
		{"no json", "no structured content here", "no structured content here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gemini.SanitizeJSON(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
