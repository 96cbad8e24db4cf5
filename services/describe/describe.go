// Package describe drafts listing descriptions for vendors with Gemini.
// It is optional: when GEMINI_API_KEY is unset the endpoint reports the
// feature as unavailable.
package describe

import (
	"context"
	"fmt"
	"os"
	"strings"

	venueTypes "venue-booking/types/venue"

	"google.golang.org/genai"
)

// Draft generates a short marketing description for a venue or service
// listing from its basic facts.
func Draft(ctx context.Context, req venueTypes.DescribeRequest) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := fmt.Sprintf(
		`Write a single-paragraph marketing description (max 60 words) for an event listing.
Name: %s
City: %s
Capacity: %d
Keywords: %s
Return ONLY the paragraph, no markdown, no preamble.`,
		req.Name, req.City, req.Capacity, req.Keywords,
	)

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.7)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
