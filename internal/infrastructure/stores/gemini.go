package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/eatelligence/scanner/internal/domain"
	"google.golang.org/genai"
)

// GeminiFinder suggests stores with the Gemini API. The model is asked for a
// JSON array so the reply can be parsed without a response schema.
type GeminiFinder struct {
	client *genai.Client
	model  string
}

// NewGeminiFinder creates a Gemini-backed store finder
func NewGeminiFinder(ctx context.Context, apiKey, model string) (*GeminiFinder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiFinder{
		client: client,
		model:  model,
	}, nil
}

// FindStores asks the model for stores likely to carry healthier
// alternatives to the named product.
func (f *GeminiFinder) FindStores(ctx context.Context, productName string) ([]domain.Store, error) {
	prompt := fmt.Sprintf(`Suggest 5 common stores that typically carry healthier alternatives to %s.
Focus on:
- Health food stores
- Organic grocery stores
- Natural food markets
- Specialty health stores

For each store provide:
- Store name
- Brief description of why this store is a good option
- Types of healthy alternatives they typically carry
- Any special features (e.g., organic section, bulk foods, etc.)

Format the response as a JSON array with these keys for each store:
- name
- description
- healthy_alternatives
- special_features

Keep descriptions concise but informative.`, productName)

	result, err := f.client.Models.GenerateContent(ctx, f.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("store generation failed: %w", err)
	}

	stores, err := parseStoreJSON(result.Text())
	if err != nil {
		log.Printf("[STORES] Could not parse Gemini reply: %v", err)
		return nil, err
	}

	return stores, nil
}

// geminiStore matches the JSON keys requested in the prompt.
type geminiStore struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	HealthyAlternatives string `json:"healthy_alternatives"`
	SpecialFeatures     string `json:"special_features"`
}

// parseStoreJSON extracts the bracketed JSON array from model output. The
// model wraps the array in prose or code fences often enough that slicing
// between the outermost brackets is the reliable path.
func parseStoreJSON(text string) ([]domain.Store, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model output")
	}

	var parsed []geminiStore
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode store array: %w", err)
	}

	stores := make([]domain.Store, 0, len(parsed))
	for _, s := range parsed {
		if s.Name == "" {
			continue
		}
		stores = append(stores, domain.Store{
			Name:                s.Name,
			Description:         s.Description,
			HealthyAlternatives: s.HealthyAlternatives,
			SpecialFeatures:     s.SpecialFeatures,
		})
	}

	return stores, nil
}
