package gemini

import (
	"fmt"
	"strings"

	"github.com/tanawatp/newslingo"
	"google.golang.org/genai"
)

// BuildCleanPrompt builds the prompt for the Clean stage: the model
// receives scraped text that may still contain navigation, ads, captions,
// and footers, and must return only the article body.
func BuildCleanPrompt(raw string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following text scraped from a news page. ")
	sb.WriteString("It may contain unrelated material such as navigation menus, advertisements, image captions, or site footers.\n")
	sb.WriteString("Select only the core article content (introduction, body paragraphs, conclusion), ")
	sb.WriteString("omit everything else, and respond with the selected article text only.\n\n")
	sb.WriteString("--- scraped text ---\n")
	sb.WriteString(raw)
	return sb.String()
}

// CleanConfig returns the GenerateContentConfig for the Clean stage.
func CleanConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a precise core-article extractor. Respond with clean article text only.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the prompt for the Summarize stage.
func BuildSummaryPrompt(clean string) string {
	return "Summarize the following English news article in Thai, concise and easy to understand, as a single paragraph:\n\n---\n\n" + clean
}

// SummaryConfig returns the GenerateContentConfig for the Summarize stage.
func SummaryConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a news summarization assistant fluent in Thai.",
			}},
		},
	}
}

// BuildVocabPrompt builds the prompt for the vocabulary stage. Example
// sentences must be quoted verbatim from the article text; that contract
// lives in the prompt and is not mechanically enforced.
func BuildVocabPrompt(clean string) string {
	return fmt.Sprintf("From the following news article, build a list of exactly %d English words suitable for Thai high-school students, each with its Thai translation and an example sentence that uses the word, taken verbatim from the article text:\n\n---\n\n%s", newslingo.VocabCount, clean)
}

// VocabConfig returns the GenerateContentConfig for the vocabulary stage,
// requesting JSON constrained by VocabSchema.
func VocabConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   VocabSchema(),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an English teacher who builds lessons from authentic news content. Respond only with JSON that conforms to the provided schema.",
			}},
		},
	}
}

// VocabSchema declares the structured-output shape for vocabulary entries:
// an array of objects with three required string fields.
func VocabSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"English_Word": {
					Type:        genai.TypeString,
					Description: "High-school level English word from the article",
				},
				"Thai_Translation": {
					Type:        genai.TypeString,
					Description: "Thai translation of the word",
				},
				"Example_Sentence": {
					Type:        genai.TypeString,
					Description: "Full sentence using the word, quoted from the article text",
				},
			},
			Required: []string{"English_Word", "Thai_Translation", "Example_Sentence"},
		},
	}
}

// BuildFetchPrompt builds the prompt for the delegated fetcher, which asks
// the model to retrieve and clean the article in one step.
func BuildFetchPrompt(url string) string {
	var sb strings.Builder
	sb.WriteString("Retrieve the news article at the following URL and extract only its core content ")
	sb.WriteString("(introduction, body paragraphs, conclusion). ")
	sb.WriteString("Ignore headers, footers, navigation menus, advertisements, and related links. ")
	sb.WriteString("Respond with the cleaned English article text only.\n\n--- URL ---\n")
	sb.WriteString(url)
	return sb.String()
}

// FetchConfig returns the GenerateContentConfig for the delegated fetcher.
func FetchConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a precise news-content extractor. Respond only with the clean English text of the article.",
			}},
		},
		Temperature: &temp,
	}
}
