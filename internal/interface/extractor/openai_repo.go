package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
)

const systemPrompt = "You are a helpful assistant that is able to intelligently convert uncategorized text from travel " +
	"reservation emails to the following JSON structure: [{ DepartureCity: string, DepartureCountry: string, " +
	"ArrivalCity: string, ArrivalCountry: string, DepartAt: datetime, ArriveAt: datetime, FlightNumber: string?, " +
	"ReservationNumber: string?, FlightOperator: string, AirlineCarrierCode: string, DepartureAirportCode: string, " +
	"ArrivalAirportCode: string, TripLeg: 'outbound' | 'inbound' }]. The result should be an array of json objects, " +
	"with the outbound flight always at position 0, and the inbound flight (where applicable) at position 1. If no " +
	"inbound flight is provided in the input email, simply return null as the element at position 1 in the array. " +
	"You should only respond with JSON and nothing else; for instance, you should not add any plain English text " +
	"before or after your JSON response. If the source text does not contain enough detail for you to parse all the " +
	"information into a JSON, just answer with the following text: not-applicable. When specifying the flight " +
	"operator, give the name of the overarching company. For example, don't say BA CityFlyer, but British Airways etc."

const noResultSentinel = "not-applicable"

// OpenAIExtractorRepository implements the ExtractorRepository interface
// against an OpenAI-compatible chat completions endpoint
type OpenAIExtractorRepository struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// NewOpenAIExtractorRepository creates a new extractor client
func NewOpenAIExtractorRepository(baseURL, apiKey, model string, log logger.Logger) repository.ExtractorRepository {
	return &OpenAIExtractorRepository{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// TicketDataFromText asks the model to decode reservation text into
// candidate leg records. The destination informs the leg tagging.
func (r *OpenAIExtractorRepository) TicketDataFromText(ctx context.Context, text string, destination *entity.Location) ([]*entity.TicketLegData, error) {
	request := chatCompletionRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{
				Role: "user",
				Content: fmt.Sprintf(
					"Please decode the following travel booking text into a structured JSON object: %s. "+
						"Please bear in mind that the user's holiday destination is %s, %s, which will inform "+
						"your choice of the TripLeg parameter.",
					text, destination.City, destination.Country),
			},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, repository.ErrNoResult
	}

	content := completion.Choices[0].Message.Content
	if content == "" || content == noResultSentinel {
		return nil, repository.ErrNoResult
	}

	var legs []*entity.TicketLegData
	if err := json.Unmarshal([]byte(content), &legs); err != nil {
		r.logger.Error("Extractor returned unparsable content", "content", content, "error", err)
		return nil, fmt.Errorf("failed to decode extracted ticket data: %w", err)
	}

	return legs, nil
}
