package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/VeldyVA/ZakatCalculator/internal/zakat"
)

var (
	// ErrUpstream covers transport failures and non-200 answers from the
	// completion API. The upload fails; nothing else does.
	ErrUpstream = errors.New("failed to process file with AI")
	// ErrInvalidPayload means the model answered but not with the JSON shape
	// we asked for.
	ErrInvalidPayload = errors.New("AI returned invalid data")
	// ErrUnknownType rejects zakat types outside harta/perusahaan/profesi.
	ErrUnknownType = errors.New("unknown zakat type")
)

// WealthExtraction mirrors the JSON shape the UI expects for harta uploads.
// Field names are the original wire contract.
type WealthExtraction struct {
	CashSavings struct {
		USD float64 `json:"usd"`
		IDR float64 `json:"idr"`
	} `json:"uangTunaiTabunganDeposito"`
	GoldSilverGrams        float64 `json:"emasPerakGram"`
	AnnualInvestmentReturn float64 `json:"returnInvestasiTahunan"`
	AnnualPropertyReturn   float64 `json:"returnPropertiTahunan"`
	ShortTermDebt          float64 `json:"hutangJangkaPendek"`
}

type CompanyExtraction struct {
	Cash          float64 `json:"cash"`
	Inventory     float64 `json:"inventory"`
	Receivables   float64 `json:"receivables"`
	ShortTermDebt float64 `json:"shortTermDebt"`
	LongTermDebt  float64 `json:"longTermDebt"`
}

type IncomeExtraction struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	OtherIncome    float64 `json:"otherIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	Nisab          float64 `json:"nisab"`
	GoldPrice      float64 `json:"goldPrice"`
	Currency       string  `json:"currency"`
}

const wealthPrompt = `You are a helpful assistant. A user has uploaded financial data.
Extract the relevant information and format it as a JSON object with this exact structure for "harta" (wealth) zakat calculation:
{
  "uangTunaiTabunganDeposito": { "usd": number, "idr": number },
  "emasPerakGram": number,
  "returnInvestasiTahunan": number,
  "returnPropertiTahunan": number,
  "hutangJangkaPendek": number
}
Sum up multiple values per field. Use 0 when a value is not found. All fields must be present and contain only final numeric values.
Return ONLY the JSON object, no other text or explanation.`

const companyPrompt = `You are a helpful assistant. A user has uploaded their company's financial data.
Extract the relevant information and format it as a JSON object with this exact structure for "perusahaan" (company) zakat calculation:
{
  "cash": number,
  "inventory": number,
  "receivables": number,
  "shortTermDebt": number,
  "longTermDebt": number
}
shortTermDebt is current liabilities only; longTermDebt is long-term debt only. Sum up multiple values per field. Use 0 when a value is not found.
Return ONLY the JSON object, no other text or explanation.`

const incomePrompt = `You are a helpful assistant. A user has uploaded their professional income data.
Extract the relevant information and format it as a JSON object with these fields for "profesi" (professional) zakat calculation:
"monthlyIncome", "otherIncome", "monthlyExpense", "nisab", "goldPrice" (numbers) and "currency" (string).
Use 0 when a value is not found.
Return ONLY the JSON object, no other text or explanation.`

// GroqClient talks to the OpenAI-compatible chat-completions endpoint.
type GroqClient struct {
	url    string
	apiKey string
	model  string
	cli    *http.Client
}

func NewGroqClient(apiURL, apiKey, model string, timeout time.Duration) *GroqClient {
	return &GroqClient{
		url:    apiURL,
		apiKey: apiKey,
		model:  model,
		cli:    &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	TopP           float64       `json:"top_p"`
	Stream         bool          `json:"stream"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract sends the preprocessed document text to the model and returns the
// validated JSON object for the requested zakat type. The caller is expected
// to have run FilterFinancialText on the content already.
func (c *GroqClient) Extract(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
	systemPrompt, err := promptFor(zakatType)
	if err != nil {
		return nil, err
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Extract the financial data from the text below into the specified JSON structure. If a value is not explicitly found or is ambiguous, use 0 for that field.\n\nText content:\n" + content},
		},
		Temperature: 0,
		MaxTokens:   1024,
		TopP:        1,
	}
	payload.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrInvalidPayload
	}

	answer := []byte(completion.Choices[0].Message.Content)
	if err := validateShape(zakatType, answer); err != nil {
		return nil, err
	}
	return json.RawMessage(answer), nil
}

func promptFor(zakatType zakat.Type) (string, error) {
	switch zakatType {
	case zakat.TypeHarta:
		return wealthPrompt, nil
	case zakat.TypePerusahaan:
		return companyPrompt, nil
	case zakat.TypeProfesi:
		return incomePrompt, nil
	default:
		return "", ErrUnknownType
	}
}

func validateShape(zakatType zakat.Type, answer []byte) error {
	var target any
	switch zakatType {
	case zakat.TypeHarta:
		target = &WealthExtraction{}
	case zakat.TypePerusahaan:
		target = &CompanyExtraction{}
	case zakat.TypeProfesi:
		target = &IncomeExtraction{}
	default:
		return ErrUnknownType
	}
	if err := json.Unmarshal(answer, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
