package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VeldyVA/ZakatCalculator/internal/extract"
	"github.com/VeldyVA/ZakatCalculator/internal/zakat"
)

func TestProcessExcel(t *testing.T) {
	extractor := stubExtractor{
		extractFn: func(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
			if zakatType != zakat.TypePerusahaan {
				t.Fatalf("unexpected type: %s", zakatType)
			}
			// The handler must pass preprocessed text, not the raw upload.
			if strings.Contains(content, "mission statement") {
				t.Fatalf("expected filtered content, got %q", content)
			}
			if !strings.Contains(content, "kas 5") {
				t.Fatalf("expected financial line kept, got %q", content)
			}
			return json.RawMessage(`{"cash":5000000,"inventory":0,"receivables":0,"shortTermDebt":0,"longTermDebt":0}`), nil
		},
	}
	handler := newTestHandler(stubPriceService{}, nil, nil, extractor)

	body := `{"fileContent":"our mission statement\nkas 5.000.000","zakatType":"perusahaan"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-excel", strings.NewReader(body)))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var response extract.CompanyExtraction
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response.Cash != 5000000 {
		t.Fatalf("unexpected extraction: %+v", response)
	}
}

func TestProcessExcelMissingFields(t *testing.T) {
	handler := newTestHandler(stubPriceService{}, nil, nil, stubExtractor{})

	cases := []string{
		`{}`,
		`{"fileContent":"kas 1"}`,
		`{"zakatType":"harta"}`,
		`not json`,
	}
	for _, body := range cases {
		recorder := httptest.NewRecorder()
		handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-excel", strings.NewReader(body)))
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, recorder.Code)
		}
	}
}

func TestProcessExcelInvalidAIPayload(t *testing.T) {
	extractor := stubExtractor{
		extractFn: func(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
			return nil, extract.ErrInvalidPayload
		},
	}
	handler := newTestHandler(stubPriceService{}, nil, nil, extractor)

	body := `{"fileContent":"kas 1","zakatType":"harta"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-excel", strings.NewReader(body)))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response["message"] != "AI returned invalid data" {
		t.Fatalf("unexpected message: %v", response)
	}
}

func TestProcessExcelUpstreamFailure(t *testing.T) {
	extractor := stubExtractor{
		extractFn: func(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
			return nil, extract.ErrUpstream
		},
	}
	handler := newTestHandler(stubPriceService{}, nil, nil, extractor)

	body := `{"fileContent":"kas 1","zakatType":"harta"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-excel", strings.NewReader(body)))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if response["message"] != "Failed to process file with AI" {
		t.Fatalf("unexpected message: %v", response)
	}
}

func TestProcessExcelUnknownType(t *testing.T) {
	extractor := stubExtractor{
		extractFn: func(ctx context.Context, zakatType zakat.Type, content string) (json.RawMessage, error) {
			return nil, extract.ErrUnknownType
		},
	}
	handler := newTestHandler(stubPriceService{}, nil, nil, extractor)

	body := `{"fileContent":"kas 1","zakatType":"warisan"}`
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/process-excel", strings.NewReader(body)))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
