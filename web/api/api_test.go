package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/rohanthewiz/rweb"

	"aqiform/config"
	"aqiform/models"
	"aqiform/web"
	"aqiform/web/api"
)

// apiTestServer manages a running server instance for integration testing.
type apiTestServer struct {
	baseURL string
	client  *http.Client
}

func setupAPITestServer(t *testing.T) *apiTestServer {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping API integration test in short mode")
	}

	app, err := web.NewApp(config.Default())
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	readyChan := make(chan struct{}, 1)
	srv := web.NewServer(app, rweb.ServerOptions{
		Verbose:   true,
		ReadyChan: readyChan,
		Address:   "localhost:", // Dynamic port assignment
	})
	go func() {
		_ = srv.Run()
	}()
	<-readyChan

	return &apiTestServer{
		baseURL: fmt.Sprintf("http://localhost:%s", srv.GetListenPort()),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *apiTestServer) getJSON(t *testing.T, path string) (int, api.APIResponse) {
	t.Helper()
	resp, err := s.client.Get(s.baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	var result api.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, result
}

func (s *apiTestServer) postJSON(t *testing.T, path string, body interface{}) (int, api.APIResponse) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	var result api.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, result
}

// TestCatalogAPI tests the country and city lookups.
func TestCatalogAPI(t *testing.T) {
	server := setupAPITestServer(t)

	t.Run("list countries", func(t *testing.T) {
		status, result := server.getJSON(t, "/api/v1/countries")
		if status != http.StatusOK || !result.Success {
			t.Fatalf("status = %d, result = %+v", status, result)
		}
		countries, ok := result.Data.([]interface{})
		if !ok || len(countries) != 5 || countries[0] != "Bangladesh" {
			t.Errorf("countries = %v", result.Data)
		}
	})

	t.Run("list cities", func(t *testing.T) {
		status, result := server.getJSON(t, "/api/v1/countries/Canada/cities")
		if status != http.StatusOK {
			t.Fatalf("status = %d", status)
		}
		data, _ := result.Data.(map[string]interface{})
		cities, _ := data["cities"].([]interface{})
		if data["country"] != "Canada" || len(cities) != 5 {
			t.Errorf("data = %v", result.Data)
		}
	})

	t.Run("unknown country", func(t *testing.T) {
		status, result := server.getJSON(t, "/api/v1/countries/Atlantis/cities")
		if status != http.StatusNotFound || result.Success || result.Error == "" {
			t.Errorf("status = %d, result = %+v", status, result)
		}
	})
}

// TestAQIAPI tests tier listing, classification and mock draws.
func TestAQIAPI(t *testing.T) {
	server := setupAPITestServer(t)

	t.Run("tiers", func(t *testing.T) {
		_, result := server.getJSON(t, "/api/v1/aqi/tiers")
		tiers, ok := result.Data.([]interface{})
		if !ok || len(tiers) != len(models.AQITiers) {
			t.Errorf("tiers = %v", result.Data)
		}
	})

	t.Run("classify value", func(t *testing.T) {
		_, result := server.getJSON(t, "/api/v1/aqi?value=120")
		data, _ := result.Data.(map[string]interface{})
		if data["level"] != "Unhealthy for Sensitive Groups" || data["color"] != "aqi-sensitive" {
			t.Errorf("data = %v", result.Data)
		}
	})

	t.Run("draw for city", func(t *testing.T) {
		_, result := server.getJSON(t, "/api/v1/aqi?city=Sydney")
		data, _ := result.Data.(map[string]interface{})
		value, _ := data["value"].(float64)
		if data["city"] != "Sydney" || value < 0 || value >= models.MockAQIMax {
			t.Errorf("data = %v", result.Data)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		cases := map[string]int{
			"/api/v1/aqi":               http.StatusBadRequest,
			"/api/v1/aqi?value=-4":      http.StatusBadRequest,
			"/api/v1/aqi?value=lots":    http.StatusBadRequest,
			"/api/v1/aqi?city=Atlantis": http.StatusNotFound,
		}
		for path, want := range cases {
			if status, _ := server.getJSON(t, path); status != want {
				t.Errorf("%s status = %d, want %d", path, status, want)
			}
		}
	})
}

// TestValidationAPI tests stateless registration and login validation.
func TestValidationAPI(t *testing.T) {
	server := setupAPITestServer(t)

	t.Run("valid registration", func(t *testing.T) {
		_, result := server.postJSON(t, "/api/v1/registrations/validate", models.RegistrationForm{
			FullName: "Jane Doe", Email: "jane@example.com",
			Password: "Secret123", ConfirmPassword: "Secret123",
			DOB: "1990-01-01", Gender: "other", Country: "India", TermsAccepted: true,
		})
		data, _ := result.Data.(map[string]interface{})
		if data["valid"] != true {
			t.Errorf("data = %v", result.Data)
		}
	})

	t.Run("invalid registration lists fields", func(t *testing.T) {
		_, result := server.postJSON(t, "/api/v1/registrations/validate", map[string]interface{}{
			"full_name": "Jane Doe", "email": "bad", "password": "short",
		})
		data, _ := result.Data.(map[string]interface{})
		errs, _ := data["errors"].(map[string]interface{})
		if data["valid"] != false || errs["email"] != "Please enter a valid email address" ||
			errs["password"] != "Password must be at least 8 characters" {
			t.Errorf("data = %v", result.Data)
		}
		if _, ok := errs["full_name"]; ok {
			t.Error("a valid field should not be listed")
		}
	})

	t.Run("login", func(t *testing.T) {
		_, result := server.postJSON(t, "/api/v1/logins/validate", map[string]string{"login_user": "jane"})
		data, _ := result.Data.(map[string]interface{})
		errs, _ := data["errors"].(map[string]interface{})
		if errs["login_password"] != "Password is required" {
			t.Errorf("data = %v", result.Data)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := server.client.Post(server.baseURL+"/api/v1/logins/validate", "application/json",
			bytes.NewBufferString("{not json"))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

// TestMsgPackResponse verifies the envelope is msgpack encoded on request.
func TestMsgPackResponse(t *testing.T) {
	server := setupAPITestServer(t)

	req, err := http.NewRequest("GET", server.baseURL+"/api/v1/aqi?value=10", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Accept", models.MsgPackContentType)

	resp, err := server.client.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != models.MsgPackContentType {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var result struct {
		Success bool           `json:"success"`
		Data    api.AQIReading `json:"data"`
	}
	if err := models.DecodeMsgPack(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || result.Data.Level != "Good" || result.Data.Value != 10 {
		t.Errorf("result = %+v", result)
	}
}
