package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

type hubspotContact struct {
	Properties map[string]string `json:"properties"`
}

// upsertContact mirrors a member into the CRM so the marketing side sees new
// signups. No-op when HUBSPOT_TOKEN is not configured.
func (s *Service) upsertContact(email, name string) error {
	token := os.Getenv("HUBSPOT_TOKEN")
	if token == "" {
		return nil
	}
	baseURL := os.Getenv("HUBSPOT_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.hubapi.com"
	}

	payload, err := json.Marshal(hubspotContact{Properties: map[string]string{
		"email":          email,
		"firstname":      name,
		"hs_lead_status": "NEW",
	}})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/crm/v3/objects/contacts", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// 409 means the contact already exists, which is fine for an upsert
	if resp.StatusCode == http.StatusConflict {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("CRM API status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
