package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"study-assistant-be/internal/pkg/serverutils"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Exercises the public API of a running server:
//
//	go run ./scripts/smoke_api
var baseURL = envOr("SMOKE_BASE_URL", "http://localhost:3000/api")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, map[string]interface{}, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded, nil
}

// step prints the outcome and reports whether the status matched.
func step(title string, want int, resp *http.Response, body map[string]interface{}, err error) bool {
	color.Yellow("\n%s", title)
	if err != nil {
		color.Red("Failed: %v", err)
		return false
	}
	if resp.StatusCode != want {
		color.Red("Status: %s (want %d)", resp.Status, want)
		prettyPrint(body)
		return false
	}
	color.Green("Status: %s", resp.Status)
	return true
}

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		color.Red("JWT_SECRET is required to sign the smoke test token")
		os.Exit(1)
	}
	token, err := serverutils.IssueToken(secret, 1, time.Hour)
	if err != nil {
		color.Red("Failed to sign token: %v", err)
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Study Assistant API smoke test\n")
	failures := 0

	// 1. Create a session
	resp, body, err := sendRequest("POST", "/chatbot/v1/session", token, nil)
	if !step("[CHAT] 1. Create Chat Session", http.StatusCreated, resp, body, err) {
		os.Exit(1)
	}
	data, _ := body["data"].(map[string]interface{})
	sessionID, _ := data["id"].(float64)
	fmt.Printf("Created Session ID: %.0f\n", sessionID)

	// 2. Send a math question
	resp, body, err = sendRequest("POST", "/chatbot/v1/send", token, map[string]interface{}{
		"session_id": sessionID,
		"message":    "Can you help me with calculus?",
	})
	if step("[CHAT] 2. Send 'Can you help me with calculus?'", http.StatusOK, resp, body, err) {
		fmt.Printf("Title: %s\n", body["session_title"])
		if ai, ok := body["ai_message"].(map[string]interface{}); ok {
			fmt.Printf("Reply: %s\n", ai["content"])
		}
	} else {
		failures++
	}

	// 3. Empty message is rejected
	resp, body, err = sendRequest("POST", "/chatbot/v1/send", token, map[string]interface{}{
		"session_id": sessionID,
		"message":    "   ",
	})
	if !step("[CHAT] 3. Send blank message", http.StatusBadRequest, resp, body, err) {
		failures++
	}

	// 4. Study tips
	resp, body, err = sendRequest("GET", "/study/v1/tips?subject=Science", token, nil)
	if step("[STUDY] 4. Tips for 'Science'", http.StatusOK, resp, body, err) {
		prettyPrint(body["tips"])
	} else {
		failures++
	}

	// 5. Theme toggle
	resp, body, err = sendRequest("POST", "/theme/v1/toggle", "", map[string]interface{}{"theme": "dark"})
	if step("[THEME] 5. Toggle to dark", http.StatusOK, resp, body, err) {
		prettyPrint(body)
	} else {
		failures++
	}

	// 6. Cleanup
	resp, body, err = sendRequest("DELETE", fmt.Sprintf("/chatbot/v1/sessions/%.0f", sessionID), token, nil)
	if step("[CHAT] 6. Cleanup: Delete session", http.StatusOK, resp, body, err) {
		prettyPrint(body["data"])
	} else {
		failures++
	}

	if failures > 0 {
		color.Red("\n❌ %d step(s) failed", failures)
		os.Exit(1)
	}
	color.Cyan("\n✅ Smoke test finished")
}
