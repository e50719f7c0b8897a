//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertConflictResponse checks a 409 and returns the unavailable dates it names.
func AssertConflictResponse(t *testing.T, w *httptest.ResponseRecorder, expectedRoomID string) []string {
	t.Helper()

	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var conflict struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail struct {
			RoomID           string   `json:"roomId"`
			UnavailableDates []string `json:"unavailableDates"`
		} `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &conflict)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode conflict response JSON: %s", w.Body.String()))
	assert.NotEmpty(t, conflict.Error.Message)
	assert.Equal(t, expectedRoomID, conflict.Detail.RoomID)
	return conflict.Detail.UnavailableDates
}

// AssertHeaders compares only the headers named in expected.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		assert.Equal(t, want, w.Header().Get(name), "header %s", name)
	}
}
