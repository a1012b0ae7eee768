package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}

func TestHTTPClient_PostJSON(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		body         any
		expectedCode int
		expectedBody string
		expectErr    bool
	}{
		{
			name: "Accepted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "gobank", r.Header.Get("X-Sender"))

				var msg message
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
				assert.Equal(t, message{To: "rahim@example.com", Subject: "Deposit"}, msg)

				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte(`{"status":"queued"}`))
			},
			body:         message{To: "rahim@example.com", Subject: "Deposit"},
			expectedCode: http.StatusAccepted,
			expectedBody: `{"status":"queued"}`,
		},
		{
			name: "Too many requests",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "3")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			body:         message{To: "rahim@example.com"},
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name:      "Unmarshalable body",
			handler:   func(w http.ResponseWriter, r *http.Request) {},
			body:      make(chan int),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			headers := http.Header{}
			headers.Set("X-Sender", "gobank")

			code, body, respHeaders, err := NewHTTPClient().PostJSON(context.Background(), server.URL, tt.body, headers)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedBody, string(body))
			if code == http.StatusTooManyRequests {
				assert.Equal(t, "3", respHeaders.Get("Retry-After"))
			}
		})
	}
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := NewMockHTTPClientI(ctrl)
	mockClient.EXPECT().
		PostJSON(gomock.Any(), "http://relay/api/send", gomock.Any(), gomock.Any()).
		Return(0, nil, nil, errors.New("connection refused"))

	client := NewHTTPClient()
	client.SetClient(mockClient)

	_, _, _, err := client.PostJSON(context.Background(), "http://relay/api/send", message{}, nil)
	assert.Error(t, err)
}
