package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"vetd/internal/platform/httpclient"
	"vetd/internal/ports/notify"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     http.Header{},
	}
}

func TestNotifier_PostsPayloadAsJSON(t *testing.T) {
	var captured *http.Request
	var rawBody []byte

	n, err := NewWithTransport("https://hooks.example.com/notify", roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		rawBody, _ = io.ReadAll(r.Body)
		return okResponse(), nil
	}), zerolog.Nop())
	require.NoError(t, err)

	err = n.Notify(context.Background(), notify.Notification{
		Recipient: "user-9",
		Subject:   "appointment scheduled",
		Metadata:  map[string]string{"appointment_id": "appt-1"},
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	require.Equal(t, http.MethodPost, captured.Method)
	require.Equal(t, "https://hooks.example.com/notify", captured.URL.String())
	require.Equal(t, "application/json", captured.Header.Get("Content-Type"))

	var got struct {
		Recipient string            `json:"recipient"`
		Subject   string            `json:"subject"`
		Metadata  map[string]string `json:"metadata"`
		SentAt    string            `json:"sent_at"`
	}
	require.NoError(t, json.Unmarshal(rawBody, &got))
	require.Equal(t, "user-9", got.Recipient)
	require.Equal(t, "appointment scheduled", got.Subject)
	require.Equal(t, "appt-1", got.Metadata["appointment_id"])
	require.NotEmpty(t, got.SentAt)
}

func TestNotifier_PropagatesHTTPError(t *testing.T) {
	n, err := NewWithTransport("https://hooks.example.com/notify", roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
			Header:     http.Header{},
		}, nil
	}), zerolog.Nop())
	require.NoError(t, err)

	err = n.Notify(context.Background(), notify.Notification{Recipient: "user-9", Subject: "x"})
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New("  ", 0, zerolog.Nop())
	require.True(t, errors.Is(err, ErrNoURL))
}
