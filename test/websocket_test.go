package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/websocket"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dialWS(t *testing.T, server *httptest.Server, token string) *ws.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=" + token
	conn, _, err := ws.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	return conn
}

func awaitEvent(t *testing.T, conn *ws.Conn, eventType websocket.EventType) *websocket.Event {
	t.Helper()

	conn.SetReadDeadline(time.Now().UTC().Add(2 * time.Second))
	for i := 0; i < 5; i++ {
		_, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var event websocket.Event
		json.Unmarshal(message, &event)
		if event.Type == eventType {
			return &event
		}
	}
	t.Errorf("did not receive event %q", eventType)
	return nil
}

func TestWebSocketConnection(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "ws@test.com")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	conn := dialWS(t, server, tokenFor(citizen))
	defer conn.Close()
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	server := httptest.NewServer(testRouter)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=not-a-jwt"
	_, resp, err := ws.DefaultDialer.Dial(wsURL, nil)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestWebSocketReportCreatedEvent(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	watcher := createCitizen(ctx, "watcher@test.com")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	conn := dialWS(t, server, tokenFor(watcher))
	defer conn.Close()

	time.Sleep(100 * time.Millisecond)

	rr := createReport(tokenFor(reporter), defaultReportRequest())
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	event := awaitEvent(t, conn, websocket.EventReportCreated)
	if event == nil {
		return
	}

	payload, ok := event.Payload.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Broken streetlight on 5th Ave", payload["title"])
	assert.NotNil(t, event.Meta)
	assert.NotEmpty(t, event.Meta.ReportID)
}

func TestWebSocketStatusChangedEvent(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	seeded := seedReport(ctx, reporter, nil)

	server := httptest.NewServer(testRouter)
	defer server.Close()

	conn := dialWS(t, server, tokenFor(reporter))
	defer conn.Close()

	time.Sleep(100 * time.Millisecond)

	body := []byte(`{"status": "validated", "message": "Confirmed on site"}`)
	url := fmt.Sprintf("/api/reports/%s/status", seeded.ID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(staff))
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	event := awaitEvent(t, conn, websocket.EventStatusChanged)
	if event == nil {
		return
	}
	assert.Equal(t, seeded.ID.String(), event.Meta.ReportID)
}

func TestWebSocketVoteCastEvent(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	voter := createCitizen(ctx, "voter@test.com")
	seeded := seedReport(ctx, reporter, func(c *ent.ReportCreate) {
		c.SetStatus(report.StatusValidated)
	})

	server := httptest.NewServer(testRouter)
	defer server.Close()

	conn := dialWS(t, server, tokenFor(reporter))
	defer conn.Close()

	time.Sleep(100 * time.Millisecond)

	rr := castVote(tokenFor(voter), seeded.ID, "upvote")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	event := awaitEvent(t, conn, websocket.EventVoteCast)
	if event == nil {
		return
	}
	assert.Equal(t, seeded.ID.String(), event.Meta.ReportID)
}
