package sse

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "piece_placed",
			data:      `{"x":1}`,
			expected:  "event: piece_placed\ndata: {\"x\":1}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "snapshot",
			data:      "{\n  \"x\": 1\n}",
			expected:  "event: snapshot\ndata: {\ndata:   \"x\": 1\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single line", input: "hello", expected: []string{"hello"}},
		{name: "two lines", input: "line1\nline2", expected: []string{"line1", "line2"}},
		{name: "trailing newline", input: "line1\n", expected: []string{"line1"}},
		{name: "empty string", input: "", expected: []string{""}},
		{name: "crlf line endings", input: "line1\r\nline2\r\n", expected: []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "viewer1")
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.BroadcastEvent("test-event", "test data")

	select {
	case msg := <-client.send:
		expected := "event: test-event\ndata: test data\n\n"
		if string(msg) != expected {
			t.Errorf("client received %q, want %q", string(msg), expected)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive message")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "viewer1")
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Unregister(client)
	waitForClients(t, hub, 0)

	if _, ok := <-client.send; ok {
		t.Error("client channel still open after unregister")
	}
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	clients := []*Client{
		NewClient(hub, "viewer1"),
		NewClient(hub, "viewer2"),
		NewClient(hub, "viewer3"),
	}
	for _, c := range clients {
		hub.Register(c)
	}
	waitForClients(t, hub, 3)

	hub.BroadcastEvent("update", "data")

	for i, client := range clients {
		select {
		case msg := <-client.send:
			expected := "event: update\ndata: data\n\n"
			if string(msg) != expected {
				t.Errorf("client %d received %q, want %q", i+1, string(msg), expected)
			}
		case <-time.After(100 * time.Millisecond):
			t.Errorf("client %d did not receive message", i+1)
		}
	}
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub := NewHub("game-1", testutil.NopLogger())
	go hub.Run()

	client := NewClient(hub, "viewer1")
	hub.Register(client)
	waitForClients(t, hub, 1)

	hub.Close()
	hub.Close() // Closing twice is harmless

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client channel was not closed")
	}

	// Neither call may block on a stopped hub
	hub.Unregister(client)
	late := NewClient(hub, "viewer2")
	hub.Register(late)
	if _, ok := <-late.send; ok {
		t.Error("late client should be closed immediately")
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	hub1 := manager.GetOrCreateHub("game-1")
	if hub1 == nil {
		t.Fatal("GetOrCreateHub returned nil")
	}
	if hub1.GameID() != "game-1" {
		t.Errorf("GameID() = %q, want game-1", hub1.GameID())
	}

	hub2 := manager.GetOrCreateHub("game-1")
	if hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hub for same game")
	}

	hub3 := manager.GetOrCreateHub("game-2")
	if hub3 == hub1 {
		t.Error("GetOrCreateHub returned same hub for different game")
	}
}

func TestHubManager_GetHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	if hub := manager.GetHub("missing"); hub != nil {
		t.Error("GetHub returned non-nil for non-existent hub")
	}

	created := manager.GetOrCreateHub("game-1")
	if got := manager.GetHub("game-1"); got != created {
		t.Error("GetHub returned different hub than GetOrCreateHub")
	}
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	manager.GetOrCreateHub(model.GameID("empty"))

	active := manager.GetOrCreateHub(model.GameID("active"))
	active.Register(NewClient(active, "viewer1"))
	waitForClients(t, active, 1)

	// The first sweep only marks empty hubs
	manager.CleanupEmptyHubs()
	if manager.GetHub("empty") == nil {
		t.Error("Empty hub removed on its first sweep")
	}

	manager.CleanupEmptyHubs()

	if manager.GetHub("empty") != nil {
		t.Error("Empty hub still exists after cleanup")
	}
	if manager.GetHub("active") == nil {
		t.Error("Active hub was removed during cleanup")
	}
}

func TestHubManager_CleanupSparesRequestedHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	hub := manager.GetOrCreateHub("game-1")
	manager.CleanupEmptyHubs()

	// A watcher about to register fetches the hub again
	if got := manager.GetOrCreateHub("game-1"); got != hub {
		t.Fatal("GetOrCreateHub replaced a live hub")
	}
	manager.CleanupEmptyHubs()

	if manager.GetHub("game-1") != hub {
		t.Error("Hub removed right after it was requested")
	}
}

func TestHubManager_RunCleanup(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()

	manager.GetOrCreateHub("game-1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		manager.RunCleanup(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for manager.GetHub("game-1") != nil {
		if time.Now().After(deadline) {
			t.Fatal("idle hub was never cleaned up")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not stop")
	}
}
