package socket

import (
	"os"
	"testing"
	"time"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	srv, err := NewServer(os.Getpid())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Stop)
	return srv
}

func TestSearchRoundTrip(t *testing.T) {
	srv := startTestServer(t)

	client, err := NewClient(srv.SocketPath())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	resp, err := client.SendSearch("rock jazz")
	if err != nil {
		t.Fatalf("SendSearch failed: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected success, got: %s", resp.Message)
	}

	select {
	case msg := <-srv.Messages():
		if msg.Command != CommandSearch {
			t.Errorf("Expected command %q, got %q", CommandSearch, msg.Command)
		}
		if msg.Text != "rock jazz" {
			t.Errorf("Expected text 'rock jazz', got %q", msg.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for queued message")
	}
}

func TestReloadRoundTrip(t *testing.T) {
	srv := startTestServer(t)

	client, err := NewClient(srv.SocketPath())
	if err != nil {
		t.Fatal(err)
	}

	resp, err := client.SendReload()
	if err != nil {
		t.Fatalf("SendReload failed: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected success, got: %s", resp.Message)
	}

	select {
	case msg := <-srv.Messages():
		if msg.Command != CommandReload {
			t.Errorf("Expected command %q, got %q", CommandReload, msg.Command)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for queued message")
	}
}

func TestUnknownCommandRejected(t *testing.T) {
	srv := startTestServer(t)

	client, err := NewClient(srv.SocketPath())
	if err != nil {
		t.Fatal(err)
	}

	resp, err := client.Send(Message{Command: "explode"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.Success {
		t.Error("Unknown command should be rejected")
	}
}

func TestFindRunningInstance(t *testing.T) {
	srv := startTestServer(t)

	path, pid, err := FindRunningInstance()
	if err != nil {
		t.Fatalf("FindRunningInstance failed: %v", err)
	}
	if path != srv.SocketPath() {
		t.Errorf("Expected socket %s, got %s", srv.SocketPath(), path)
	}
	if pid != os.Getpid() {
		t.Errorf("Expected pid %d, got %d", os.Getpid(), pid)
	}
}

func TestFindRunningInstanceNoSockets(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	if _, _, err := FindRunningInstance(); err == nil {
		t.Error("Expected an error when no instance is running")
	}
}

func TestClientRequiresExistingSocket(t *testing.T) {
	if _, err := NewClient("/nonexistent/treble-1.sock"); err == nil {
		t.Error("Expected an error for a missing socket")
	}
}
