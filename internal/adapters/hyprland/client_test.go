package hyprland

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprstash/internal/domain"
)

// fakeHyprland answers requests on a unix socket with canned replies
type fakeHyprland struct {
	listener net.Listener
	mu       sync.Mutex
	replies  map[string]string
	requests []string
}

func startFakeHyprland(t *testing.T, replies map[string]string) (*fakeHyprland, string) {
	t.Helper()

	// Keep the path short, unix socket paths are limited to ~108 bytes
	dir, err := os.MkdirTemp("", "hypr")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	socketPath := filepath.Join(dir, socketName)

	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	fake := &fakeHyprland{listener: listener, replies: replies}
	t.Cleanup(func() { listener.Close() })

	go fake.serve()
	return fake, socketPath
}

func (f *fakeHyprland) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 4096)
		n, _ := conn.Read(buf)
		request := string(buf[:n])

		f.mu.Lock()
		f.requests = append(f.requests, request)
		reply, ok := f.replies[request]
		f.mu.Unlock()
		if !ok {
			reply = "unknown request"
		}

		conn.Write([]byte(reply))
		conn.Close()
	}
}

func (f *fakeHyprland) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func TestClient_Monitors(t *testing.T) {
	_, socketPath := startFakeHyprland(t, map[string]string{
		"j/monitors": `[
			{"id":0,"name":"eDP-1","description":"Built-in","focused":false,"activeWorkspace":{"id":1,"name":"1"}},
			{"id":1,"name":"DP-2","description":"MSI MP275Q","focused":true,"activeWorkspace":{"id":4,"name":"4"}}
		]`,
	})
	client := NewClientForSocket(socketPath)

	monitors, err := client.Monitors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Monitor{
		{ID: 0, Name: "eDP-1", Description: "Built-in", ActiveWorkspace: 1},
		{ID: 1, Name: "DP-2", Description: "MSI MP275Q", Focused: true, ActiveWorkspace: 4},
	}, monitors)
}

func TestClient_WorkspacesWithoutMonitor(t *testing.T) {
	_, socketPath := startFakeHyprland(t, map[string]string{
		"j/workspaces": `[
			{"id":1,"monitorID":0},
			{"id":-98,"monitorID":-1},
			{"id":5}
		]`,
	})
	client := NewClientForSocket(socketPath)

	workspaces, err := client.Workspaces(context.Background())

	require.NoError(t, err)
	require.Len(t, workspaces, 3)
	assert.True(t, workspaces[0].OnMonitor(0))
	assert.Nil(t, workspaces[1].Monitor, "negative monitor id means unassigned")
	assert.Nil(t, workspaces[2].Monitor)
}

func TestClient_Windows(t *testing.T) {
	_, socketPath := startFakeHyprland(t, map[string]string{
		"j/clients": `[
			{"address":"0x55a1","workspace":{"id":2,"name":"2"},"class":"kitty"},
			{"address":"0x55b2","workspace":{"id":3,"name":"3"}}
		]`,
	})
	client := NewClientForSocket(socketPath)

	windows, err := client.Windows(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Window{
		{Address: "0x55a1", Workspace: 2},
		{Address: "0x55b2", Workspace: 3},
	}, windows)
}

func TestClient_MoveWindowToWorkspace(t *testing.T) {
	fake, socketPath := startFakeHyprland(t, map[string]string{
		"dispatch movetoworkspacesilent 8,address:0x55a1": "ok",
	})
	client := NewClientForSocket(socketPath)

	err := client.MoveWindowToWorkspace(context.Background(), "0x55a1", 8)

	require.NoError(t, err)
	assert.Equal(t, []string{"dispatch movetoworkspacesilent 8,address:0x55a1"}, fake.received())
}

func TestClient_MoveWindowToWorkspaceRefused(t *testing.T) {
	_, socketPath := startFakeHyprland(t, map[string]string{
		"dispatch movetoworkspacesilent 8,address:0xdead": "Window not found",
	})
	client := NewClientForSocket(socketPath)

	err := client.MoveWindowToWorkspace(context.Background(), "0xdead", 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Window not found")
}

func TestClient_DecodeError(t *testing.T) {
	_, socketPath := startFakeHyprland(t, map[string]string{"j/monitors": "not json"})
	client := NewClientForSocket(socketPath)

	_, err := client.Monitors(context.Background())

	assert.ErrorContains(t, err, "failed to decode monitors")
}

func TestClient_UnavailableSocket(t *testing.T) {
	client := NewClientForSocket(filepath.Join(t.TempDir(), "missing.sock"))

	_, err := client.Monitors(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrHyprlandUnavailable))
}

func TestSocketPath_RequiresSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := SocketPath()

	assert.True(t, errors.Is(err, domain.ErrHyprlandUnavailable))
}

func TestSocketPath_UsesSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")

	path, err := SocketPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("abc123", socketName), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestNewClient_ReportsMissingInstanceOnUse(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	client := NewClient()
	err := client.MoveWindowToWorkspace(context.Background(), "0x1", 2)

	assert.ErrorIs(t, err, domain.ErrHyprlandUnavailable)
}
