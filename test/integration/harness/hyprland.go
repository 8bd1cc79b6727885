package harness

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const fakeSignature = "integration"

type fakeMonitor struct {
	ID      int
	Name    string
	Focused bool
	Active  int
}

type fakeWorkspace struct {
	ID      int
	Monitor int
}

// FakeHyprland serves the Hyprland request socket for one test. Moves sent
// through it update its window table, so later queries see their effect.
type FakeHyprland struct {
	listener   net.Listener
	mu         sync.Mutex
	monitors   []fakeMonitor
	windows    map[string]int
	workspaces []fakeWorkspace
	tb         testing.TB
}

// NewFakeHyprland starts a fake Hyprland and points env at it.
func NewFakeHyprland(tb testing.TB, env *TestEnvironment) *FakeHyprland {
	tb.Helper()

	// Keep the path short, unix socket paths are limited to ~108 bytes
	runtimeDir, err := os.MkdirTemp("", "hs")
	if err != nil {
		tb.Fatalf("Failed to create runtime dir: %v", err)
	}
	tb.Cleanup(func() { os.RemoveAll(runtimeDir) })

	instanceDir := filepath.Join(runtimeDir, "hypr", fakeSignature)
	if err := os.MkdirAll(instanceDir, 0700); err != nil {
		tb.Fatalf("Failed to create instance dir: %v", err)
	}

	listener, err := net.Listen("unix", filepath.Join(instanceDir, ".socket.sock"))
	if err != nil {
		tb.Fatalf("Failed to listen: %v", err)
	}
	tb.Cleanup(func() { listener.Close() })

	f := &FakeHyprland{
		listener: listener,
		windows:  make(map[string]int),
		tb:       tb,
	}
	go f.serve()

	env.SetEnv("XDG_RUNTIME_DIR", runtimeDir)
	env.SetEnv("HYPRLAND_INSTANCE_SIGNATURE", fakeSignature)
	return f
}

// AddMonitor adds a monitor showing the active workspace.
func (f *FakeHyprland) AddMonitor(id int, name string, active int, focused bool) *FakeHyprland {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.monitors = append(f.monitors, fakeMonitor{ID: id, Name: name, Focused: focused, Active: active})
	return f
}

// RemoveMonitor unplugs a monitor along with its workspaces.
func (f *FakeHyprland) RemoveMonitor(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.monitors = slices.DeleteFunc(f.monitors, func(m fakeMonitor) bool { return m.ID == id })
	f.workspaces = slices.DeleteFunc(f.workspaces, func(w fakeWorkspace) bool { return w.Monitor == id })
}

// AddWorkspace assigns a workspace to a monitor.
func (f *FakeHyprland) AddWorkspace(id, monitor int) *FakeHyprland {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workspaces = append(f.workspaces, fakeWorkspace{ID: id, Monitor: monitor})
	return f
}

// AddWindow maps a window on a workspace.
func (f *FakeHyprland) AddWindow(address string, workspace int) *FakeHyprland {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows[address] = workspace
	return f
}

// CloseWindow unmaps a window.
func (f *FakeHyprland) CloseWindow(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.windows, address)
}

// WorkspaceOf returns the workspace a window is on, or -1 when it is gone.
func (f *FakeHyprland) WorkspaceOf(address string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ws, ok := f.windows[address]; ok {
		return ws
	}
	return -1
}

func (f *FakeHyprland) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 4096)
		n, _ := conn.Read(buf)
		conn.Write([]byte(f.handle(string(buf[:n]))))
		conn.Close()
	}
}

func (f *FakeHyprland) handle(request string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch request {
	case "j/monitors":
		return f.encode(f.monitorsReply())
	case "j/workspaces":
		return f.encode(f.workspacesReply())
	case "j/clients":
		return f.encode(f.clientsReply())
	}

	if args, ok := strings.CutPrefix(request, "dispatch movetoworkspacesilent "); ok {
		return f.move(args)
	}
	return "unknown request"
}

func (f *FakeHyprland) move(args string) string {
	wsArg, address, ok := strings.Cut(args, ",address:")
	if !ok {
		return "invalid dispatcher arguments"
	}
	ws, err := strconv.Atoi(wsArg)
	if err != nil {
		return "invalid workspace"
	}
	if _, exists := f.windows[address]; !exists {
		return "No such window found"
	}

	f.windows[address] = ws
	if !slices.ContainsFunc(f.workspaces, func(w fakeWorkspace) bool { return w.ID == ws }) {
		focused := 0
		for _, m := range f.monitors {
			if m.Focused {
				focused = m.ID
			}
		}
		f.workspaces = append(f.workspaces, fakeWorkspace{ID: ws, Monitor: focused})
	}
	return "ok"
}

func (f *FakeHyprland) monitorsReply() []map[string]any {
	reply := make([]map[string]any, 0, len(f.monitors))
	for _, m := range f.monitors {
		reply = append(reply, map[string]any{
			"id":              m.ID,
			"name":            m.Name,
			"description":     "Fake " + m.Name,
			"focused":         m.Focused,
			"activeWorkspace": map[string]any{"id": m.Active, "name": strconv.Itoa(m.Active)},
		})
	}
	return reply
}

func (f *FakeHyprland) workspacesReply() []map[string]any {
	reply := make([]map[string]any, 0, len(f.workspaces))
	for _, w := range f.workspaces {
		reply = append(reply, map[string]any{
			"id":        w.ID,
			"name":      strconv.Itoa(w.ID),
			"monitorID": w.Monitor,
		})
	}
	return reply
}

func (f *FakeHyprland) clientsReply() []map[string]any {
	addresses := make([]string, 0, len(f.windows))
	for address := range f.windows {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	reply := make([]map[string]any, 0, len(addresses))
	for _, address := range addresses {
		ws := f.windows[address]
		reply = append(reply, map[string]any{
			"address":   address,
			"mapped":    true,
			"workspace": map[string]any{"id": ws, "name": strconv.Itoa(ws)},
		})
	}
	return reply
}

func (f *FakeHyprland) encode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		f.tb.Errorf("Failed to encode fake reply: %v", err)
		return "[]"
	}
	return string(data)
}

// String describes the window table, for failure messages.
func (f *FakeHyprland) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprint(f.windows)
}
