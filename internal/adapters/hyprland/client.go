package hyprland

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/ports"
)

// socketName is the request/reply socket inside the instance directory
const socketName = ".socket.sock"

// Client talks to Hyprland over its request socket. Every request opens a new
// connection, writes the command and reads the reply until EOF.
type Client struct {
	// err is returned by every request when the socket could not be resolved
	err        error
	socketPath string
}

// Compile-time interface verification
var _ ports.HyprlandClient = (*Client)(nil)

// NewClient creates a client for the running Hyprland instance. A missing
// instance is only reported once the client is used, so commands that never
// talk to the compositor keep working outside a Hyprland session.
func NewClient() *Client {
	socketPath, err := SocketPath()
	if err != nil {
		logging.Logger.Debug("Hyprland socket not resolved", "error", err)
		return &Client{err: err}
	}
	return NewClientForSocket(socketPath)
}

// NewClientForSocket creates a client for an explicit socket path
func NewClientForSocket(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// SocketPath resolves the request socket of the instance named by
// HYPRLAND_INSTANCE_SIGNATURE. Newer Hyprland versions live under
// $XDG_RUNTIME_DIR/hypr, older ones under /tmp/hypr.
func SocketPath() (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", fmt.Errorf("%w: HYPRLAND_INSTANCE_SIGNATURE is not set", domain.ErrHyprlandUnavailable)
	}

	candidates := []string{
		filepath.Join(xdg.RuntimeDir, "hypr", signature, socketName),
		filepath.Join("/tmp", "hypr", signature, socketName),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	// Let the dial report the failure against the preferred location
	return candidates[0], nil
}

// request sends one command and returns the raw reply
func (c *Client) request(ctx context.Context, command string) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	logging.Logger.Debug("Hyprland request", "command", command, "socket", c.socketPath)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ECONNREFUSED) {
			return nil, fmt.Errorf("%w: %v", domain.ErrHyprlandUnavailable, err)
		}
		return nil, fmt.Errorf("failed to connect to hyprland: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set deadline: %w", err)
		}
	}

	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, fmt.Errorf("failed to send %q: %w", command, err)
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply to %q: %w", command, err)
	}

	return reply, nil
}

// query sends a JSON request (j/<what>) and decodes the reply into out
func (c *Client) query(ctx context.Context, what string, out any) error {
	reply, err := c.request(ctx, "j/"+what)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return nil
}

type workspaceRef struct {
	ID int `json:"id"`
}

type monitorReply struct {
	ActiveWorkspace workspaceRef `json:"activeWorkspace"`
	Description     string       `json:"description"`
	Focused         bool         `json:"focused"`
	ID              int          `json:"id"`
	Name            string       `json:"name"`
}

type workspaceReply struct {
	ID        int  `json:"id"`
	MonitorID *int `json:"monitorID"`
}

type clientReply struct {
	Address   string       `json:"address"`
	Workspace workspaceRef `json:"workspace"`
}

// Monitors implements HyprlandReader.Monitors
func (c *Client) Monitors(ctx context.Context) ([]domain.Monitor, error) {
	var replies []monitorReply
	if err := c.query(ctx, "monitors", &replies); err != nil {
		return nil, err
	}

	monitors := make([]domain.Monitor, len(replies))
	for i, r := range replies {
		monitors[i] = domain.Monitor{
			ActiveWorkspace: domain.WorkspaceID(r.ActiveWorkspace.ID),
			Description:     r.Description,
			Focused:         r.Focused,
			ID:              domain.MonitorID(r.ID),
			Name:            r.Name,
		}
	}
	logging.Logger.Debug("Listed monitors", "count", len(monitors))
	return monitors, nil
}

// Workspaces implements HyprlandReader.Workspaces
func (c *Client) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	var replies []workspaceReply
	if err := c.query(ctx, "workspaces", &replies); err != nil {
		return nil, err
	}

	workspaces := make([]domain.Workspace, len(replies))
	for i, r := range replies {
		workspaces[i] = domain.Workspace{ID: domain.WorkspaceID(r.ID)}
		// Hyprland reports -1 for workspaces without a monitor
		if r.MonitorID != nil && *r.MonitorID >= 0 {
			monitor := domain.MonitorID(*r.MonitorID)
			workspaces[i].Monitor = &monitor
		}
	}
	logging.Logger.Debug("Listed workspaces", "count", len(workspaces))
	return workspaces, nil
}

// Windows implements HyprlandReader.Windows
func (c *Client) Windows(ctx context.Context) ([]domain.Window, error) {
	var replies []clientReply
	if err := c.query(ctx, "clients", &replies); err != nil {
		return nil, err
	}

	windows := make([]domain.Window, len(replies))
	for i, r := range replies {
		windows[i] = domain.Window{
			Address:   domain.Address(r.Address),
			Workspace: domain.WorkspaceID(r.Workspace.ID),
		}
	}
	logging.Logger.Debug("Listed windows", "count", len(windows))
	return windows, nil
}

// MoveWindowToWorkspace implements HyprlandDispatcher.MoveWindowToWorkspace
func (c *Client) MoveWindowToWorkspace(ctx context.Context, address domain.Address, workspace domain.WorkspaceID) error {
	command := fmt.Sprintf("dispatch movetoworkspacesilent %d,address:%s", workspace, address)
	reply, err := c.request(ctx, command)
	if err != nil {
		return err
	}

	if answer := strings.TrimSpace(string(reply)); answer != "ok" {
		return fmt.Errorf("hyprland refused %q: %s", command, answer)
	}
	return nil
}
