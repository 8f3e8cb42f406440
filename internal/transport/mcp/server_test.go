package mcp

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vovakirdan/tilemerge/internal/session"
)

var idPattern = regexp.MustCompile(`Created game: (\S+)`)

func newTestServer() (*Server, *session.Manager) {
	sessions := session.NewManager()
	return NewServer(sessions, log.New(io.Discard), Options{}), sessions
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	result, err := handler(context.Background(), request)
	if err != nil {
		t.Fatalf("%s failed: %v", name, err)
	}
	if result == nil {
		t.Fatalf("%s returned nil result", name)
	}
	return result
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	content, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return content.Text
}

func newGame(t *testing.T, s *Server, args map[string]interface{}) string {
	t.Helper()
	out := text(t, call(t, s.handleNewGame, "new_game", args))
	m := idPattern.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("new_game output has no id: %s", out)
	}
	return m[1]
}

func TestNewServer(t *testing.T) {
	s, _ := newTestServer()
	if s.MCPServer() == nil {
		t.Fatal("MCP server should be initialized")
	}
}

func TestNewGame(t *testing.T) {
	s, sessions := newTestServer()

	id := newGame(t, s, map[string]interface{}{"width": float64(5), "height": float64(3), "seed": float64(11)})
	st, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", id, err)
	}
	if st.Width != 5 || st.Height != 3 {
		t.Errorf("game size = %dx%d, want 5x3", st.Width, st.Height)
	}

	result := call(t, s.handleNewGame, "new_game", map[string]interface{}{"width": float64(1), "height": float64(1)})
	if !result.IsError {
		t.Error("1x1 board should be rejected")
	}
}

func TestNewGameDefaults(t *testing.T) {
	s, sessions := newTestServer()
	id := newGame(t, s, nil)

	st, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if st.Width != 4 || st.Height != 4 {
		t.Errorf("default size = %dx%d, want 4x4", st.Width, st.Height)
	}
}

func TestMoveBoardReset(t *testing.T) {
	s, _ := newTestServer()
	id := newGame(t, s, map[string]interface{}{"seed": float64(3)})

	changed := false
	for _, dir := range []string{"left", "right", "up", "down"} {
		out := text(t, call(t, s.handleMove, "move", map[string]interface{}{"session_id": id, "direction": dir}))
		if !strings.Contains(out, "no change") {
			changed = true
			if !strings.Contains(out, "Moves: 1") {
				t.Errorf("first changed move output:\n%s", out)
			}
			break
		}
	}
	if !changed {
		t.Fatal("no direction changed a fresh board")
	}

	out := text(t, call(t, s.handleBoard, "board", map[string]interface{}{"session_id": id}))
	if !strings.Contains(out, "Size: 4x4") || !strings.Contains(out, "+") {
		t.Errorf("board output:\n%s", out)
	}

	out = text(t, call(t, s.handleReset, "reset", map[string]interface{}{"session_id": id}))
	if !strings.Contains(out, "Moves: 0") {
		t.Errorf("reset output:\n%s", out)
	}
}

func TestUnknownGame(t *testing.T) {
	s, _ := newTestServer()

	for name, handler := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"move":  s.handleMove,
		"board": s.handleBoard,
		"reset": s.handleReset,
	} {
		result := call(t, handler, name, map[string]interface{}{"session_id": "missing", "direction": "left"})
		if !result.IsError {
			t.Errorf("%s on unknown game should be an error", name)
		}
	}
}

func TestListGames(t *testing.T) {
	s, _ := newTestServer()
	first := newGame(t, s, nil)
	second := newGame(t, s, map[string]interface{}{"width": float64(3), "height": float64(3)})

	out := text(t, call(t, s.handleListGames, "list_games", nil))
	if !strings.Contains(out, "Live games (2)") || !strings.Contains(out, first) || !strings.Contains(out, second) {
		t.Errorf("list_games output:\n%s", out)
	}
}

func TestFormatGrid(t *testing.T) {
	got := formatGrid(3, 2, []int{2, 0, 128, 0, 4, 0})
	want := "" +
		"+-----+-----+-----+\n" +
		"|   2 |   . | 128 |\n" +
		"+-----+-----+-----+\n" +
		"|   . |   4 |   . |\n" +
		"+-----+-----+-----+\n"
	if got != want {
		t.Errorf("formatGrid =\n%s\nwant\n%s", got, want)
	}
}
