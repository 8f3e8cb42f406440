// Package mcp exposes tilemerge games as MCP tools over stdio, so an
// agent can create boards, move and read them back as text.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/session"
)

// Options configures a Server.
type Options struct {
	Version       string
	DefaultWidth  int
	DefaultHeight int
}

// Server wraps an MCP server whose tools act on a session manager.
type Server struct {
	sessions  *session.Manager
	logger    *log.Logger
	opts      Options
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(sessions *session.Manager, logger *log.Logger, opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.DefaultWidth == 0 {
		opts.DefaultWidth = 4
	}
	if opts.DefaultHeight == 0 {
		opts.DefaultHeight = 4
	}

	s := &Server{
		sessions: sessions,
		logger:   logger,
		opts:     opts,
	}
	s.mcpServer = server.NewMCPServer(
		"tilemerge",
		opts.Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`tilemerge - sliding tile merge puzzle

Every move slides all tiles toward one edge. Two equal tiles that meet
merge into their sum, at most once per move. A move that changes the board
adds one new tile (2 with probability 0.9, otherwise 4) on an empty cell.
A move that changes nothing adds nothing.

AVAILABLE TOOLS:
- new_game: Start a board (width, height, optional seed)
- move: Slide a board left, right, up or down
- board: Show a board
- reset: Replace a board with a fresh one of the same size
- list_games: List live boards`),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	sessionID := map[string]interface{}{
		"type":        "string",
		"description": "Game ID returned by new_game",
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new board and return its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Board width (default %d)", s.opts.DefaultWidth),
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Board height (default %d)", s.opts.DefaultHeight),
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Random seed for a reproducible game (optional)",
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide every tile in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"left", "right", "up", "down"},
					"description": "Direction to slide",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "board",
		Description: "Show the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
			},
			Required: []string{"session_id"},
		},
	}, s.handleBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset",
		Description: "Replace the board with a fresh one of the same size",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
			},
			Required: []string{"session_id"},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List live boards",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListGames)
}

// Tool handlers

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	width := intArg(args, "width", s.opts.DefaultWidth)
	height := intArg(args, "height", s.opts.DefaultHeight)
	seed := intArg(args, "seed", 0)

	st, err := s.sessions.Create(width, height, int64(seed))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("New game", "session", st.ID, "width", width, "height", height)

	return mcp.NewToolResultText("Created game: " + st.ID + "\n\n" + formatState(st)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, _ := args["session_id"].(string)
	raw, _ := args["direction"].(string)

	dir := board.ParseDirection(raw)
	res, st, err := s.sessions.Move(id, dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Debug("Move", "session", id, "dir", dir, "changed", res.Changed)

	return mcp.NewToolResultText(formatMove(res) + "\n\n" + formatState(st)), nil
}

func (s *Server) handleBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _ := arguments(request)["session_id"].(string)

	st, err := s.sessions.Get(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatState(st)), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _ := arguments(request)["session_id"].(string)

	st, err := s.sessions.Reset(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("Reset game: " + id + "\n\n" + formatState(st)), nil
}

func (s *Server) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := s.sessions.List()

	var b strings.Builder
	fmt.Fprintf(&b, "Live games (%d):\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(&b, "- %s  %dx%d  moves %d  max %d  (created %s)\n",
			info.ID, info.Width, info.Height, info.Moves, info.MaxTile, info.Created.Format("15:04:05"))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads an integer argument; JSON numbers arrive as float64.
func intArg(args map[string]interface{}, name string, def int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return def
	}
}
