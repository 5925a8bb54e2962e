package mcp

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/gwx/internal/randutil"
)

// Handler serves the match tools of one stdio process. Both players share
// the client: every move is made for whoever's turn it is.
type Handler struct {
	decksFile string
	logger    *log.Logger

	mu      sync.Mutex
	session *GameSession
}

// NewHandler creates a tool handler that reads numbered decks from decksFile.
func NewHandler(decksFile string, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{decksFile: decksFile, logger: logger}
}

// RegisterTools adds all game tools to the MCP server.
func (h *Handler) RegisterTools(s *server.MCPServer) {
	s.AddTool(startMatchTool(), h.handleStartMatch)
	s.AddTool(playCardTool(), h.handlePlayCard)
	s.AddTool(passTool(), h.handlePass)
	s.AddTool(getStateTool(), h.handleGetState)
}

// --- Tool definitions ---

func startMatchTool() mcp.Tool {
	return mcp.NewTool("start_match",
		mcp.WithDescription("Start a new best-of-three card battle between two players sharing this client. "+
			"Returns the opening events and the state seen by the player to move."),
		mcp.WithNumber("seed", mcp.Description("Seed for shuffling and choosing starting players (0 or omitted = time based)")),
		mcp.WithString("p1", mcp.Description("Name of the first player (default Player 1)")),
		mcp.WithString("p2", mcp.Description("Name of the second player (default Player 2)")),
		mcp.WithNumber("deck1", mcp.Description("Deck number for the first player (1-indexed from the decks file, 0 = balanced deck)")),
		mcp.WithNumber("deck2", mcp.Description("Deck number for the second player (1-indexed from the decks file, 0 = balanced deck)")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from the hand of the player to move."),
		mcp.WithNumber("card", mcp.Required(), mcp.Description("1-based index of the card in the hand list")),
		mcp.WithNumber("row", mcp.Description("Row 1-3 for a special to affect; units only accept their own row. 0 or omitted uses the card's own row")),
	)
}

func passTool() mcp.Tool {
	return mcp.NewTool("pass",
		mcp.WithDescription("Pass for the rest of the round on behalf of the player to move."),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current match state and any events since the last call. Read-only."),
	)
}

// --- Tool handlers ---

func (h *Handler) handleStartMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil && !h.session.Over() {
		return mcp.NewToolResultError("A match is already running. Only one match at a time is supported."), nil
	}

	opts := MatchOptions{
		Seed:      randutil.SeedOrClock(int64(request.GetInt("seed", 0))),
		Players:   [2]string{request.GetString("p1", "Player 1"), request.GetString("p2", "Player 2")},
		Decks:     [2]int{request.GetInt("deck1", 0), request.GetInt("deck2", 0)},
		DecksFile: h.decksFile,
	}
	if opts.Decks[0] < 0 || opts.Decks[1] < 0 {
		return mcp.NewToolResultError("deck numbers must be >= 0"), nil
	}

	sess, err := NewGameSession(opts)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start match: %v", err), nil
	}
	h.session = sess
	h.logger.Info("match started", "id", sess.game.ID, "seed", sess.game.Seed, "p1", opts.Players[0], "p2", opts.Players[1])

	return mcp.NewToolResultText(respondJSON(sess.State())), nil
}

func (h *Handler) handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := h.activeSession()
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	resp, err := sess.PlayCard(request.GetInt("card", 0), request.GetInt("row", 0))
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot play: %v", err), nil
	}
	h.logOutcome(resp)
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (h *Handler) handlePass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := h.activeSession()
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	resp, err := sess.Pass()
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot pass: %v", err), nil
	}
	h.logOutcome(resp)
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (h *Handler) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := h.activeSession()
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.State())), nil
}

func (h *Handler) activeSession() *GameSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

func (h *Handler) logOutcome(resp *ToolResponse) {
	if resp.GameOver {
		h.logger.Info("match over", "result", resp.Result)
	}
}
