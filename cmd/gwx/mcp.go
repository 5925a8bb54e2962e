package main

import (
	"github.com/mark3labs/mcp-go/server"

	gwxmcp "github.com/peterkuimelis/gwx/internal/mcp"
)

type MCPCmd struct{}

func (c *MCPCmd) Run(globals *Globals) error {
	logger := globals.newLogger()

	s := server.NewMCPServer("gwx", version)
	gwxmcp.NewHandler(globals.Decks, logger).RegisterTools(s)

	logger.Info("serving MCP on stdio", "decks", globals.Decks)
	return server.ServeStdio(s)
}
