package mcp

import (
	"context"
	"net/http"

	"github.com/adrianliechti/wingman-speak/config"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Handler struct {
	*config.Config

	handler http.Handler
}

func New(ctx context.Context, cfg *config.Config) (*Handler, error) {
	server, err := cfg.MCP().Server(ctx)

	if err != nil {
		return nil, err
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	h := &Handler{
		Config: cfg,

		handler: handler,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Handle("/mcp", h.handler)
}
