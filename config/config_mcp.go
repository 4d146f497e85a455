package config

import (
	"github.com/adrianliechti/wingman-speak/pkg/mcp"
	"github.com/adrianliechti/wingman-speak/pkg/otel"
	"github.com/adrianliechti/wingman-speak/pkg/tool"
	"github.com/adrianliechti/wingman-speak/pkg/tool/speak"
)

func (cfg *Config) MCP() *mcp.Server {
	return cfg.mcp
}

func (cfg *Config) registerMCP(f *configFile) error {
	client, err := speak.New(cfg.speaker)

	if err != nil {
		return err
	}

	tools := []tool.Provider{
		otel.NewTool("speak", client),
	}

	s, err := mcp.New(Name, Version, tools)

	if err != nil {
		return err
	}

	cfg.mcp = s

	return nil
}
