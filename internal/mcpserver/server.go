// Package mcpserver exposes the roster session as Model Context Protocol tools,
// so an assistant can build teams with the same rules as the HTTP API.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/app"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

const serverName = "cricket-roster"

type teamArgs struct {
	Team string `json:"team" jsonschema:"Team name"`
}

type renameArgs struct {
	Team    string `json:"team" jsonschema:"Current team name"`
	NewName string `json:"new_name" jsonschema:"New team name"`
}

type memberArgs struct {
	Team     string `json:"team" jsonschema:"Team name"`
	PlayerID int64  `json:"player_id" jsonschema:"Pool player id"`
}

type sizeArgs struct {
	Size int `json:"size" jsonschema:"New maximum team size"`
}

type pageArgs struct {
	Limit  int `json:"limit,omitempty" jsonschema:"Page size (default 50)"`
	Offset int `json:"offset,omitempty" jsonschema:"Items to skip"`
}

type statsArgs struct {
	Runs           int     `json:"runs,omitempty"`
	Wickets        int     `json:"wickets,omitempty"`
	BattingAverage float64 `json:"battingAverage,omitempty"`
	HighestRun     int     `json:"highestRun,omitempty"`
	HighestWicket  string  `json:"highestWicket,omitempty" jsonschema:"Best bowling figures, e.g. 5/25"`
	ManOfTheMatch  int     `json:"manOfTheMatch,omitempty"`
}

type createPlayerArgs struct {
	Name    string     `json:"name" jsonschema:"Player name"`
	Country string     `json:"country" jsonschema:"Country"`
	Role    string     `json:"role,omitempty" jsonschema:"Batsman, Bowler, All-Rounder or Wicket-Keeper (default Batsman)"`
	Stats   *statsArgs `json:"stats,omitempty"`
}

type importArgs struct {
	Players string `json:"players" jsonschema:"JSON array of player objects"`
}

type noArgs struct{}

// New registers every tool against svcs.
func New(svcs *app.Services, version string, logger zerolog.Logger) *mcp.Server {
	log := logger.With().Str("module", "mcp").Logger()
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	addTool(server, log, &mcp.Tool{
		Name:        "list_teams",
		Description: "List teams in order with member counts, the max team size and the active team",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
		teams, err := svcs.Teams.ListTeams(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		size, err := svcs.Teams.MaxTeamSize(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		st, err := svcs.Views.State(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{"teams": teams, "max_team_size": size, "active_team": st.ActiveTeam})
	})

	addTool(server, log, &mcp.Tool{
		Name:        "get_team",
		Description: "Show a team's players, its capacity and whether it is full",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args teamArgs) (*mcp.CallToolResult, any, error) {
		return result(svcs.Teams.GetTeam(ctx, args.Team))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "create_team",
		Description: "Create an empty team and make it the active team",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args teamArgs) (*mcp.CallToolResult, any, error) {
		return result(svcs.Teams.CreateTeam(ctx, args.Team))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "rename_team",
		Description: "Rename a team, keeping its players",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args renameArgs) (*mcp.CallToolResult, any, error) {
		if err := svcs.Teams.RenameTeam(ctx, args.Team, args.NewName); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]string{"from": args.Team, "to": strings.TrimSpace(args.NewName)})
	})

	addTool(server, log, &mcp.Tool{
		Name:        "delete_team",
		Description: "Delete a team permanently; its players stay in the pool",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args teamArgs) (*mcp.CallToolResult, any, error) {
		if err := svcs.Teams.DeleteTeam(ctx, args.Team); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]string{"deleted": args.Team})
	})

	addTool(server, log, &mcp.Tool{
		Name:        "add_player",
		Description: "Add a pool player to a team; does nothing if the team is full or already has the player",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args memberArgs) (*mcp.CallToolResult, any, error) {
		changed, err := svcs.Teams.AddPlayer(ctx, args.Team, args.PlayerID)
		return membership(args, changed, err)
	})

	addTool(server, log, &mcp.Tool{
		Name:        "remove_player",
		Description: "Remove a player from a team; the player stays in the pool",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args memberArgs) (*mcp.CallToolResult, any, error) {
		changed, err := svcs.Teams.RemovePlayer(ctx, args.Team, args.PlayerID)
		return membership(args, changed, err)
	})

	addTool(server, log, &mcp.Tool{
		Name:        "set_team_size",
		Description: "Change the maximum team size; larger teams lose their most recently added players",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args sizeArgs) (*mcp.CallToolResult, any, error) {
		if err := svcs.Teams.SetMaxTeamSize(ctx, args.Size); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]int{"max_team_size": args.Size})
	})

	addTool(server, log, &mcp.Tool{
		Name:        "list_pool",
		Description: "Page through the player pool",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args pageArgs) (*mcp.CallToolResult, any, error) {
		return result(svcs.Players.ListPool(ctx, repository.Page{Limit: args.Limit, Offset: args.Offset}))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "pool_status",
		Description: "Report whether the initial player pool is loading, ready or failed",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
		return result(svcs.Pool.State(ctx))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "retry_pool",
		Description: "Fetch the initial player pool again after a failure",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
		if err := svcs.Pool.Retry(ctx); err != nil {
			return toolError(err), nil, nil
		}
		return result(svcs.Pool.State(ctx))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "create_player",
		Description: "Add a player by hand; it goes to the front of the pool",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createPlayerArgs) (*mcp.CallToolResult, any, error) {
		in := service.CreatePlayerInput{Name: args.Name, Country: args.Country, Role: args.Role}
		if args.Stats != nil {
			in.Stats = service.StatsInput(*args.Stats)
		}
		return result(svcs.Players.CreatePlayer(ctx, in))
	})

	addTool(server, log, &mcp.Tool{
		Name:        "import_players",
		Description: "Append a JSON array of players to the pool; a malformed document adds nothing",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args importArgs) (*mcp.CallToolResult, any, error) {
		players, err := svcs.Players.ImportPlayers(ctx, strings.NewReader(args.Players))
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{"added": len(players), "players": players})
	})

	addTool(server, log, &mcp.Tool{
		Name:        "view_state",
		Description: "Current screen, active team and viewed team",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
		return result(svcs.Views.State(ctx))
	})

	return server
}

// addTool logs each call. Tool failures are reported in the result, never as protocol errors.
func addTool[T any](server *mcp.Server, log zerolog.Logger, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	name := tool.Name
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		res, out, err := handler(ctx, req, args)
		ev := log.Debug()
		if res != nil && res.IsError {
			ev = log.Warn()
		}
		ev.Str("tool", name).Msg("tool called")
		return res, out, err
	})
}

func membership(args memberArgs, changed bool, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(map[string]any{"team": args.Team, "player_id": args.PlayerID, "changed": changed})
}

func result[T any](v T, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(v)
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	msg := err.Error()
	if fe := service.FieldErrors(err); len(fe) > 0 {
		parts := make([]string, 0, len(fe))
		for _, f := range fe {
			parts = append(parts, f.Field+" "+f.Message)
		}
		msg = strings.Join(parts, "; ")
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %s", msg)},
		},
	}
}

