package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/8thgencore/blip/internal/app"
	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
	"github.com/alecthomas/kong"
)

var errInvalidParam = errors.New("parameter must be key=value")

// Globals are flags shared by every command
type Globals struct {
	Config string `help:"Path to a yaml config file." type:"path" env:"BLIP_CONFIG"`
	To     string `help:"Default destination of built commands."`
}

// CommandFlags are flags shared by the command builders
type CommandFlags struct {
	ID   string `help:"Command id, generated when empty."`
	Send bool   `help:"Process the command through the in-process loopback and print the response."`
}

// ResourceFlags are flags of the commands carrying a resource
type ResourceFlags struct {
	Type string `help:"Media type of the resource."`
	JSON bool   `name:"json" help:"Decode the resource argument as json."`
}

// CLI is the command line of blip
type CLI struct {
	Globals

	Get    GetCmd    `cmd:"" help:"Build a get command."`
	Set    SetCmd    `cmd:"" help:"Build a set command."`
	Merge  MergeCmd  `cmd:"" help:"Build a merge command."`
	Delete DeleteCmd `cmd:"" help:"Build a delete command."`
	URI    URICmd    `cmd:"" name:"uri" help:"Fill the {{name}} placeholders of a uri template."`
	Query  QueryCmd  `cmd:"" help:"Append a query string to a uri."`
}

// GetCmd builds a get command
type GetCmd struct {
	CommandFlags
	URI string `arg:"" name:"uri" help:"Command uri."`
}

func (c *GetCmd) Run(a *app.App) error {
	return run(a, lime.MethodGet, c.URI, nil, c.CommandFlags, ResourceFlags{})
}

// SetCmd builds a set command
type SetCmd struct {
	CommandFlags
	ResourceFlags
	URI      string `arg:"" name:"uri" help:"Command uri."`
	Resource string `arg:"" help:"Command resource."`
}

func (c *SetCmd) Run(a *app.App) error {
	return run(a, lime.MethodSet, c.URI, c.Resource, c.CommandFlags, c.ResourceFlags)
}

// MergeCmd builds a merge command
type MergeCmd struct {
	CommandFlags
	ResourceFlags
	URI      string `arg:"" name:"uri" help:"Command uri."`
	Resource string `arg:"" help:"Command resource."`
}

func (c *MergeCmd) Run(a *app.App) error {
	return run(a, lime.MethodMerge, c.URI, c.Resource, c.CommandFlags, c.ResourceFlags)
}

// DeleteCmd builds a delete command
type DeleteCmd struct {
	CommandFlags
	URI string `arg:"" name:"uri" help:"Command uri."`
}

func (c *DeleteCmd) Run(a *app.App) error {
	return run(a, lime.MethodDelete, c.URI, nil, c.CommandFlags, ResourceFlags{})
}

// URICmd fills a uri template
type URICmd struct {
	Template string   `arg:"" help:"Uri template, e.g. /contacts/{{identity}}."`
	Params   []string `arg:"" optional:"" help:"Placeholder values as key=value."`
}

func (c *URICmd) Run() error {
	params := make(map[string]any, len(c.Params))
	for _, kv := range c.Params {
		key, value, err := splitParam(kv)
		if err != nil {
			return err
		}
		params[key] = value
	}

	fmt.Println(extension.BuildURI(c.Template, params))

	return nil
}

// QueryCmd appends a query string
type QueryCmd struct {
	URI    string   `arg:"" name:"uri" help:"Base uri."`
	Params []string `arg:"" optional:"" help:"Query items as key=value, kept in order."`
}

func (c *QueryCmd) Run() error {
	query := make([]extension.QueryParam, 0, len(c.Params))
	for _, kv := range c.Params {
		key, value, err := splitParam(kv)
		if err != nil {
			return err
		}
		query = append(query, extension.QueryParam{Key: key, Value: value})
	}

	fmt.Println(extension.BuildResourceQuery(c.URI, query))

	return nil
}

func splitParam(kv string) (string, string, error) {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: %q", errInvalidParam, kv)
	}

	return key, value, nil
}

func run(a *app.App, method lime.Method, uri string, raw any, flags CommandFlags, res ResourceFlags) error {
	resource := raw
	if s, ok := raw.(string); ok && res.JSON {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return fmt.Errorf("failed to decode resource: %w", err)
		}
		resource = decoded
	}

	opts := []extension.CommandOption{extension.WithID(flags.ID)}
	if res.Type != "" {
		opts = append(opts, extension.WithType(res.Type))
	}

	cmd, err := a.Build(method, uri, resource, opts...)
	if err != nil {
		return err
	}
	if err := app.Print(os.Stdout, cmd); err != nil {
		return err
	}

	if !flags.Send {
		return nil
	}

	resp, err := a.Process(context.Background(), cmd)
	if err != nil {
		return err
	}

	return app.Print(os.Stdout, resp)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blip"),
		kong.Description("Build LIME commands and fill uri templates."),
		kong.UsageOnError(),
	)

	application, err := app.New(cli.Config, cli.To, os.Stderr)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(application))
}
