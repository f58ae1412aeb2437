package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/busroutes"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	BaseURL   string
	Schedules busroutes.ScheduleService
	Prompter  busroutes.Prompter
	Snapshots busroutes.SnapshotService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      kong.ConfigFlag `short:"C" help:"Load settings from a YAML file"`
	BaseURL     string          `name:"base-url" env:"BUSROUTES_BASE_URL" default:"https://www.communitytransit.org" help:"Schedule site root"`
	Timeout     time.Duration   `short:"t" default:"10s" help:"Fetch timeout per page"`
	RateLimit   float64         `name:"rate-limit" default:"1" help:"Maximum requests per second (0 disables limiting)"`
	UserAgent   string          `name:"user-agent" default:"busroutes/1.0" help:"User-Agent header sent with requests"`
	DB          string          `help:"Snapshot database path (default: ~/.busroutes/busroutes.db)"`
	MetricsFile string          `name:"metrics-file" help:"Write Prometheus metrics to this file on exit"`
	Debug       bool            `short:"d" help:"Log fetches and lookups to stderr"`

	Lookup   LookupCmd   `cmd:"" default:"1" help:"Interactively find cities by letter, then show a route's stops"`
	Cities   CitiesCmd   `cmd:"" help:"List cities starting with a letter and their bus numbers"`
	Route    RouteCmd    `cmd:"" help:"Show the destinations and stops of a route"`
	Snapshot SnapshotCmd `cmd:"" help:"Archive the current cities and routes to the snapshot database"`
	History  HistoryCmd  `cmd:"" help:"List, show or remove archived snapshots"`
}

// LookupCmd is the "lookup" subcommand and the default when no command is given.
type LookupCmd struct{}

// CitiesCmd is the "cities" subcommand.
type CitiesCmd struct {
	Letter string `arg:"" help:"First letter of the city name"`
}

// RouteCmd is the "route" subcommand.
type RouteCmd struct {
	ID string `arg:"" help:"Route ID (ex. 111, 230)"`
}

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	Routes []string `arg:"" optional:"" help:"Route IDs to archive along with the city index"`
	All    bool     `short:"a" help:"Archive every route listed in the city index"`
}

// HistoryCmd is the "history" subcommand group.
type HistoryCmd struct {
	List HistoryListCmd `cmd:"" default:"withargs" help:"List archived snapshots, newest first"`
	Show HistoryShowCmd `cmd:"" help:"Show the cities and routes of a snapshot"`
	Rm   HistoryRmCmd   `cmd:"" help:"Remove a snapshot"`
}

// HistoryListCmd is the "history list" subcommand and the default for "history".
type HistoryListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of snapshots to list"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}

// HistoryRmCmd is the "history rm" subcommand.
type HistoryRmCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}
