// SPDX-License-Identifier: MIT

// Package config holds the settings of one route query and of the HTTP
// server, their defaults, YAML loading and validation.
//
// Values are plain structs passed by value; nothing here is global.
// Command-line flags are layered over a loaded File by the caller.
package config

import (
	"time"

	"github.com/katalvlaran/flightpath/layover"
)

// DateLayout is the textual layout of Query.StartDate.
const DateLayout = "2006-01-02"

// Defaults of a Query.
const (
	DefaultMinLayover = 1
	DefaultMaxLayover = 6
	DefaultStartDate  = "1900-01-01"
)

// Query describes one search. Layover bounds are whole hours.
type Query struct {
	CSV         string `yaml:"csv" json:"-" validate:"required"`
	Origin      string `yaml:"origin" json:"origin" validate:"required"`
	Destination string `yaml:"destination" json:"destination" validate:"required"`
	Bags        int    `yaml:"bags" json:"bags" validate:"gte=0,lte=999"`
	Reverse     bool   `yaml:"reverse" json:"reverse"`
	MinLayover  int    `yaml:"min_layover" json:"min_layover" validate:"gte=0,lte=999"`
	MaxLayover  int    `yaml:"max_layover" json:"max_layover" validate:"gte=0,lte=999"`
	StartDate   string `yaml:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
}

// DefaultQuery returns a Query with every optional field at its default.
func DefaultQuery() Query {
	return Query{
		MinLayover: DefaultMinLayover,
		MaxLayover: DefaultMaxLayover,
		StartDate:  DefaultStartDate,
	}
}

// Start parses StartDate as midnight UTC.
func (q Query) Start() (time.Time, error) {
	return time.Parse(DateLayout, q.StartDate)
}

// Window returns the layover rule described by the query.
func (q Query) Window() layover.Window {
	return layover.NewWindow(q.MinLayover, q.MaxLayover)
}

// LayoverInverted reports whether MinLayover > MaxLayover. Such a query is
// valid but can only produce direct flights.
func (q Query) LayoverInverted() bool {
	return q.MinLayover > q.MaxLayover
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" validate:"required"`

	// Dataset is the CSV file every request searches.
	Dataset string `yaml:"dataset" validate:"required"`

	// RequestTimeout bounds one search.
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// DefaultServerConfig returns the server defaults; Dataset stays empty.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Log selects the logger.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// File is the layout of a YAML configuration file.
type File struct {
	Search Query        `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    Log          `yaml:"log"`
}

// Defaults returns a File with every section at its defaults.
func Defaults() File {
	return File{
		Search: DefaultQuery(),
		Server: DefaultServerConfig(),
		Log:    Log{Level: "info"},
	}
}
