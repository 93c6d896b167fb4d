// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the ad board command line client on top of
// [adapter.ServerAdapter].
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ad-board/internal/adapter"
	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/models"
)

// AdapterFactory builds the server adapter once flags have been parsed.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

type rootOptions struct {
	serverURL string
	timeout   time.Duration
	email     string
	password  string
	verbose   bool
}

// app is the state shared by every sub-command after PersistentPreRunE.
type app struct {
	opts       rootOptions
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	server adapter.ServerAdapter
	logger *logger.Logger
}

// NewRootCommand returns the "adboard" command tree. Output is written to the
// command's out writer as indented JSON.
func NewRootCommand(buildInfo models.AppBuildInfo, newAdapter AdapterFactory) *cobra.Command {
	a := &app{newAdapter: newAdapter, buildInfo: buildInfo}

	root := &cobra.Command{
		Use:           "adboard",
		Short:         "Ad board CLI",
		Long:          "Command line interface for the ad board REST API: users and their advertisements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.serverURL, "server", "", "server base URL (env CLIENT_SERVER_URL)")
	flags.DurationVar(&a.opts.timeout, "timeout", 0, "request timeout (env CLIENT_REQUEST_TIMEOUT)")
	flags.StringVar(&a.opts.email, "email", "", "email used to authenticate advertisement changes")
	flags.StringVar(&a.opts.password, "password", "", "password used to authenticate advertisement changes")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newUserCommand(a),
		newAdvertisementCommand(a),
		newPingCommand(a),
		newVersionCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.logger = logger.NewCLILogger(cmd.ErrOrStderr(), a.opts.verbose)

	cfg, err := config.GetClientConfig(config.ClientConfig{
		ServerURL:      a.opts.serverURL,
		RequestTimeout: a.opts.timeout,
	})
	if err != nil {
		return err
	}

	a.server, err = a.newAdapter(*cfg, a.logger)
	if err != nil {
		return err
	}
	if a.opts.email != "" || a.opts.password != "" {
		a.server.SetCredentials(a.opts.email, a.opts.password)
	}

	a.logger.Debug().Str("server", cfg.ServerURL).Msg("client configured")
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
