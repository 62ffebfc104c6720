package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"deedles.dev/wldnd/datadevice"
	"deedles.dev/wldnd/input"
	"deedles.dev/wldnd/internal/config"
	"deedles.dev/wldnd/internal/logging"
	wl "deedles.dev/wldnd/server"
	"deedles.dev/wldnd/wire"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Listen on a Wayland socket and broker data transfers",
		Long: `Starts the broker. Point clients at it by setting WAYLAND_DISPLAY to the
socket that it reports.

There is no real input backend, so nothing ever receives keyboard focus
unless --focus-new-surfaces is given, in which case each new surface takes
the focus and is offered the current selection.

Precedence (lowest to highest): defaults, config file, WLBROKER_* env vars, flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return config.Bind(v, cmd.Flags()) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context(), v) },
	}
	config.AddFlags(cmd.Flags())

	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))

	lis, err := listen(cfg.Socket)
	if err != nil {
		logger.Error().Err(err).Str("op", "listen").Msg("failed to open socket")
		return err
	}

	server := wl.NewServer(lis, logger)
	defer server.Close()

	seat := server.AddSeat(cfg.Seat)
	server.AddCompositor(surfacePolicy(cfg, seat))
	server.AddDataDeviceManager(cfg.MaxMimeTypes)
	seat.OnSelection(func(seat *datadevice.Seat) { logSelection(logger, seat) })

	logger.Info().
		Str("version", Version).
		Stringer("socket", lis.Addr()).
		Str("seat", cfg.Seat).
		Bool("focus_new_surfaces", cfg.FocusNewSurfaces).
		Msg("wlbroker listening")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = server.Run(ctx, cfg.FlushInterval.Duration)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("shutting down")
		return nil
	}
	return err
}

func listen(socket string) (*net.UnixListener, error) {
	if socket == "" {
		return wire.Listen()
	}

	lis, err := wire.ListenPath(wire.ResolveSocketPath(socket))
	if err != nil {
		return nil, fmt.Errorf("listen on %v: %w", socket, err)
	}
	return lis, nil
}

// surfacePolicy returns the function that is called with every new
// surface.
func surfacePolicy(cfg config.Config, seat *datadevice.Seat) func(input.Surface) {
	if !cfg.FocusNewSurfaces {
		return nil
	}
	return func(s input.Surface) {
		seat.Keyboard().SetFocus(s)
	}
}

func logSelection(logger zerolog.Logger, seat *datadevice.Seat) {
	source := seat.Selection()
	if source == nil {
		logger.Info().Str("seat", seat.Name()).Msg("selection cleared")
		return
	}

	logger.Info().
		Str("seat", seat.Name()).
		Uint32("serial", seat.SelectionSerial()).
		Strs("mime_types", source.MimeTypes()).
		Msg("selection changed")
}
