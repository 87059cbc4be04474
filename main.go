/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of randpass.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.

See LICENSE.agpl and LICENSE.dnh for full details.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/CodeMonkeyCybersecurity/randpass/cmd"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/randpass/pkg/telemetry"
	"go.uber.org/zap"
)

func main() {
	if err := logger.Initialize(logger.OptionsFromEnv()); err != nil {
		logger.SetLogger(logger.NewFallbackLogger())
		logger.L().Warn("Log file unavailable, logging to stderr", zap.Error(err))
	}

	if err := telemetry.Init("randpass"); err != nil {
		logger.L().Warn("Telemetry disabled", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx)
	stop()

	if err := telemetry.Shutdown(context.Background()); err != nil {
		logger.L().Warn("Failed to flush telemetry", zap.Error(err))
	}
	_ = logger.Sync()
	os.Exit(code)
}
