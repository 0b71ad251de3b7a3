package main

import (
	"context"
	"log/slog"

	"leetstats/cmd/leetstats/commands"
	"leetstats/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	ctx := context.Background()
	err := telemetry.SetupFromEnv(ctx, "leetstats")
	if err != nil {
		slog.Warn("failed to set up telemetry", "err", err)
	}
	defer telemetry.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
