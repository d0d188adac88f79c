package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"geturl/internal/pkg/logging"
	"geturl/internal/pkg/network"
	"geturl/internal/pkg/output"
)

func fetchURL(w io.Writer, config configFetch) error {
	// Append context to logger
	ctx := logging.AppendCtx(context.Background(), slog.Group("config",
		slog.String("url", config.url),
	))

	slog.DebugContext(ctx, "sending request")
	res, err := network.FetchURL(config.url)
	if err != nil {
		if res != nil {
			slog.ErrorContext(ctx, "fail to fetch url", slog.Any("error", err),
				slog.Int("status_code", res.StatusCode), slog.String("final_url", res.FinalURL))
		} else {
			slog.ErrorContext(ctx, "fail to fetch url", slog.Any("error", err))
		}
		return fmt.Errorf("fail to fetch url: %w", err)
	}
	slog.InfoContext(ctx, "received response",
		slog.String("status", res.Status),
		slog.String("final_url", res.FinalURL),
		slog.Int("bytes", len(res.Body)),
	)

	err = output.WriteAll(w, res.Body)
	if err != nil {
		slog.ErrorContext(ctx, "fail to write response body", slog.Any("error", err), slog.Int("bytes", len(res.Body)))
		return fmt.Errorf("fail to write response body: %w", err)
	}

	return nil
}
