package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/peter-kozarec/deeptick/internal/dbg"
	"github.com/peter-kozarec/deeptick/internal/pipeline"
	"github.com/peter-kozarec/deeptick/pkg/capture"
	"github.com/peter-kozarec/deeptick/pkg/deep"
	"github.com/peter-kozarec/deeptick/pkg/store/duck"
	"github.com/peter-kozarec/deeptick/pkg/utility"
)

const containerExtension = ".duckdb"

func main() {
	logger := dbg.NewDevLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger = logger.With(zap.Stringer("run", utility.GetExecutionID()))

	if len(os.Args) < 2 {
		logger.Fatal("usage: deepdump <capture.pcap|capture.pcap.gz>")
	}
	path := os.Args[1]

	tradeDate, err := capture.TradeDateFromCapture(path)
	if err != nil {
		logger.Fatal("unable to derive trade date", zap.String("capture", path), zap.Error(err))
	}

	source, err := capture.Open(path)
	if err != nil {
		logger.Fatal("unable to open capture", zap.String("capture", path), zap.Error(err))
	}
	defer func(source *capture.Source) {
		_ = source.Close()
	}(source)

	runner := pipeline.NewRunner(logger, deep.ConstantMultiplier)
	result, err := runner.Run(source)
	if err != nil {
		logger.Fatal("decoding failed", zap.String("capture", path), zap.Error(err))
	}

	logger.Info("capture decoded",
		zap.Uint64("packets", result.Packets),
		zap.Uint64("messages", result.Messages),
		zap.Uint64("ticks", result.Ticks))
	for messageType, count := range result.TypeCounts {
		logger.Info("message type count",
			zap.String("type", string(messageType)),
			zap.Uint64("count", count))
	}

	container := tradeDate.Format("20060102") + containerExtension
	writer := duck.NewWriter(container)
	if err := writer.Open(); err != nil {
		logger.Fatal("unable to open output container", zap.String("container", container), zap.Error(err))
	}
	defer writer.Close()

	ctx := context.Background()
	for symbol, ticks := range result.Symbols {
		last := ticks[len(ticks)-1]
		logger.Info("writing ticks",
			zap.String("symbol", symbol.Trimmed()),
			zap.Int("count", len(ticks)),
			zap.String("last_price", last.DecimalPrice().String()))
		if err := writer.WriteSymbol(ctx, symbol.Trimmed(), ticks); err != nil {
			logger.Fatal("unable to write ticks",
				zap.String("symbol", symbol.Trimmed()),
				zap.String("container", container),
				zap.Error(err))
		}
	}

	logger.Info("done", zap.String("container", container))
}
