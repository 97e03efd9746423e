package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"positionScope/internal/chain"
	"positionScope/internal/config"
	"positionScope/internal/descriptor"
	"positionScope/internal/model"
	"positionScope/internal/storage"
	"positionScope/internal/storage/postgres"
	"positionScope/internal/tickmath"
	"positionScope/internal/token"
)

func runRender(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRender(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var resolver *token.Resolver
	var rpcChainID uint64
	if cfg.RPCURL != "" {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer chainClient.Close()
		if id, err := chainClient.ChainID(ctx); err != nil {
			logger.Warn("chain id lookup failed", zap.Error(err))
		} else {
			rpcChainID = id.Uint64()
		}
		resolver = token.NewResolver(chainClient, logger)
	}

	jsonlSink, err := storage.NewJsonlSink(cfg.Out)
	if err != nil {
		return err
	}
	defer jsonlSink.Close()

	sinks := []storage.Sink{jsonlSink}
	if cfg.PgDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PgDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	errWriter, err := storage.NewJSONLWriter(cfg.Errors)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	logger.Info("render start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Bool("resolve_tokens", resolver != nil),
		zap.Uint64("rpc_chain_id", rpcChainID),
		zap.Bool("postgres", cfg.PgDSN != ""),
		zap.Int("batch_size", cfg.BatchSize),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	batch := make([]model.DescriptorRecord, 0, cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		for _, sink := range sinks {
			if err := sink.PutDescriptorBatch(ctx, batch); err != nil {
				return fmt.Errorf("write batch: %w", err)
			}
		}
		batch = batch[:0]
		return nil
	}

	var total, rendered, failed int
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var record model.PositionRecord
		if err := json.Unmarshal(line, &record); err != nil {
			failed++
			writeRenderError(errWriter, model.RenderError{Error: err.Error()})
			continue
		}

		if chainIDMismatch(record.ChainID, rpcChainID) {
			logger.Warn("record chain id differs from rpc chain id",
				zap.Uint64("record_chain_id", record.ChainID),
				zap.Uint64("rpc_chain_id", rpcChainID),
				zap.Uint64("token_id", record.TokenID),
			)
		}

		if err := resolveTokens(ctx, resolver, &record); err != nil {
			failed++
			writeRenderError(errWriter, renderErrorFromRecord(record, err))
			continue
		}

		desc, err := descriptor.Build(tickmath.GetSqrtRatioAtTick, record)
		if err != nil {
			failed++
			writeRenderError(errWriter, renderErrorFromRecord(record, err))
			continue
		}

		batch = append(batch, desc)
		if len(batch) >= cfg.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
		rendered++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}

	logger.Info("render complete",
		zap.Int("total", total),
		zap.Int("rendered", rendered),
		zap.Int("failed", failed),
	)

	return nil
}

// chainIDMismatch reports whether a record names a different chain than the
// connected RPC endpoint. A zero on either side means unknown and never warns.
func chainIDMismatch(recordChainID, rpcChainID uint64) bool {
	return recordChainID != 0 && rpcChainID != 0 && recordChainID != rpcChainID
}

// resolveTokens fills in missing token metadata from chain. A record whose
// symbol is empty is treated as unresolved; decimals ride along with it.
func resolveTokens(ctx context.Context, resolver *token.Resolver, record *model.PositionRecord) error {
	for _, side := range []*model.TokenMeta{&record.Token0, &record.Token1} {
		if side.Symbol != "" {
			continue
		}
		if resolver == nil {
			return fmt.Errorf("token %s metadata missing and no rpc configured", side.Address)
		}
		meta, err := resolver.Resolve(ctx, side.Address)
		if err != nil {
			return fmt.Errorf("resolve token %s: %w", side.Address, err)
		}
		*side = meta
	}
	return nil
}

func renderErrorFromRecord(record model.PositionRecord, err error) model.RenderError {
	return model.RenderError{
		ChainID:     record.ChainID,
		TokenID:     record.TokenID,
		PoolAddress: record.PoolAddress,
		Error:       err.Error(),
	}
}

func writeRenderError(writer *storage.JSONLWriter, errRecord model.RenderError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}
