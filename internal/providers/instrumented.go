package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with load logging and metrics.
// Sources are static, so failed loads are reported and never retried.
type instrumentedProvider struct {
	inner   DataProvider
	source  string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner. Errors that are not already a *DataLoadError
// are wrapped into one carrying source and kind.
func NewInstrumentedProvider(inner DataProvider, source string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		source:  source,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	start := p.now()
	out, err := p.inner.FetchPlayers(ctx)
	err = wrapLoadError(p.source, KindPlayers, err)
	p.observe(ctx, KindPlayers, len(out), p.now().Sub(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *instrumentedProvider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	start := p.now()
	out, err := p.inner.FetchTeamDefense(ctx)
	err = wrapLoadError(p.source, KindTeamDefense, err)
	p.observe(ctx, KindTeamDefense, len(out), p.now().Sub(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *instrumentedProvider) observe(ctx context.Context, kind string, rows int, dur time.Duration, err error) {
	p.metrics.RecordDataLoad(p.source, kind, rows, dur, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logWithSource(ctx, logger, slog.LevelError, p.source, "data load failed",
			slog.String(logging.FieldKind, kind),
			slog.Float64(logging.FieldDurationMS, float64(dur.Milliseconds())),
			"err", err,
		)
		return
	}
	logWithSource(ctx, logger, slog.LevelInfo, p.source, "data loaded",
		slog.String(logging.FieldKind, kind),
		slog.Int(logging.FieldCount, rows),
		slog.Float64(logging.FieldDurationMS, float64(dur.Milliseconds())),
	)
}
