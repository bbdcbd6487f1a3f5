package eventloop

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// sync runs one reconciliation pass and reports whether anything changed.
func (l *SyncEventLoop) sync(ctx context.Context) (bool, error) {
	local, remote, err := l.loadShares(ctx)
	if err != nil {
		return false, err
	}

	logger.FromContext(ctx).Debug().
		Int("local_shares", len(local)).
		Strs("remote_shares", models.ShareIDs(remote)).
		Msg("share directories loaded")

	known := make(map[string]struct{}, len(local))
	for _, s := range local {
		known[s.ShareID] = struct{}{}
	}

	var hasNewEvents atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.ShareConcurrency)

	for _, share := range remote {
		share := share // per-iteration copy; go.mod targets go1.21 loop semantics
		_, isKnown := known[share.ShareID]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if !isKnown {
				logger.FromContext(gctx).Info().Str("share_id", share.ShareID).Msg("new share found, refreshing its keys")
				if err := l.refreshKey(gctx, share.ShareID); err != nil {
					return err
				}
			}

			changed, err := l.drain(gctx, share.ShareID)
			if changed {
				hasNewEvents.Store(true)
			}
			return err
		})
	}

	err = g.Wait()
	return hasNewEvents.Load(), err
}

// loadShares reads the cached directory before the remote one. The remote
// fetch writes through to the cache, so reading them the other way round
// would hide newly granted shares.
func (l *SyncEventLoop) loadShares(ctx context.Context) (local, remote []models.Share, err error) {
	local, err = l.c.Shares.GetShares(ctx, l.userID, false)
	if err != nil {
		return nil, nil, stageError(StageShares, "", err)
	}

	remote, err = l.c.Shares.GetShares(ctx, l.userID, true)
	if err != nil {
		return nil, nil, stageError(StageShares, "", err)
	}

	return local, remote, nil
}

// drain applies every pending batch of shareID in cursor order.
func (l *SyncEventLoop) drain(ctx context.Context, shareID string) (bool, error) {
	log := logger.FromContext(ctx).With().Str("share_id", shareID).Logger()
	log.Info().Msg("syncing share")

	if err := ctx.Err(); err != nil {
		return false, err
	}
	cursor, err := l.c.EventIDs.GetLastEventID(ctx, l.userID, shareID)
	if err != nil {
		return false, stageError(StageCursor, shareID, err)
	}

	hasNewEvents := false
	for {
		if err = ctx.Err(); err != nil {
			return hasNewEvents, err
		}
		events, err := l.c.Events.GetEvents(ctx, shareID, cursor)
		if err != nil {
			return hasNewEvents, stageError(StageEvents, shareID, err)
		}
		if events.EventsPending && events.LatestEventID == cursor {
			return hasNewEvents, stageError(StageEvents, shareID, ErrCursorDidNotAdvance)
		}

		if l.opts.CursorCommit == CommitBeforeApply {
			if err = l.commitCursor(ctx, shareID, events.LatestEventID); err != nil {
				return hasNewEvents, err
			}
		}

		changed, err := l.apply(ctx, shareID, events)
		hasNewEvents = hasNewEvents || changed
		if err != nil {
			return hasNewEvents, err
		}

		if l.opts.CursorCommit == CommitAfterApply {
			if err = l.commitCursor(ctx, shareID, events.LatestEventID); err != nil {
				return hasNewEvents, err
			}
		}
		cursor = events.LatestEventID

		if !events.EventsPending {
			return hasNewEvents, nil
		}
		log.Info().Str("event_id", cursor).Msg("still have more events")
	}
}

func (l *SyncEventLoop) commitCursor(ctx context.Context, shareID, eventID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return stageError(StageCursor, shareID, l.c.EventIDs.UpsertLastEventID(ctx, l.userID, shareID, eventID))
}

// apply writes one batch into the item store and refreshes the key on
// rotation.
func (l *SyncEventLoop) apply(ctx context.Context, shareID string, events models.SyncEvents) (bool, error) {
	log := logger.FromContext(ctx)
	changed := false

	if n := len(events.UpdatedItems); n > 0 {
		changed = true
		log.Info().Str("share_id", shareID).Int("count", n).Msg("upserting updated items")
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if err := l.c.Items.UpsertItems(ctx, shareID, events.UpdatedItems); err != nil {
			return changed, stageError(StageItems, shareID, err)
		}
	}

	if n := len(events.DeletedItemIDs); n > 0 {
		changed = true
		log.Info().Str("share_id", shareID).Int("count", n).Msg("deleting items")
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if err := l.c.Items.DeleteItemsLocally(ctx, shareID, events.DeletedItemIDs); err != nil {
			return changed, stageError(StageItems, shareID, err)
		}
	}

	if events.HasNewRotation() {
		changed = true
		log.Info().Str("share_id", shareID).Str("rotation_id", *events.NewRotationID).Msg("share key rotated")
		if err := l.refreshKey(ctx, shareID); err != nil {
			return changed, err
		}
	}

	return changed, nil
}

func (l *SyncEventLoop) refreshKey(ctx context.Context, shareID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := l.c.Keys.GetLatestShareKey(ctx, shareID, true)
	return stageError(StageKeys, shareID, err)
}
