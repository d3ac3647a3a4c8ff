package kv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/infra"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type LedgerStore struct {
	client *redis.Client
	keys   keyspace
	logger *slog.Logger
}

func NewLedgerStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *LedgerStore {
	return &LedgerStore{
		client: client,
		keys:   newKeyspace(cfg.Redis.KeyPrefix),
		logger: logger,
	}
}

func (s *LedgerStore) Snapshot(ctx context.Context, code string, now time.Time) (promo.LedgerSnapshot, error) {
	pipe := s.client.Pipeline()
	countCmd := pipe.Get(ctx, s.keys.count(code))
	heldCmd := pipe.ZCount(ctx, s.keys.holds(code), "("+millis(now), "+inf")
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return promo.LedgerSnapshot{}, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read ledger", err)
	}

	if err := heldCmd.Err(); err != nil {
		return promo.LedgerSnapshot{}, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to count holds", err)
	}

	claimed, err := countCmd.Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return promo.LedgerSnapshot{}, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode claim count", err)
	}

	return promo.LedgerSnapshot{
		Claimed: claimed,
		Held:    int(heldCmd.Val()),
	}, nil
}

func (s *LedgerStore) EmailState(ctx context.Context, code, email string, now time.Time) (promo.EmailState, error) {
	res, err := emailStateScript.Run(ctx, s.client, s.keys.ledgerKeys(code), email, millis(now)).Int64Slice()
	if err != nil {
		return promo.EmailState{}, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read email state", err)
	}
	if len(res) != 2 {
		return promo.EmailState{}, infra.WrapRepoErr(s.logger, infra.KindUnexpected, "unexpected email state reply", nil)
	}
	return promo.EmailState{Claimed: res[0] == 1, Held: res[1] == 1}, nil
}

func (s *LedgerStore) PlaceHold(ctx context.Context, req shared.HoldRequest) error {
	res, err := placeHoldScript.Run(ctx, s.client, s.keys.ledgerKeys(req.Code),
		req.Email,
		req.HoldID.String(),
		millis(req.Now),
		millis(req.ExpiresAt),
		req.MaxUses,
		req.ReleasedCap,
	).Text()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to place hold", err)
	}

	switch res {
	case "OK":
		return nil
	case "ALREADY_CLAIMED":
		return promo.ErrAlreadyClaimed
	case "EXHAUSTED":
		return promo.ErrExhausted
	case "NOT_RELEASED":
		return promo.ErrNotYetReleased
	default:
		return infra.WrapRepoErr(s.logger, infra.KindUnexpected, "unexpected hold reply: "+res, nil)
	}
}

func (s *LedgerStore) Claim(ctx context.Context, req shared.ClaimRequest) (shared.ClaimOutcome, error) {
	entry, err := json.Marshal(promo.Redemption{
		Email:          req.Email,
		OrderReference: req.OrderReference,
		RedeemedAt:     req.Now.UTC(),
	})
	if err != nil {
		return "", infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode redemption", err)
	}

	res, err := claimScript.Run(ctx, s.client, s.keys.ledgerKeys(req.Code),
		req.Email,
		req.OrderReference,
		millis(req.Now),
		req.MaxUses,
		string(entry),
	).Text()
	if err != nil {
		return "", infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to record claim", err)
	}

	switch res {
	case "CONFIRMED_HOLD":
		return shared.ClaimConfirmedHold, nil
	case "DIRECT":
		return shared.ClaimDirect, nil
	case "DUPLICATE":
		return shared.ClaimDuplicate, nil
	case "ALREADY_CLAIMED":
		return "", promo.ErrAlreadyClaimed
	case "EXHAUSTED":
		return "", promo.ErrExhausted
	default:
		return "", infra.WrapRepoErr(s.logger, infra.KindUnexpected, "unexpected claim reply: "+res, nil)
	}
}

func (s *LedgerStore) ReleaseHold(ctx context.Context, code string, holdID uuid.UUID) (bool, error) {
	released, err := releaseHoldScript.Run(ctx, s.client, s.keys.ledgerKeys(code), holdID.String()).Int()
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to release hold", err)
	}
	return released == 1, nil
}

func (s *LedgerStore) Reset(ctx context.Context, req shared.LedgerReset) error {
	clearEmails := "0"
	if req.ClearEmails {
		clearEmails = "1"
	}
	if err := resetScript.Run(ctx, s.client, s.keys.ledgerKeys(req.Code), req.Count, clearEmails).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to reset ledger", err)
	}
	return nil
}

func (s *LedgerStore) Redemptions(ctx context.Context, code string) ([]promo.Redemption, error) {
	raw, err := s.client.LRange(ctx, s.keys.log(code), 0, -1).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read redemption log", err)
	}

	out := make([]promo.Redemption, 0, len(raw))
	for _, entry := range raw {
		var r promo.Redemption
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode redemption", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
