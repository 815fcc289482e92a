package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// View cache for rendered page payloads (dashboard, list pages). Mutations
// invalidate the owner's keys so the next fetch re-renders. Every failure here
// degrades to "no cache"; it never fails a request.

var viewCache *redis.Client

const viewCacheTTL = 5 * time.Minute

// Keys are grouped per page name; InvalidateViews takes the page names a
// mutation touched.
const (
	ViewDashboard    = "dashboard"
	ViewPlans        = "plans"
	ViewWorkoutPlans = "workout-plans"
	ViewWaterPlans   = "water-plans"
	ViewWorkouts     = "workouts"
	ViewWater        = "water"
	ViewJournal      = "journal"
	ViewMeals        = "meals"
)

func InitViewCache(addr string) {
	if addr == "" {
		return // caching disabled
	}
	viewCache = redis.NewClient(&redis.Options{Addr: addr})
	if err := viewCache.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("view cache unreachable, running without it")
		viewCache = nil
	}
}

func viewKey(view string, userID uint) string {
	return fmt.Sprintf("view:%s:%d", view, userID)
}

func GetCachedView(ctx context.Context, view string, userID uint) ([]byte, bool) {
	if viewCache == nil {
		return nil, false
	}
	b, err := viewCache.Get(ctx, viewKey(view, userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("view cache read failed")
		}
		return nil, false
	}
	return b, true
}

func SetCachedView(ctx context.Context, view string, userID uint, payload []byte) {
	if viewCache == nil {
		return
	}
	if err := viewCache.Set(ctx, viewKey(view, userID), payload, viewCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("view cache write failed")
	}
}

// InvalidateViews drops the cached renders a mutation made stale. The
// dashboard aggregates meals, water, and workouts, so mutating handlers pass
// it alongside their own page.
func InvalidateViews(userID uint, views ...string) {
	if viewCache == nil {
		return
	}
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = viewKey(v, userID)
	}
	if err := viewCache.Del(context.Background(), keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("view cache invalidation failed")
	}
}
