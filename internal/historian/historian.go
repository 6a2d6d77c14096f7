// internal/historian/historian.go
//
// The historian drains the game-event journal queue from Redis and persists
// it to Postgres. It also sweeps for sessions that have gone quiet and marks
// them abandoned. Losing the historian never affects live play: the journal
// is fire-and-forget on the game side.
package historian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/wclam/hideseek/internal/cache"
	"github.com/wclam/hideseek/internal/database"
)

// Service encapsulates the Redis + DB plumbing for archiving game events and
// expiring inactive sessions.
type Service struct {
	redisClient  *redis.Client
	logger       *logrus.Logger
	batchSize    int
	flushDelay   time.Duration
	inactivity   time.Duration
	lastActivity sync.Map // map[uuid.UUID]time.Time, last event per session

	batchMu  sync.Mutex
	batch    []cache.GameEventRecord
	ctx      context.Context
	cancelFn context.CancelFunc
}

// New constructs a Service from environment variables or defaults.
func New(logger *logrus.Logger) *Service {
	batchSize := getEnvInt("HISTORIAN_BATCH_SIZE", 20)
	flushMs := getEnvInt("HISTORIAN_FLUSH_MS", 500)
	inactivitySec := getEnvInt("SESSION_INACTIVITY_TIMEOUT_SEC", 3600)

	rdb := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "localhost:6379"),
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		redisClient: rdb,
		logger:      logger,
		batchSize:   batchSize,
		flushDelay:  time.Duration(flushMs) * time.Millisecond,
		inactivity:  time.Duration(inactivitySec) * time.Second,
		batch:       make([]cache.GameEventRecord, 0, batchSize),
		ctx:         ctx,
		cancelFn:    cancel,
	}
}

// Run starts the drain loop and the inactivity sweep, blocking until Stop.
func (s *Service) Run() error {
	if err := database.ConnectDB(); err != nil {
		return fmt.Errorf("historian requires a database: %w", err)
	}

	go s.readQueueLoop()
	go s.inactivityLoop()

	s.logger.Info("hideseek-historian service started")
	<-s.ctx.Done()
	s.logger.Info("hideseek-historian shutting down")
	return nil
}

// Stop gracefully stops the service.
func (s *Service) Stop() {
	s.cancelFn()
}

// readQueueLoop BLPops journal records off the queue, accumulating them into
// batches that flush either on size or on the flush ticker.
func (s *Service) readQueueLoop() {
	ticker := time.NewTicker(s.flushDelay)
	defer ticker.Stop()

	queueName := getEnv("HISTORIAN_QUEUE_NAME", cache.DefaultQueueName)

	for {
		select {
		case <-s.ctx.Done():
			return

		case <-ticker.C:
			s.flushBatch()

		default:
			// BLPop with a short timeout so context cancellation is noticed.
			res, err := s.redisClient.BLPop(s.ctx, 3*time.Second, queueName).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				if s.ctx.Err() != nil {
					return
				}
				s.logger.Errorf("BLPop: %v", err)
				continue
			}
			if len(res) < 2 {
				continue
			}

			var record cache.GameEventRecord
			if err := json.Unmarshal([]byte(res[1]), &record); err != nil {
				s.logger.Warnf("invalid event record: %v", err)
				continue
			}

			s.lastActivity.Store(record.SessionID, time.Now())
			s.appendToBatch(record)
		}
	}
}

// appendToBatch adds a record and flushes if the threshold is reached.
func (s *Service) appendToBatch(record cache.GameEventRecord) {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	s.batch = append(s.batch, record)
	if len(s.batch) >= s.batchSize {
		s.flushBatchLocked()
	}
}

func (s *Service) flushBatch() {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()
	s.flushBatchLocked()
}

// flushBatchLocked writes the current batch in one transaction. Assumes
// batchMu is held.
func (s *Service) flushBatchLocked() {
	if len(s.batch) == 0 {
		return
	}
	batchCopy := make([]cache.GameEventRecord, len(s.batch))
	copy(batchCopy, s.batch)
	s.batch = s.batch[:0]

	ctx := context.Background()
	err := pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, rec := range batchCopy {
			if err := insertGameEventTx(ctx, tx, rec); err != nil {
				return fmt.Errorf("insertGameEventTx: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorf("flushBatch: %v", err)
		return
	}
	s.logger.Debugf("flushed %d events to DB", len(batchCopy))
}

// inactivityLoop marks sessions abandoned after the configured quiet period.
func (s *Service) inactivityLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()
			s.lastActivity.Range(func(key, val interface{}) bool {
				sessionID, ok1 := key.(uuid.UUID)
				last, ok2 := val.(time.Time)
				if ok1 && ok2 && now.Sub(last) > s.inactivity {
					s.markSessionAbandoned(sessionID)
					s.lastActivity.Delete(sessionID)
				}
				return true
			})
		}
	}
}

// markSessionAbandoned flags a session that went quiet mid-game.
func (s *Service) markSessionAbandoned(sessionID uuid.UUID) {
	ctx := context.Background()
	err := pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			UPDATE sessions
			SET status = 'abandoned', last_seen_at = NOW()
			WHERE id = $1 AND status = 'active'
		`
		_, e := tx.Exec(ctx, q, sessionID)
		return e
	})
	if err != nil {
		s.logger.Errorf("failed to mark session %v abandoned: %v", sessionID, err)
		return
	}
	s.logger.Infof("marked session %v as abandoned due to inactivity", sessionID)
}

// insertGameEventTx inserts one journal record and upserts the session row.
func insertGameEventTx(ctx context.Context, tx pgx.Tx, rec cache.GameEventRecord) error {
	upsertSessionQ := `
		INSERT INTO sessions (id, status, last_seen_at)
		VALUES ($1, 'active', NOW())
		ON CONFLICT (id)
		DO UPDATE SET status = 'active', last_seen_at = NOW()
	`
	if _, err := tx.Exec(ctx, upsertSessionQ, rec.SessionID); err != nil {
		return err
	}

	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return err
	}
	insertQ := `
		INSERT INTO game_events (
			session_id, event_index, actor_team_id, event_type, payload, occurred_at
		) VALUES ($1, $2, $3, $4, $5, to_timestamp($6 / 1000.0))
	`
	_, err = tx.Exec(ctx, insertQ,
		rec.SessionID, rec.EventIndex, rec.ActorTeamID, rec.EventType, payload, rec.Timestamp,
	)
	return err
}

// getEnv retrieves an environment variable's value or returns a default.
func getEnv(key, defVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defVal
}

// getEnvInt retrieves an integer env value or returns a default.
func getEnvInt(key string, defVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defVal
	}
	return i
}
