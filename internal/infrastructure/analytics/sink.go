package analytics

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultQueueSize é quantos eventos a MemoryQueue guarda antes de descartar os mais antigos
const DefaultQueueSize = 1000

// redisScanWindow é quantas entradas do stream Recent examina por chamada
const redisScanWindow = 500

// Sink recebe os eventos rastreados
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

// Feed devolve os eventos mais recentes de um usuário, do mais novo para o mais antigo
type Feed interface {
	Recent(ctx context.Context, userID, limit int) ([]Event, error)
}

// MemoryQueue é um buffer circular: cheio, cada evento novo descarta o mais antigo
type MemoryQueue struct {
	mu      sync.Mutex
	ring    []Event
	start   int
	size    int
	dropped int
}

func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &MemoryQueue{ring: make([]Event, capacity)}
}

func (q *MemoryQueue) Publish(_ context.Context, e Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size < len(q.ring) {
		q.ring[(q.start+q.size)%len(q.ring)] = e
		q.size++
		return nil
	}
	q.ring[q.start] = e
	q.start = (q.start + 1) % len(q.ring)
	q.dropped++
	return nil
}

// Events retorna uma cópia do buffer, do mais antigo para o mais novo
func (q *MemoryQueue) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Event, q.size)
	for i := range out {
		out[i] = q.ring[(q.start+i)%len(q.ring)]
	}
	return out
}

// Dropped conta os eventos descartados por falta de espaço
func (q *MemoryQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

func (q *MemoryQueue) Recent(_ context.Context, userID, limit int) ([]Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := []Event{}
	for i := q.size - 1; i >= 0 && len(out) < limit; i-- {
		e := q.ring[(q.start+i)%len(q.ring)]
		if e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// RedisStream publica cada evento com XADD, no campo "payload"
type RedisStream struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewRedisStream(client *redis.Client, stream string, maxLen int64) *RedisStream {
	if maxLen <= 0 {
		maxLen = 10000
	}
	return &RedisStream{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStream) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"event":   e.Name,
			"payload": string(payload),
		},
	}).Err()
}

// Recent olha só as últimas entradas do stream; eventos mais antigos do usuário ficam de fora
func (s *RedisStream) Recent(ctx context.Context, userID, limit int) ([]Event, error) {
	msgs, err := s.client.XRevRangeN(ctx, s.stream, "+", "-", redisScanWindow).Result()
	if err != nil {
		return nil, err
	}
	out := []Event{}
	for _, msg := range msgs {
		if len(out) >= limit {
			break
		}
		payload, ok := msg.Values["payload"].(string)
		if !ok {
			continue
		}
		var e Event
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, err
		}
		if e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
