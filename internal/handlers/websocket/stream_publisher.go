package websocket

import (
	"assemblyStatApp/internal/app/dto"
	"assemblyStatApp/internal/domain/useCases"
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StatsStreamPublisher pushes a fresh stats snapshot to every connected
// observer once per interval. Observers are fully independent: each
// connection runs its own ticker loop and recomputes stats on every tick,
// so a slow or stalled client never holds back the others.
type StatsStreamPublisher struct {
	stats    useCases.StatisticsService
	interval time.Duration

	clients  map[*websocket.Conn]chan struct{}
	mu       sync.Mutex
	upgrader websocket.Upgrader
}

func NewStatsStreamPublisher(stats useCases.StatisticsService, interval time.Duration, wildcardOrigin bool, origins []string) *StatsStreamPublisher {
	checkOrigin := func(r *http.Request) bool { return true }
	if !wildcardOrigin {
		allowed := make(map[string]struct{}, len(origins))
		for _, o := range origins {
			allowed[o] = struct{}{}
		}
		checkOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser clients send no Origin header
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}

	return &StatsStreamPublisher{
		stats:    stats,
		interval: interval,
		clients:  make(map[*websocket.Conn]chan struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// Ensure StatsStreamPublisher implements the StreamPublisher interface
var _ useCases.StreamPublisher = (*StatsStreamPublisher)(nil)

// Handler returns an http.HandlerFunc that upgrades the connection and
// streams snapshots until the observer disconnects.
func (p *StatsStreamPublisher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := p.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade error: %v", err)
			return
		}

		done := make(chan struct{})
		p.mu.Lock()
		p.clients[conn] = done
		p.mu.Unlock()

		// Read loop: we never expect inbound data, but reading is how the
		// peer's close frame (or a dead connection) is noticed.
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		go p.publishLoop(conn, done)
	}
}

func (p *StatsStreamPublisher) publishLoop(conn *websocket.Conn, done <-chan struct{}) {
	defer p.drop(conn)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			// Observer hung up; normal termination
			return
		case <-ticker.C:
			stats, err := p.stats.ComputeStats(context.Background())
			if err != nil {
				log.Printf("stats compute error, closing stream: %v", err)
				return
			}
			if err := conn.WriteJSON(dto.FromStats(stats)); err != nil {
				// Write failure means the transport is gone
				return
			}
		}
	}
}

func (p *StatsStreamPublisher) drop(conn *websocket.Conn) {
	p.mu.Lock()
	delete(p.clients, conn)
	p.mu.Unlock()
	conn.Close()
}

// Close tears down every active observer connection. Used on shutdown.
func (p *StatsStreamPublisher) Close() {
	p.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(p.clients))
	for c := range p.clients {
		conns = append(conns, c)
	}
	p.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

// ClientCount reports the number of currently connected observers.
func (p *StatsStreamPublisher) ClientCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}
