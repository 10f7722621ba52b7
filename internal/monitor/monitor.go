// Package monitor serves snapshots of the running machine to websocket
// clients, for debugging tools that want to follow the CPU and memory
// without stopping it.
package monitor

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Message types, the first byte of every message.
const (
	// Snapshot is followed by a raw types.State.
	Snapshot uint8 = iota
	// CompressedSnapshot is followed by a brotli compressed types.State.
	CompressedSnapshot
)

// DefaultQuality is the brotli quality used when Options.Quality is 0.
const DefaultQuality = 7

// DefaultQueueSize is the per client queue length used when
// Options.QueueSize is 0.
const DefaultQueueSize = 16

// Options configure a Monitor.
type Options struct {
	// Compression brotli compresses every snapshot.
	Compression bool
	// Quality is the brotli quality, 0 through 11.
	Quality int
	// QueueSize is the number of messages buffered per client. A client
	// whose queue is full when a snapshot is published is dropped.
	QueueSize int
}

// Monitor broadcasts published snapshots to every connected client.
// Identical consecutive snapshots are only sent once.
type Monitor struct {
	log  log.Logger
	opts Options

	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*client]struct{}
	lastHash uint64
	last     []byte
	closed   bool
}

type client struct {
	conn *websocket.Conn
	addr string
	send chan []byte
}

// New returns a Monitor without clients. A nil logger discards output.
func New(logger log.Logger, opts Options) *Monitor {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	if opts.Quality == 0 {
		opts.Quality = DefaultQuality
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	return &Monitor{
		log:     logger,
		opts:    opts,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024 * 16,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler upgrades requests to websocket connections. A new client is
// sent the latest snapshot straight away.
func (m *Monitor) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		closed := m.closed
		m.mu.Unlock()
		if closed {
			http.Error(w, "monitor closed", http.StatusServiceUnavailable)
			return
		}

		// upgrade the connection to a websocket connection
		conn, err := m.upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.log.Errorf("monitor: upgrading %s: %v", r.RemoteAddr, err)
			return
		}

		c := &client{conn: conn, addr: r.RemoteAddr, send: make(chan []byte, m.opts.QueueSize)}
		if !m.register(c) {
			conn.Close()
			return
		}
		m.log.Infof("monitor: client connected: %s", r.RemoteAddr)

		go c.writePump()
		c.readPump()

		m.unregister(c)
		m.log.Infof("monitor: client disconnected: %s", r.RemoteAddr)
	})
}

func (m *Monitor) register(c *client) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	m.clients[c] = struct{}{}
	if m.last != nil {
		c.send <- m.last
	}
	return true
}

func (m *Monitor) unregister(c *client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[c]; ok {
		delete(m.clients, c)
		close(c.send)
	}
}

// Publish encodes s and sends it to every client, unless it is the
// same as the previously published snapshot. It never blocks on a
// client.
func (m *Monitor) Publish(s types.Stater) {
	state := types.NewState()
	s.Save(state)
	raw := state.Bytes()

	hash := xxhash.Sum64(raw)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || (m.last != nil && hash == m.lastHash) {
		return
	}

	msg, err := m.encode(raw)
	if err != nil {
		m.log.Errorf("monitor: encoding snapshot: %v", err)
		return
	}
	m.lastHash, m.last = hash, msg

	for c := range m.clients {
		select {
		case c.send <- msg:
		default:
			m.log.Warnf("monitor: dropping slow client %s", c.addr)
			close(c.send)
			delete(m.clients, c)
		}
	}
}

// encode prefixes raw with its message type, compressing it first
// when enabled.
func (m *Monitor) encode(raw []byte) ([]byte, error) {
	if !m.opts.Compression {
		return append([]byte{Snapshot}, raw...), nil
	}

	var buf bytes.Buffer
	buf.WriteByte(CompressedSnapshot)
	w := brotli.NewWriterLevel(&buf, m.opts.Quality)
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Clients returns the number of connected clients.
func (m *Monitor) Clients() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// Close disconnects every client and rejects new ones.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for c := range m.clients {
		close(c.send)
		delete(m.clients, c)
	}
}

// readPump discards incoming messages until the connection fails.
func (c *client) readPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends queued messages until the queue is closed, then
// closes the connection.
func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			// unblocks readPump, which unregisters the client
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
