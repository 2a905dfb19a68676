package network

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"sortbench/pkg/common"
	"sortbench/pkg/protocol"
)

// Sink receives every result the collector decodes.
type Sink func(common.Result)

// Collector accepts result streams from remote harnesses.
type Collector struct {
	sink     Sink
	log      logrus.FieldLogger
	listener net.Listener
	conns    map[net.Conn]struct{}
	mu       sync.Mutex
	wg       sync.WaitGroup
	closed   bool
}

func NewCollector(sink Sink, log logrus.FieldLogger) *Collector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Collector{sink: sink, log: log, conns: make(map[net.Conn]struct{})}
}

// Listen binds addr. Use Serve to start accepting.
func (c *Collector) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.listener = listener
	c.mu.Unlock()
	c.log.Infof("[TCP] Collector listening on %s (Binary Protocol)", listener.Addr())
	return nil
}

func (c *Collector) Addr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listener == nil {
		return nil
	}
	return c.listener.Addr()
}

// Serve blocks accepting connections until Close.
func (c *Collector) Serve() error {
	c.mu.Lock()
	listener := c.listener
	c.mu.Unlock()
	if listener == nil {
		return errors.New("collector: Serve called before Listen")
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return nil
			}
			c.log.Warnf("[TCP] Accept error: %v", err)
			continue
		}
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			conn.Close()
			return nil
		}
		c.conns[conn] = struct{}{}
		c.wg.Add(1)
		c.mu.Unlock()
		go c.handleConn(conn)
	}
}

func (c *Collector) Start(addr string) error {
	if err := c.Listen(addr); err != nil {
		return err
	}
	return c.Serve()
}

func (c *Collector) Close() error {
	c.mu.Lock()
	c.closed = true
	listener := c.listener
	for conn := range c.conns {
		conn.Close()
	}
	c.mu.Unlock()

	var err error
	if listener != nil {
		err = listener.Close()
	}
	c.wg.Wait()
	return err
}

func (c *Collector) handleConn(conn net.Conn) {
	defer c.wg.Done()
	defer func() {
		conn.Close()
		c.mu.Lock()
		delete(c.conns, conn)
		c.mu.Unlock()
	}()

	for {
		req, err := protocol.Decode(conn)
		if err != nil {
			if err != io.EOF {
				c.log.Debugf("[TCP] Decode error from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		switch req.Op {
		case protocol.OpResult:
			res, err := protocol.DecodeResult(req.Value)
			if err != nil {
				protocol.Encode(conn, protocol.RespErr, nil, []byte(err.Error()))
				continue
			}
			if c.sink != nil {
				c.sink(res)
			}
			protocol.Encode(conn, protocol.RespOK, nil, nil)

		case protocol.OpLog:
			c.log.WithField("remote", conn.RemoteAddr().String()).Info(string(req.Value))
			protocol.Encode(conn, protocol.RespOK, nil, nil)

		default:
			protocol.Encode(conn, protocol.RespErr, nil, []byte("unknown op"))
		}
	}
}
