package client

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"sortbench/pkg/common"
	"sortbench/pkg/protocol"
)

// RemoteReporter streams harness output to a collector over TCP. Delivery
// errors are logged locally; they never interrupt a benchmark run.
type RemoteReporter struct {
	conn net.Conn
	addr string
	log  logrus.FieldLogger
	mu   sync.Mutex
}

func Dial(addr string, log logrus.FieldLogger) (*RemoteReporter, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RemoteReporter{
		conn: conn,
		addr: addr,
		log:  log,
	}, nil
}

func (r *RemoteReporter) Report(res common.Result) {
	if err := r.Send(protocol.OpResult, protocol.EncodeResult(res)); err != nil {
		r.log.Warnf("[Client] Failed to send result for size %d: %v", res.Size, err)
	}
}

func (r *RemoteReporter) Logf(format string, args ...interface{}) {
	if err := r.Send(protocol.OpLog, []byte(fmt.Sprintf(format, args...))); err != nil {
		r.log.Warnf("[Client] Failed to send log line: %v", err)
	}
}

// Send writes one frame and waits for the collector's acknowledgement,
// reconnecting once if the write or read fails.
func (r *RemoteReporter) Send(op byte, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.roundTrip(op, payload)
	var rejected *RejectedError
	if err == nil || errors.As(err, &rejected) {
		return err
	}
	return r.reconnectAndRetry(op, payload)
}

// RejectedError is a frame the collector received and refused.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "collector rejected frame: " + e.Reason
}

func (r *RemoteReporter) roundTrip(op byte, payload []byte) error {
	if err := protocol.Encode(r.conn, op, nil, payload); err != nil {
		return err
	}
	resp, err := protocol.Decode(r.conn)
	if err != nil {
		return err
	}
	switch resp.Op {
	case protocol.RespOK:
		return nil
	case protocol.RespErr:
		return &RejectedError{Reason: string(resp.Value)}
	default:
		return errors.New("unknown response")
	}
}

func (r *RemoteReporter) reconnectAndRetry(op byte, payload []byte) error {
	r.conn.Close()
	conn, err := net.DialTimeout("tcp", r.addr, 5*time.Second)
	if err != nil {
		return err
	}
	r.conn = conn
	return r.roundTrip(op, payload)
}

func (r *RemoteReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn.Close()
}
