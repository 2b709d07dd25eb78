// Package server exposes punky sessions over websockets. Each connection
// gets its own session; every text message is one input.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ajkachnic/punky/core"
)

// Subprotocol is offered to clients during the upgrade.
const Subprotocol = "punky"

const (
	// MaxMessageSize bounds a single request in bytes.
	MaxMessageSize = 64 * 1024

	// MaxCallDepth bounds recursion per session so one client cannot
	// exhaust the stack of the whole process.
	MaxCallDepth = 10000
)

/*
Using custom consolelogger type so tests can silence or capture the
server's output.
*/
type consolelogger func(v ...interface{})

var print = consolelogger(log.Print)

var upgrader = websocket.Upgrader{
	Subprotocols:    []string{Subprotocol},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Request is a single input sent by a client.
type Request struct {
	Source string `json:"source"`
}

// Response carries either the evaluated result or the parser diagnostics.
// Error is set when the request itself could not be read.
type Response struct {
	Result      string   `json:"result"`
	Type        string   `json:"type"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type Server struct{}

func New() *Server {
	return &Server{}
}

// Evaluate runs one request against a session.
func Evaluate(session *core.Session, req Request) Response {
	v, diagnostics := session.Eval(req.Source)
	if len(diagnostics) > 0 {
		return Response{Diagnostics: diagnostics}
	}

	res := Response{Type: v.Type().String()}
	if v.Type() != core.EmptyType {
		res.Result = v.String()
	}
	return res
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		print("Upgrade failed: ", err)
		return
	}

	print("Session opened for ", conn.RemoteAddr())
	session := core.NewSession()
	session.Env().SetMaxCallDepth(MaxCallDepth)

	s.serve(conn, session)
	print("Session closed for ", conn.RemoteAddr())
}

func (s *Server) serve(conn *websocket.Conn, session *core.Session) {
	defer conn.Close()

	conn.SetReadLimit(MaxMessageSize)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				print("Read failed: ", err)
			}
			return
		}

		var req Request
		var res Response

		if err := json.Unmarshal(msg, &req); err != nil {
			res = Response{Error: fmt.Sprintf("malformed request: %v", err)}
		} else {
			res = Evaluate(session, req)
		}

		if err := conn.WriteJSON(res); err != nil {
			print("Write failed: ", err)
			return
		}
	}
}

// ListenAndServe serves websocket sessions on addr under /.
func ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           New(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	print("Listening on ws://", addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	return nil
}
