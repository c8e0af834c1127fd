package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zaqqye/smart_timetable/internal/logger"
	"github.com/zaqqye/smart_timetable/internal/models"
	"github.com/zaqqye/smart_timetable/internal/tracker"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// Event is pushed to every connected dashboard.
type Event struct {
	Type           string           `json:"type"` // exam_added, progress_updated
	ExamID         string           `json:"examId"`
	Subject        string           `json:"subject"`
	ExamDate       *models.Date     `json:"examDate,omitempty"`
	CompletedUnits []int            `json:"completedUnits,omitempty"`
	LastUpdated    *models.Date     `json:"lastUpdated,omitempty"`
	Summary        *tracker.Summary `json:"summary,omitempty"`
}

// ProgressHub fans out exam and progress events to websocket clients.
type ProgressHub struct {
	register   chan *progressClient
	unregister chan *progressClient
	broadcast  chan []byte
	clients    map[*progressClient]struct{}
	log        *logger.Logger
}

func NewProgressHub(log *logger.Logger) *ProgressHub {
	return &ProgressHub{
		register:   make(chan *progressClient),
		unregister: make(chan *progressClient),
		broadcast:  make(chan []byte, sendBufferSize),
		clients:    make(map[*progressClient]struct{}),
		log:        log,
	}
}

func (h *ProgressHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// Publish queues ev for all clients. A full queue drops the event rather
// than blocking the caller.
func (h *ProgressHub) Publish(ev Event) {
	if h == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("ws: failed to marshal event", "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("ws: broadcast queue full, dropping event", "type", ev.Type)
	}
}

func (h *ProgressHub) ExamAdded(exam models.ExamRecord) {
	date := exam.ExamDate
	h.Publish(Event{Type: "exam_added", ExamID: exam.ID, Subject: exam.Subject, ExamDate: &date})
}

func (h *ProgressHub) ProgressUpdated(exam models.ExamRecord, rec models.ProgressRecord, summary tracker.Summary) {
	h.Publish(Event{
		Type:           "progress_updated",
		ExamID:         exam.ID,
		Subject:        exam.Subject,
		CompletedUnits: rec.CompletedUnits,
		LastUpdated:    rec.LastUpdated,
		Summary:        &summary,
	})
}

type progressClient struct {
	hub  *ProgressHub
	conn *websocket.Conn
	send chan []byte
}

func newProgressClient(hub *ProgressHub, conn *websocket.Conn) *progressClient {
	return &progressClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *progressClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *progressClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
