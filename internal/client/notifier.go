package client

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"irentstuff-transactions/internal/logger"
)

// AdminMessage is the wire format of the admin side channel. Action and
// Message are fixed by the channel protocol; Admin carries the tag for the
// transition that just committed.
type AdminMessage struct {
	Action    string `json:"action"`
	Message   string `json:"message"`
	ItemID    int32  `json:"itemid"`
	OwnerID   string `json:"ownerid"`
	RenterID  string `json:"renterid"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
	Admin     string `json:"admin"`
}

// Notifier pushes an admin message to the messaging channel. Delivery is
// best-effort; callers log failures and move on.
type Notifier interface {
	Send(ctx context.Context, token string, msg *AdminMessage) error
}

type websocketNotifier struct {
	url    string
	dialer *websocket.Dialer
}

func NewWebsocketNotifier(url string) Notifier {
	return &websocketNotifier{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

func (n *websocketNotifier) Send(ctx context.Context, token string, msg *AdminMessage) error {
	msg.Action = "sendmessage"
	msg.Message = "Admin message"
	msg.Timestamp = time.Now().Format(time.RFC3339)

	logger.ExternalServiceCall("messages", "Send", "admin", msg.Admin, "item_id", msg.ItemID)

	conn, _, err := n.dialer.DialContext(ctx, n.url+"?token="+token, nil)
	if err != nil {
		logger.ExternalServiceResult("messages", "Send", err)
		return err
	}
	defer conn.Close()

	if err := conn.WriteJSON(msg); err != nil {
		logger.ExternalServiceResult("messages", "Send", err)
		return err
	}
	// The channel acks each message; wait for it so the push is not dropped
	// by closing early.
	if _, _, err := conn.ReadMessage(); err != nil {
		logger.ExternalServiceResult("messages", "Send", err)
		return err
	}
	logger.ExternalServiceResult("messages", "Send", nil)
	return nil
}
