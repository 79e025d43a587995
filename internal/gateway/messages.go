package gateway

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/bus"
	"github.com/tstnetwork/tstnode/internal/model"
)

// wsRequest is the superset of fields a client message may carry.
type wsRequest struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	Privatekey string  `json:"privatekey"`
	Address    string  `json:"address"`
	FetchNames bool    `json:"fetchNames"`
	Event      string  `json:"event"`
	To         string  `json:"to"`
	Amount     uint64  `json:"amount"`
	Metadata   *string `json:"metadata"`
	Nonce      string  `json:"nonce"`
}

type wsResponse map[string]interface{}

func (h *Hub) handleMessage(ctx context.Context, session *Session, raw []byte) {
	var req wsRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.respondError(session, 0, "", apierr.InvalidParameter("message"))
		return
	}
	if req.Type == "" {
		h.respondError(session, req.ID, "", apierr.MissingParameter("type"))
		return
	}

	body, err := h.dispatch(ctx, session, &req)
	if err != nil {
		h.respondError(session, req.ID, req.Type, err)
		return
	}
	h.respond(session, req.ID, req.Type, body)
}

func (h *Hub) dispatch(ctx context.Context, session *Session, req *wsRequest) (wsResponse, error) {
	switch req.Type {
	case "me":
		return h.handleMe(ctx, session)
	case "login":
		return h.handleLogin(ctx, session, req)
	case "logout":
		session.setAddress("")
		return wsResponse{"is_guest": true}, nil
	case "subscribe":
		return h.handleSubscribe(session, req, true)
	case "unsubscribe":
		return h.handleSubscribe(session, req, false)
	case "get_subscription_level":
		return wsResponse{"subscription_level": session.subscriptions()}, nil
	case "get_valid_subscription_levels":
		levels := make([]string, 0, len(bus.Categories()))
		for _, category := range bus.Categories() {
			levels = append(levels, string(category))
		}
		return wsResponse{"valid_subscription_levels": levels}, nil
	case "address":
		return h.handleAddress(ctx, req)
	case "work":
		work, err := h.work.Current(ctx)
		if err != nil {
			return nil, err
		}
		return wsResponse{"work": work}, nil
	case "stake":
		return h.handleStake(ctx, session, req)
	case "submit_block":
		return h.handleSubmitBlock(ctx, session, req)
	case "make_transaction":
		return h.handleMakeTransaction(ctx, session, req)
	default:
		return nil, apierr.InvalidParameter("type")
	}
}

func (h *Hub) handleMe(ctx context.Context, session *Session) (wsResponse, error) {
	address := session.Address()
	if address == "" {
		return wsResponse{"is_guest": true}, nil
	}
	row, _, err := h.addresses.Get(ctx, address, false)
	if err != nil {
		return nil, err
	}
	return wsResponse{"is_guest": false, "address": row}, nil
}

func (h *Hub) handleLogin(ctx context.Context, session *Session, req *wsRequest) (wsResponse, error) {
	if req.Privatekey == "" {
		return nil, apierr.MissingParameter("privatekey")
	}
	row, err := h.addresses.Authenticate(ctx, session.meta, req.Privatekey, model.AuthLogAuth)
	if err != nil {
		return nil, err
	}
	session.setAddress(row.Address)
	return wsResponse{"is_guest": false, "address": row}, nil
}

func (h *Hub) handleSubscribe(session *Session, req *wsRequest, add bool) (wsResponse, error) {
	if req.Event == "" {
		return nil, apierr.MissingParameter("event")
	}
	if !bus.ValidCategory(req.Event) {
		return nil, apierr.InvalidParameter("event")
	}
	if add {
		session.subscribe(bus.Category(req.Event))
	} else {
		session.unsubscribe(bus.Category(req.Event))
	}
	return wsResponse{"subscription_level": session.subscriptions()}, nil
}

func (h *Hub) handleAddress(ctx context.Context, req *wsRequest) (wsResponse, error) {
	if req.Address == "" {
		return nil, apierr.MissingParameter("address")
	}
	row, names, err := h.addresses.Get(ctx, req.Address, req.FetchNames)
	if err != nil {
		return nil, err
	}
	body := wsResponse{"address": row}
	if req.FetchNames {
		body["names"] = names
	}
	return body, nil
}

func (h *Hub) handleStake(ctx context.Context, session *Session, req *wsRequest) (wsResponse, error) {
	address := req.Address
	if address == "" {
		address = session.Address()
	}
	if address == "" {
		return nil, apierr.MissingParameter("address")
	}
	stake, err := h.staking.Get(ctx, address)
	if err != nil {
		return nil, err
	}
	return wsResponse{"stake": stake}, nil
}

func (h *Hub) handleSubmitBlock(ctx context.Context, session *Session, req *wsRequest) (wsResponse, error) {
	address := req.Address
	if address == "" {
		address = session.Address()
	}
	if req.Nonce == "" {
		return nil, apierr.MissingParameter("nonce")
	}
	block, work, err := h.blocks.Submit(ctx, session.meta, address, []byte(req.Nonce))
	if err != nil {
		return nil, err
	}
	return wsResponse{"success": true, "block": block, "work": work}, nil
}

func (h *Hub) handleMakeTransaction(ctx context.Context, session *Session, req *wsRequest) (wsResponse, error) {
	if req.Privatekey == "" {
		return nil, apierr.MissingParameter("privatekey")
	}
	row, err := h.transactions.Push(ctx, session.meta, req.Privatekey, req.To, req.Amount, req.Metadata)
	if err != nil {
		return nil, err
	}
	return wsResponse{"transaction": row}, nil
}

func (h *Hub) respond(session *Session, id int64, respondingTo string, body wsResponse) {
	wire := wsResponse{
		"ok":   true,
		"type": "response",
	}
	if respondingTo != "" {
		wire["responding_to"] = respondingTo
	}
	if id != 0 {
		wire["id"] = id
	}
	for key, value := range body {
		wire[key] = value
	}
	h.send(session, wire)
}

func (h *Hub) respondError(session *Session, id int64, respondingTo string, err error) {
	apiErr := apierr.From(err)
	if apiErr.Kind == apierr.KindServerError {
		h.logger.Error("websocket handler failed", zap.Error(err))
	}

	wire := wsResponse{
		"ok":    false,
		"type":  "response",
		"error": string(apiErr.Kind),
	}
	if respondingTo != "" {
		wire["responding_to"] = respondingTo
	}
	if id != 0 {
		wire["id"] = id
	}
	if apiErr.Parameter != "" {
		wire["parameter"] = apiErr.Parameter
	}
	h.send(session, wire)
}

func (h *Hub) send(session *Session, wire wsResponse) {
	payload, err := json.Marshal(wire)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		return
	}
	session.trySend(payload)
}
