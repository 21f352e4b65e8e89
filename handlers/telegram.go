package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"devisbot/services"
)

// secretHeader carries the secret token Telegram was registered with.
const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

type telegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *telegramMessage `json:"message"`
}

type telegramMessage struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Text string `json:"text"`
}

// sendMessage is a Bot API call returned as the webhook response body.
type sendMessage struct {
	Method             string              `json:"method"`
	ChatID             int64               `json:"chat_id"`
	Text               string              `json:"text"`
	ReplyParameters    *replyParameters    `json:"reply_parameters,omitempty"`
	LinkPreviewOptions *linkPreviewOptions `json:"link_preview_options,omitempty"`
}

type replyParameters struct {
	MessageID int64 `json:"message_id"`
}

type linkPreviewOptions struct {
	IsDisabled bool `json:"is_disabled"`
}

// HandleTelegramWebhook answers Telegram updates. The reply, if any, is sent
// back inline as a sendMessage call so no outgoing connection is needed.
// Route: POST /telegram/webhook
func HandleTelegramWebhook(f services.Formatter, secret string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		got := e.Request.Header.Get(secretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			log.Printf("telegram: rejected update with invalid secret token")
			return e.String(http.StatusUnauthorized, "invalid secret token")
		}

		var update telegramUpdate
		if err := json.NewDecoder(io.LimitReader(e.Request.Body, maxTextBytes)).Decode(&update); err != nil {
			log.Printf("telegram: could not decode update: %v", err)
			return e.String(http.StatusBadRequest, "invalid update")
		}

		msg := update.Message
		if msg == nil || msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
			return e.NoContent(http.StatusOK)
		}

		reply := services.BuildReply(msg.Text, f)
		if reply.Text == "" {
			return e.NoContent(http.StatusOK)
		}

		out := sendMessage{
			Method:          "sendMessage",
			ChatID:          msg.Chat.ID,
			Text:            reply.Text,
			ReplyParameters: &replyParameters{MessageID: msg.MessageID},
		}
		if reply.HasLinks {
			out.LinkPreviewOptions = &linkPreviewOptions{IsDisabled: true}
		}
		return e.JSON(http.StatusOK, out)
	}
}
