package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/rpelgate/internal/message"
)

// CommandExecutor はクライアントメッセージを実行してエンベロープを返す。
type CommandExecutor interface {
	Execute(ctx context.Context, msg message.ClientMessage) message.Envelope
}

// CommandHandler はコマンドルートのHTTPハンドラー。
type CommandHandler struct {
	executor CommandExecutor
}

// NewCommandHandler はCommandHandlerを生成する。
func NewCommandHandler(executor CommandExecutor) *CommandHandler {
	return &CommandHandler{executor: executor}
}

// Execute はコマンドを実行する。
// 認証・認可・カタログのエラーはエンベロープのerrorで返し、ステータスは200のまま。
// POST /api/go/json
func (h *CommandHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var msg message.ClientMessage
	if !decodeBody(w, r, &msg) {
		return
	}

	writeJSON(w, http.StatusOK, h.executor.Execute(r.Context(), msg))
}
