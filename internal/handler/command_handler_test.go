package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/rpelgate/internal/message"
	"github.com/hitoshi/rpelgate/internal/model"
)

type mockExecutor struct {
	executeFn func(ctx context.Context, msg message.ClientMessage) message.Envelope
	calls     int
}

func (m *mockExecutor) Execute(ctx context.Context, msg message.ClientMessage) message.Envelope {
	m.calls++
	return m.executeFn(ctx, msg)
}

func TestCommandHandler_Execute_WritesEnvelope(t *testing.T) {
	exec := &mockExecutor{
		executeFn: func(_ context.Context, msg message.ClientMessage) message.Envelope {
			if msg.Addon != "tok" {
				t.Errorf("addon = %q", msg.Addon)
			}
			get, ok := msg.Command.(message.GetItem)
			if !ok || get.Ref.Name != "Scope" || get.Ref.ID != 1 {
				t.Errorf("command = %#v", msg.Command)
			}
			return message.Success(message.CmdGetItem, "Scope", message.Scope{Item: model.Scope{ID: 1, Name: "Gov"}})
		},
	}
	h := NewCommandHandler(exec)

	body := `{"command":{"GetItem":{"name":"Scope","id":1}},"addon":"tok"}`
	req := httptest.NewRequest(http.MethodPost, "/api/go/json", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Execute(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	want := `{"command":"GetItem","name":"Scope","object":{"Scope":{"id":1,"name":"Gov"}},"error":""}`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestCommandHandler_Execute_EnvelopeErrorsAre200(t *testing.T) {
	exec := &mockExecutor{
		executeFn: func(context.Context, message.ClientMessage) message.Envelope {
			return message.Failure(message.CmdGetList, "ScopeList", model.NewNotAuthError())
		},
	}
	h := NewCommandHandler(exec)

	req := httptest.NewRequest(http.MethodPost, "/api/go/json", strings.NewReader(`{"command":{"GetList":"ScopeList"},"addon":"x"}`))
	w := httptest.NewRecorder()
	h.Execute(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"error":"Not auth"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCommandHandler_Execute_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"JSONではない", `hello`},
		{"空のボディ", ``},
		{"commandなし", `{"addon":"tok"}`},
		{"未知のコマンド", `{"command":{"Explode":{}},"addon":"tok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{}
			h := NewCommandHandler(exec)

			req := httptest.NewRequest(http.MethodPost, "/api/go/json", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Execute(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if !strings.Contains(w.Body.String(), `"code":"PROTOCOL_FAILURE"`) {
				t.Errorf("body = %s", w.Body.String())
			}
			if exec.calls != 0 {
				t.Error("executor must not be called")
			}
		})
	}
}
