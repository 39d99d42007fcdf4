// Package gateway はコマンドルートの認証・認可・振り分けを提供する。
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hitoshi/rpelgate/internal/message"
	"github.com/hitoshi/rpelgate/internal/metrics"
	"github.com/hitoshi/rpelgate/internal/model"
	"github.com/hitoshi/rpelgate/internal/permission"
	"github.com/hitoshi/rpelgate/internal/session"
)

// Catalog はルーターが振り分け先として使用するエンティティ操作のインターフェース。
type Catalog interface {
	FetchItem(ctx context.Context, kind string, id int64) (message.Payload, error)
	FetchList(ctx context.Context, name string) (message.Payload, error)
	Insert(ctx context.Context, p message.Payload) (int64, error)
	Update(ctx context.Context, p message.Payload) (int64, error)
	Delete(ctx context.Context, kind string, id int64) (int64, error)

	GetUser(ctx context.Context, id int64) (message.Payload, error)
	ListUsers(ctx context.Context) (message.Payload, error)
	InsertUser(ctx context.Context, u model.User) (int64, error)
	UpdateUser(ctx context.Context, u model.User) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// SessionSource は現在のセッションストアを返す。
type SessionSource interface {
	Current() *session.Store
}

// Router はクライアントメッセージを検証し、カタログへ振り分ける。
type Router struct {
	sessions SessionSource
	catalog  Catalog
	metrics  metrics.MetricsCollector
}

// NewRouter はRouterを生成する。recorderがnilの場合はメトリクスを記録しない。
func NewRouter(sessions SessionSource, catalog Catalog, recorder metrics.MetricsCollector) *Router {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Router{sessions: sessions, catalog: catalog, metrics: recorder}
}

// Execute はメッセージを実行してエンベロープを返す。
// 認証（トークン照合）と認可（権限ビット）を通過したコマンドだけがカタログに渡る。
// エラーは全てエンベロープのerrorに格納される。
func (r *Router) Execute(ctx context.Context, msg message.ClientMessage) message.Envelope {
	start := time.Now()
	kind, name := describe(msg.Command)

	var userID int64
	obj, err := func() (message.Payload, error) {
		user, ok := r.sessions.Current().Lookup(msg.Addon)
		if !ok {
			return nil, model.NewNotAuthError()
		}
		userID = user.ID

		cmd, err := permission.Check(user.Role, msg.Command)
		if err != nil {
			return nil, err
		}
		return r.dispatch(ctx, cmd)
	}()

	env := message.Success(kind, name, obj)
	if err != nil {
		env = message.Failure(kind, name, err)
	}

	outcome := outcomeOf(err)
	label := metricName(msg.Command, outcome)
	r.metrics.RecordCommand(string(kind), label, outcome)
	r.metrics.RecordCommandLatency(string(kind), time.Since(start))

	attrs := []any{
		slog.String("command", string(kind)),
		slog.String("name", label),
		slog.Int64("user_id", userID),
		slog.String("outcome", outcome),
	}
	if outcome == metrics.OutcomePersistence {
		slog.Error("command failed", append(attrs, slog.String("error", err.Error()))...)
	} else {
		slog.Info("command executed", attrs...)
	}
	return env
}

func (r *Router) dispatch(ctx context.Context, cmd message.Command) (message.Payload, error) {
	switch c := cmd.(type) {
	case message.GetItem:
		return r.catalog.FetchItem(ctx, c.Ref.Name, c.Ref.ID)
	case message.GetList:
		return r.catalog.FetchList(ctx, c.Name)
	case message.InsertItem:
		return idPayload(r.catalog.Insert(ctx, c.Payload))
	case message.UpdateItem:
		return idPayload(r.catalog.Update(ctx, c.Payload))
	case message.DeleteItem:
		return idPayload(r.catalog.Delete(ctx, c.Ref.Name, c.Ref.ID))
	case message.UserOp:
		return r.dispatchUser(ctx, c.Op)
	}
	return nil, model.NewBadRequestError("unsupported command %T", cmd)
}

func (r *Router) dispatchUser(ctx context.Context, op message.UserCommand) (message.Payload, error) {
	switch o := op.(type) {
	case message.GetUser:
		return r.catalog.GetUser(ctx, o.ID)
	case message.ListUsers, nil:
		return r.catalog.ListUsers(ctx)
	case message.InsertUser:
		return idPayload(r.catalog.InsertUser(ctx, o.User))
	case message.UpdateUser:
		return idPayload(r.catalog.UpdateUser(ctx, o.User))
	case message.DeleteUser:
		return idPayload(r.catalog.DeleteUser(ctx, o.ID))
	}
	return nil, model.NewBadRequestError("unsupported user command %T", op)
}

// idPayload は挿入・更新・削除の結果をIdペイロードに変換する。
func idPayload(n int64, err error) (message.Payload, error) {
	if err != nil {
		return nil, err
	}
	return message.ID{Value: n}, nil
}

// describe はエンベロープのcommandとnameに入れる値を返す。
// nameはエンティティ種別タグまたは一覧名で、ユーザー管理操作では空。
func describe(cmd message.Command) (message.CommandKind, string) {
	switch c := cmd.(type) {
	case message.GetItem:
		return c.Kind(), c.Ref.Name
	case message.GetList:
		return c.Kind(), c.Name
	case message.InsertItem:
		return c.Kind(), payloadName(c.Payload)
	case message.UpdateItem:
		return c.Kind(), payloadName(c.Payload)
	case message.DeleteItem:
		return c.Kind(), c.Ref.Name
	case message.UserOp:
		return c.Kind(), ""
	}
	return "", ""
}

// unknownName は既知の種別タグ・一覧名に該当しない名前のラベル値。
const unknownName = "unknown"

// metricName はメトリクスとログに使う対象名を返す。
// クライアントが送った名前は既知の種別タグ・一覧名に限って採用し、それ以外はunknownName。
// 未認証のコマンドは名前を持たない。
func metricName(cmd message.Command, outcome string) string {
	if outcome == metrics.OutcomeNotAuth {
		return ""
	}
	switch c := cmd.(type) {
	case message.GetItem:
		return entityLabel(c.Ref.Name)
	case message.DeleteItem:
		return entityLabel(c.Ref.Name)
	case message.GetList:
		if n, ok := model.ParseListName(c.Name); ok {
			return string(n)
		}
		return unknownName
	case message.InsertItem:
		return payloadLabel(c.Payload)
	case message.UpdateItem:
		return payloadLabel(c.Payload)
	}
	return ""
}

func entityLabel(tag string) string {
	if tag == sirenTypeAlias {
		return string(model.KindSirenType)
	}
	if k, ok := model.ParseEntityKind(tag); ok {
		return string(k)
	}
	return unknownName
}

// payloadLabel はペイロードのタグを返す。単一レコード以外はunknownName。
func payloadLabel(p message.Payload) string {
	if p == nil {
		return unknownName
	}
	return entityLabel(p.Name())
}

// sirenTypeAlias は削除時に受け付けるSirenTypeの旧タグ。
const sirenTypeAlias = "Siren_type"

func payloadName(p message.Payload) string {
	if p == nil {
		return ""
	}
	return p.Name()
}

// outcomeOf はエラーからメトリクス用の結果ラベルを求める。
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	var se *model.ServiceError
	if !errors.As(err, &se) {
		return metrics.OutcomePersistence
	}
	switch se.Code {
	case model.ErrCodeNotAuth:
		return metrics.OutcomeNotAuth
	case model.ErrCodeNotPermission:
		return metrics.OutcomeNotPermission
	case model.ErrCodeBadRequest, model.ErrCodeProtocol:
		return metrics.OutcomeBadRequest
	}
	return metrics.OutcomePersistence
}
