package message

import "github.com/hitoshi/rpelgate/internal/model"

// CommandKind はコマンドの種類。値はエンベロープのcommandフィールドに入る名前。
type CommandKind string

// コマンド種類の一覧。
const (
	CmdGetItem    CommandKind = "GetItem"
	CmdGetList    CommandKind = "GetList"
	CmdInsertItem CommandKind = "InsertItem"
	CmdUpdateItem CommandKind = "UpdateItem"
	CmdDeleteItem CommandKind = "DeleteItem"
	CmdGetUser    CommandKind = "GetUser"
	CmdListUsers  CommandKind = "GetUserList"
	CmdInsertUser CommandKind = "InsertUser"
	CmdUpdateUser CommandKind = "UpdateUser"
	CmdDeleteUser CommandKind = "DeleteUser"
)

// CommandKinds は全コマンド種類を返す。
func CommandKinds() []CommandKind {
	return []CommandKind{
		CmdGetItem, CmdGetList, CmdInsertItem, CmdUpdateItem, CmdDeleteItem,
		CmdGetUser, CmdListUsers, CmdInsertUser, CmdUpdateUser, CmdDeleteUser,
	}
}

// Command はクライアントが送るコマンドの閉じた直和型。
type Command interface {
	Kind() CommandKind
	command()
}

// EntityRef は種別タグとIDの組でレコードを指す。
type EntityRef struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// GetItem は1件取得コマンド。
type GetItem struct{ Ref EntityRef }

// GetList は一覧取得コマンド。Nameは一覧名（CompanyList、ScopeSelectなど）。
type GetList struct{ Name string }

// InsertItem は挿入コマンド。Payloadは単一レコードのバリアントであること。
type InsertItem struct{ Payload Payload }

// UpdateItem は更新コマンド。
type UpdateItem struct{ Payload Payload }

// DeleteItem は削除コマンド。
type DeleteItem struct{ Ref EntityRef }

// UserOp はユーザー管理コマンドを包む。
type UserOp struct{ Op UserCommand }

func (GetItem) Kind() CommandKind    { return CmdGetItem }
func (GetList) Kind() CommandKind    { return CmdGetList }
func (InsertItem) Kind() CommandKind { return CmdInsertItem }
func (UpdateItem) Kind() CommandKind { return CmdUpdateItem }
func (DeleteItem) Kind() CommandKind { return CmdDeleteItem }

// Kind は包んでいるユーザー管理操作の種類を返す。
func (c UserOp) Kind() CommandKind {
	if c.Op == nil {
		return CmdListUsers
	}
	return c.Op.Kind()
}

func (GetItem) command()    {}
func (GetList) command()    {}
func (InsertItem) command() {}
func (UpdateItem) command() {}
func (DeleteItem) command() {}
func (UserOp) command()     {}

// UserCommand はユーザー管理操作の閉じた直和型。
type UserCommand interface {
	Kind() CommandKind
	userCommand()
}

// ユーザー管理操作。
type (
	GetUser    struct{ ID int64 }
	ListUsers  struct{}
	InsertUser struct{ User model.User }
	UpdateUser struct{ User model.User }
	DeleteUser struct{ ID int64 }
)

func (GetUser) Kind() CommandKind    { return CmdGetUser }
func (ListUsers) Kind() CommandKind  { return CmdListUsers }
func (InsertUser) Kind() CommandKind { return CmdInsertUser }
func (UpdateUser) Kind() CommandKind { return CmdUpdateUser }
func (DeleteUser) Kind() CommandKind { return CmdDeleteUser }

func (GetUser) userCommand()    {}
func (ListUsers) userCommand()  {}
func (InsertUser) userCommand() {}
func (UpdateUser) userCommand() {}
func (DeleteUser) userCommand() {}

// ClientMessage はコマンドルートのリクエストボディ。
// Addonはログイン時に発行されたセッショントークン。
type ClientMessage struct {
	Command Command
	Addon   string
}
