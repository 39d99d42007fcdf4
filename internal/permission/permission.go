// Package permission はロールの権限ビットによるコマンドの認可を提供する。
package permission

import (
	"github.com/hitoshi/rpelgate/internal/message"
	"github.com/hitoshi/rpelgate/internal/model"
)

// positions はコマンド種類ごとのビット位置。
var positions = map[message.CommandKind]uint{
	message.CmdGetItem:    1,
	message.CmdGetList:    2,
	message.CmdInsertItem: 3,
	message.CmdUpdateItem: 4,
	message.CmdDeleteItem: 5,
	message.CmdGetUser:    6,
	message.CmdListUsers:  6,
	message.CmdInsertUser: 7,
	message.CmdUpdateUser: 8,
	message.CmdDeleteUser: 9,
}

// Position はコマンド種類に対応するビット位置を返す。
func Position(kind message.CommandKind) (uint, bool) {
	p, ok := positions[kind]
	return p, ok
}

// Allowed はroleがkindを実行できるかを返す。
//
// 判定は role >> position > 0 であり、position番目のビットそのものではなく
// position以上のいずれかのビットが立っていれば許可される。負のロールは常に拒否。
func Allowed(role int64, kind message.CommandKind) bool {
	p, ok := positions[kind]
	if !ok {
		return false
	}
	return role>>p > 0
}

// Check はroleがcmdを実行できればcmdをそのまま返し、できなければNotPermissionを返す。
func Check(role int64, cmd message.Command) (message.Command, error) {
	if cmd == nil || !Allowed(role, cmd.Kind()) {
		return nil, model.NewNotPermissionError()
	}
	return cmd, nil
}
