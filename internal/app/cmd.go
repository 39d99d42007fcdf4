package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandServe はゲートウェイサーバーモードで起動することを示す。
	CommandServe Command = "serve"
	// CommandMigrate はデータベースマイグレーションを実行することを示す。
	CommandMigrate Command = "migrate"
	// CommandHealthcheck はヘルスチェックを実行することを示す。
	// distroless環境でのDockerヘルスチェック用。
	CommandHealthcheck Command = "healthcheck"
)

// MigrateDirection はマイグレーションの方向。
type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandServeを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandServe
	}

	switch args[0] {
	case "serve":
		return CommandServe
	case "migrate":
		return CommandMigrate
	case "healthcheck":
		return CommandHealthcheck
	default:
		return CommandServe
	}
}

// ParseMigrateDirection はmigrateサブコマンドの引数から方向を解析する。
// 方向の指定がない場合はMigrateUp。不明な方向はokがfalseになる。
func ParseMigrateDirection(args []string) (MigrateDirection, bool) {
	if len(args) < 2 {
		return MigrateUp, true
	}
	switch MigrateDirection(args[1]) {
	case MigrateUp:
		return MigrateUp, true
	case MigrateDown:
		return MigrateDown, true
	default:
		return "", false
	}
}
