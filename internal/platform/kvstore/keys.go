package kvstore

// --- SQLite Keys ---
// 这些键用于 'entries' 表的 'key' 列。
const (
	// LibraryKey 存放整个游戏库的JSON数组。
	// 每次对库的修改都会把完整数组重写进这个键。
	LibraryKey = "gamevault_data"

	// SettingsKey 存放用户可修改的运行时设置（API密钥、代理地址等）。
	SettingsKey = "gamevault_settings"

	// BackupKey 存放游戏库的最近一次定时备份快照。
	BackupKey = "gamevault_backup"

	// BackupTimeKey 存放最近一次备份的时间戳。
	BackupTimeKey = "gamevault_backup_time"
)
