package postgres

// Queries against the kv_store table
const (
	queryGet     = `SELECT value FROM kv_store WHERE key = $1`
	queryGetMany = `SELECT key, value FROM kv_store WHERE key = ANY($1)`
	queryUpsert  = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	queryDelete     = `DELETE FROM kv_store WHERE key = $1`
	queryListPrefix = `SELECT key FROM kv_store WHERE key LIKE $1 ORDER BY key`
)

// Log messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
