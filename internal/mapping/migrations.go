package mapping

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mappings (
	id         TEXT PRIMARY KEY,
	account_id TEXT NOT NULL UNIQUE,
	mapping    TEXT NOT NULL DEFAULT '{}',
	version    INTEGER NOT NULL DEFAULT 1,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_mappings_account_id ON mappings(account_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
