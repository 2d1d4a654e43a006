package store

// migration is a single versioned schema change.
type migration struct {
	version int
	sql     string
}

// migrations are applied in order; each entry records its own version row.
var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);

			CREATE TABLE IF NOT EXISTS collections (
				name TEXT PRIMARY KEY,
				data BLOB NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			INSERT INTO schema_version (version) VALUES (1);
		`,
	},
}
