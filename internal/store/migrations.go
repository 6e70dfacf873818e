package store

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

CREATE TABLE IF NOT EXISTS users (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	username     TEXT NOT NULL UNIQUE,
	password     TEXT NOT NULL,
	display_name TEXT,
	avatar_url   TEXT
);

CREATE TABLE IF NOT EXISTS issues (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	location         TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'pending',
	priority         TEXT NOT NULL DEFAULT 'medium',
	issue_type       TEXT NOT NULL DEFAULT 'other',
	latitude         REAL,
	longitude        REAL,
	pin_x            REAL,
	pin_y            REAL,
	is_interior_pin  INTEGER NOT NULL DEFAULT 0,
	reported_by_id   INTEGER,
	reported_by_name TEXT NOT NULL DEFAULT '',
	estimated_cost   REAL NOT NULL DEFAULT 0,
	final_cost       REAL,
	fixed_by_id      INTEGER,
	fixed_by_name    TEXT,
	fixed_at         TEXT,
	time_to_fix      INTEGER,
	image_urls       TEXT NOT NULL DEFAULT '[]',
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	issue_id   INTEGER NOT NULL REFERENCES issues(id) ON DELETE CASCADE,
	user_id    INTEGER,
	username   TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS images (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	filename   TEXT NOT NULL,
	mime_type  TEXT NOT NULL DEFAULT 'image/jpeg',
	data       TEXT NOT NULL,
	issue_id   INTEGER REFERENCES issues(id) ON DELETE CASCADE,
	metadata   TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS status_history (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	issue_id        INTEGER NOT NULL REFERENCES issues(id) ON DELETE CASCADE,
	old_status      TEXT,
	new_status      TEXT NOT NULL,
	changed_by_id   INTEGER,
	changed_by_name TEXT,
	notes           TEXT,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_issues_status ON issues(status);
CREATE INDEX IF NOT EXISTS idx_issues_issue_type ON issues(issue_type);
CREATE INDEX IF NOT EXISTS idx_issues_updated_at ON issues(updated_at);
CREATE INDEX IF NOT EXISTS idx_comments_issue_id ON comments(issue_id);
CREATE INDEX IF NOT EXISTS idx_images_issue_id ON images(issue_id);
CREATE INDEX IF NOT EXISTS idx_status_history_issue_id ON status_history(issue_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
