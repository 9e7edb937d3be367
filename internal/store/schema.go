package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL,
    is_active   INTEGER NOT NULL DEFAULT 1,
    created_at  TEXT
);

CREATE TABLE IF NOT EXISTS assets (
    id        INTEGER PRIMARY KEY,
    ticker    TEXT NOT NULL,
    name      TEXT NOT NULL,
    exchange  TEXT,
    currency  TEXT
);

CREATE TABLE IF NOT EXISTS allocations (
    id         INTEGER PRIMARY KEY,
    client_id  INTEGER NOT NULL,
    asset_id   INTEGER NOT NULL,
    quantity   TEXT NOT NULL,
    buy_price  TEXT NOT NULL,
    buy_date   TEXT
);

CREATE TABLE IF NOT EXISTS movements (
    id         INTEGER PRIMARY KEY,
    client_id  INTEGER NOT NULL,
    type       TEXT NOT NULL,
    amount     TEXT NOT NULL,
    date       TEXT,
    note       TEXT
);

CREATE TABLE IF NOT EXISTS snapshot_meta (
    entity      TEXT PRIMARY KEY,
    fetched_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_allocations_client ON allocations(client_id);
CREATE INDEX IF NOT EXISTS idx_movements_client ON movements(client_id);
`
