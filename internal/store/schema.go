package store

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    locked INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS cards (
    hash TEXT PRIMARY KEY,
    deck_id INTEGER NOT NULL REFERENCES decks(id),
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    level INTEGER DEFAULT 0,
    streak INTEGER DEFAULT 0,
    mastered INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS attempts (
    card_hash TEXT NOT NULL,
    reaction_time REAL NOT NULL,
    success INTEGER NOT NULL,
    timestamp TEXT NOT NULL
);
`
