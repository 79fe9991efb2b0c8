package models

import (
	"database/sql"
	"errors"
	"time"
)

const (
	SessionActive   = "active"
	SessionFinished = "finished"
)

// Session is the audit record for one game session. It is write-only from
// the game core's point of view: records are never read back to restore
// state, only listed for operators.
type Session struct {
	Token      string     `json:"token"`
	GameType   string     `json:"game_type"`
	Status     string     `json:"status"`
	Restarts   int64      `json:"restarts"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func CreateSession(db *sql.DB, token, gameType string) error {
	_, err := db.Exec(`INSERT INTO sessions(token, game_type, status) VALUES (?, ?, ?)`, token, gameType, SessionActive)
	return err
}

func FinishSession(db *sql.DB, token, status string) error {
	if status != SessionFinished {
		return errors.New("invalid session status")
	}
	_, err := db.Exec(`UPDATE sessions SET status = ?, finished_at = CURRENT_TIMESTAMP WHERE token = ?`, status, token)
	return err
}

func RecordSessionRestart(db *sql.DB, token string) error {
	_, err := db.Exec(`UPDATE sessions SET restarts = restarts + 1 WHERE token = ?`, token)
	return err
}

func GetSession(db *sql.DB, token string) (*Session, error) {
	var s Session
	var finished sql.NullTime
	err := db.QueryRow(
		`SELECT token, game_type, status, restarts, created_at, finished_at FROM sessions WHERE token = ?`,
		token,
	).Scan(&s.Token, &s.GameType, &s.Status, &s.Restarts, &s.CreatedAt, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if finished.Valid {
		v := finished.Time
		s.FinishedAt = &v
	}
	return &s, nil
}

func ListSessions(db *sql.DB, limit int) ([]Session, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.Query(
		`SELECT token, game_type, status, restarts, created_at, finished_at FROM sessions ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		var finished sql.NullTime
		if err := rows.Scan(&s.Token, &s.GameType, &s.Status, &s.Restarts, &s.CreatedAt, &finished); err != nil {
			return nil, err
		}
		if finished.Valid {
			v := finished.Time
			s.FinishedAt = &v
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
