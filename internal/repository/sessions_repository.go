package repository

import (
	"context"
	"errors"
	"log"
	"time"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(conn PgConnection) *SessionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) MarkComplete(ctx context.Context, userID string, day time.Time) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO completed_sessions (user_id, session_date) VALUES ($1, $2) ON CONFLICT (user_id, session_date) DO NOTHING;`,
		userID,
		day,
	)
	if err != nil {
		return errors.New("marking session complete error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) IsComplete(ctx context.Context, userID string, day time.Time) (bool, error) {
	var complete bool
	row := sr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM completed_sessions WHERE user_id = $1 AND session_date = $2);`,
		userID,
		day,
	)
	if err := row.Scan(&complete); err != nil {
		return false, errors.New("inspecting if session complete error: " + err.Error())
	}
	return complete, nil
}
