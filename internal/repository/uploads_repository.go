package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/pkg/entity"
)

type UploadsRepository struct {
	conn PgConnection
}

func NewUploadsRepo(conn PgConnection) *UploadsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for uploadsRepo: " + err.Error())
	}
	return &UploadsRepository{
		conn: conn,
	}
}

func (ur *UploadsRepository) Create(ctx context.Context, upload *entity.UploadRecord) error {
	if upload == nil {
		return errors.New("upload is nil")
	}
	_, err := ur.conn.Exec(
		ctx,
		`INSERT INTO uploads (id, user_id, display_name, media_ref, upload_date) VALUES ($1, $2, $3, $4, $5);`,
		upload.ID,
		upload.UserID,
		upload.DisplayName,
		upload.MediaRef,
		upload.UploadDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// Unique violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUploadExists
		}
		return errors.New("creating upload error: " + err.Error())
	}
	return nil
}

func (ur *UploadsRepository) ListDistinctDays(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := ur.conn.Query(
		ctx,
		`SELECT DISTINCT upload_date FROM uploads WHERE user_id = $1 ORDER BY upload_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("listing upload days error: " + err.Error())
	}
	defer rows.Close()
	days := make([]time.Time, 0, 16)
	for rows.Next() {
		var day time.Time
		if err = rows.Scan(&day); err != nil {
			return nil, errors.New("upload day row parsing error: " + err.Error())
		}
		days = append(days, day)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected upload days rows error: " + err.Error())
	}
	return days, nil
}

func (ur *UploadsRepository) Count(ctx context.Context, userID string) (int, error) {
	row := ur.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM uploads WHERE user_id = $1;`,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting uploads: " + err.Error())
	}
	return count, nil
}

func (ur *UploadsRepository) RecentDailyCounts(ctx context.Context, userID string, limit int) ([]entity.DailyCount, error) {
	rows, err := ur.conn.Query(
		ctx,
		`SELECT upload_date, COUNT(*) FROM uploads WHERE user_id = $1 GROUP BY upload_date ORDER BY upload_date DESC LIMIT $2;`,
		userID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent upload counts error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyCount, 0, limit)
	for rows.Next() {
		var dc entity.DailyCount
		if err = rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, errors.New("daily count row parsing error: " + err.Error())
		}
		result = append(result, dc)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected daily count rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UploadsRepository) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	var exists bool
	row := ur.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM uploads WHERE user_id = $1 AND upload_date = $2);`,
		userID,
		day,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if upload exists error: " + err.Error())
	}
	return exists, nil
}
