package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/internal/repository"
	"github.com/limbo/sketchstreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = "tg_100500"
	today  = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
)

func TestCreateUpload(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUploadsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO uploads (id, user_id, display_name, media_ref, upload_date) VALUES ($1, $2, $3, $4, $5);`)
	upload := entity.UploadRecord{
		ID:          uuid.New(),
		UserID:      userID,
		DisplayName: "Anna",
		MediaRef:    "photos/abc.jpg",
		UploadDate:  today,
	}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(upload.ID, upload.UserID, upload.DisplayName, upload.MediaRef, upload.UploadDate).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUploadExists,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(upload.ID, upload.UserID, upload.DisplayName, upload.MediaRef, upload.UploadDate).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating upload error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).
					WithArgs(upload.ID, upload.UserID, upload.DisplayName, upload.MediaRef, upload.UploadDate).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Create(ctx, &upload)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	t.Run("nil upload", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDistinctDays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUploadsRepo(mock)
	query := regexp.QuoteMeta(`SELECT DISTINCT upload_date FROM uploads WHERE user_id = $1 ORDER BY upload_date DESC;`)
	days := []time.Time{today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -3)}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []time.Time
		MockPrepFunc func()
	}{
		{
			Desc:   "success",
			Result: days,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"upload_date"})
				for _, d := range days {
					rows.AddRow(d)
				}
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
		},
		{
			Desc:   "no uploads",
			Result: []time.Time{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"upload_date"}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("listing upload days error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.ListDistinctDays(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}

func TestCountUploads(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUploadsRepo(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM uploads WHERE user_id = $1;`)
	testCases := []struct {
		Desc         string
		Error        error
		CountResult  int
		MockPrepFunc func()
	}{
		{
			Desc:        "successful",
			CountResult: 7,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error counting uploads: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			count, err := repo.Count(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.CountResult, count)
			}
		})
	}
}

func TestRecentDailyCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUploadsRepo(mock)
	query := regexp.QuoteMeta(`SELECT upload_date, COUNT(*) FROM uploads WHERE user_id = $1 GROUP BY upload_date ORDER BY upload_date DESC LIMIT $2;`)
	counts := []entity.DailyCount{
		{Date: today, Count: 2},
		{Date: today.AddDate(0, 0, -2), Count: 1},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []entity.DailyCount
		MockPrepFunc func()
	}{
		{
			Desc:   "success",
			Result: counts,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"upload_date", "count"})
				for _, c := range counts {
					rows.AddRow(c.Date, c.Count)
				}
				mock.ExpectQuery(query).WithArgs(userID, 30).WillReturnRows(rows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting recent upload counts error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, 30).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.RecentDailyCounts(ctx, userID, 30)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}

func TestExistsOnDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUploadsRepo(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM uploads WHERE user_id = $1 AND upload_date = $2);`)
	testCases := []struct {
		Desc          string
		Error         error
		IsExistResult bool
		MockPrepFunc  func()
	}{
		{
			Desc:          "successful: exists",
			IsExistResult: true,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, today).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			Desc:          "successful: doesn't exist",
			IsExistResult: false,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, today).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("inspecting if upload exists error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, today).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			exists, err := repo.ExistsOnDay(ctx, userID, today)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.IsExistResult, exists)
			}
		})
	}
}
