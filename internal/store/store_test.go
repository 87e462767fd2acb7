// internal/store/store_test.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "esg-workers/internal/common/errors"
	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/assess"
	"esg-workers/internal/esg/model"
)

// ==========================
// Test Helper Functions
// ==========================

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

func newTestStore(db *sql.DB, t *testing.T) *AssessmentStore {
	return New(db, logger.NewTestLogger(t))
}

func expectCompanyRow(mock sqlmock.Sqlmock, companyID string) {
	rows := sqlmock.NewRows([]string{"name", "sector", "employees", "established_year"}).
		AddRow("Desert Rose Hotels", "hospitality", 40, 2015)
	mock.ExpectQuery("SELECT name, sector, employees, established_year").
		WithArgs(companyID).
		WillReturnRows(rows)
}

// ==========================
// FetchInput
// ==========================

func TestFetchInput_FullCompany(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	companyID := "company-123"
	expectCompanyRow(mock, companyID)

	utilities, _ := json.Marshal(map[string]interface{}{
		"electricity": map[string]interface{}{"monthlyConsumption": 15000.0, "provider": "DEWA"},
		"water":       map[string]interface{}{"monthlyConsumption": 50.0},
	})
	mock.ExpectQuery("SELECT name, total_floor_area, utilities").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_floor_area", "utilities"}).
			AddRow("Main Hotel", 800.0, utilities))

	frameworks, _ := json.Marshal([]string{"DST"})
	mock.ExpectQuery("SELECT question_id, question, answer, frameworks, category").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question", "answer", "frameworks", "category"}).
			AddRow("q1", "Do you track energy?", []byte("true"), frameworks, "environmental").
			AddRow("q2", "Hiring policy?", []byte(`"local-first"`), frameworks, "social").
			AddRow("q3", "Unanswered", []byte("null"), frameworks, "governance"))

	mock.ExpectQuery("SELECT title, category, status, priority, frameworks").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "category", "status", "priority", "frameworks"}).
			AddRow("Install sub-meters", "energy", "completed", "high", frameworks))

	in, err := newTestStore(db, t).FetchInput(context.Background(), companyID)
	require.NoError(t, err)

	assert.Equal(t, "Desert Rose Hotels", in.Company.Name)
	assert.Equal(t, model.SectorHospitality, in.Company.Sector)
	assert.Equal(t, 40, in.Company.Employees)

	require.Len(t, in.Locations, 1)
	assert.Equal(t, 800.0, in.Locations[0].TotalFloorArea)
	assert.Equal(t, 15000.0, in.Locations[0].Utilities[model.UtilityElectricity].MonthlyConsumption)
	assert.Equal(t, "DEWA", in.Locations[0].Utilities[model.UtilityElectricity].Provider)

	require.Len(t, in.Answers, 3)
	assert.True(t, in.Answers["q1"].Answer.Bool())
	assert.Equal(t, "local-first", in.Answers["q2"].Answer.Text())
	assert.False(t, in.Answers["q3"].Answer.Answered())
	assert.Equal(t, []string{"DST"}, in.Answers["q1"].Frameworks)

	require.Len(t, in.Tasks, 1)
	assert.Equal(t, model.StatusCompleted, in.Tasks[0].Status)
	assert.Equal(t, model.PriorityHigh, in.Tasks[0].Priority)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchInput_CompanyNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, sector, employees, established_year").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := newTestStore(db, t).FetchInput(context.Background(), "missing")
	require.Error(t, err)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeCompanyNotFound, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestFetchInput_EmptyChildCollections(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	companyID := "company-bare"
	expectCompanyRow(mock, companyID)

	mock.ExpectQuery("SELECT name, total_floor_area, utilities").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_floor_area", "utilities"}))
	mock.ExpectQuery("SELECT question_id, question, answer, frameworks, category").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "question", "answer", "frameworks", "category"}))
	mock.ExpectQuery("SELECT title, category, status, priority, frameworks").
		WithArgs(companyID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "category", "status", "priority", "frameworks"}))

	in, err := newTestStore(db, t).FetchInput(context.Background(), companyID)
	require.NoError(t, err)

	assert.Empty(t, in.Locations)
	assert.Nil(t, in.Answers)
	assert.Empty(t, in.Tasks)
}

func TestFetchInput_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	companyID := "company-err"
	expectCompanyRow(mock, companyID)
	mock.ExpectQuery("SELECT name, total_floor_area, utilities").
		WithArgs(companyID).
		WillReturnError(sql.ErrConnDone)

	_, err := newTestStore(db, t).FetchInput(context.Background(), companyID)
	require.Error(t, err)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeQueryExecutionFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

// ==========================
// SaveAssessment
// ==========================

func TestSaveAssessment(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	assessor, err := assess.New(assess.Config{})
	require.NoError(t, err)
	a := assessor.Run(assess.Input{
		Company: model.CompanyProfile{Name: "Acme", Sector: model.SectorHospitality},
	})

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs(a.ID, "company-123", sqlmock.AnyArg(), a.Validation.IsValid, a.GeneratedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = newTestStore(db, t).SaveAssessment(context.Background(), "company-123", a)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAssessment_InsertError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	a := assess.Assessment{ID: "a-1", GeneratedAt: time.Now().UTC()}
	mock.ExpectExec("INSERT INTO assessments").
		WillReturnError(sql.ErrConnDone)

	err := newTestStore(db, t).SaveAssessment(context.Background(), "company-123", a)
	require.Error(t, err)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeQueryExecutionFailed, stdErr.Code)
}
