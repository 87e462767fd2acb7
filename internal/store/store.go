// internal/store/store.go

// Package store loads assessment inputs from PostgreSQL and persists finished
// assessments. Utilities, answers, and framework lists live in JSONB columns;
// the scalar company profile is relational.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"esg-workers/internal/common/errors"
	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/assess"
	"esg-workers/internal/esg/model"
)

const (
	companyQuery = `
		SELECT name, sector, employees, established_year
		FROM companies
		WHERE id = $1`

	locationsQuery = `
		SELECT name, total_floor_area, utilities
		FROM locations
		WHERE company_id = $1
		ORDER BY created_at, id`

	answersQuery = `
		SELECT question_id, question, answer, frameworks, category
		FROM scoping_answers
		WHERE company_id = $1`

	tasksQuery = `
		SELECT title, category, status, priority, frameworks
		FROM tasks
		WHERE company_id = $1
		ORDER BY created_at, id`

	insertAssessmentQuery = `
		INSERT INTO assessments (id, company_id, payload, is_valid, generated_at)
		VALUES ($1, $2, $3, $4, $5)`
)

// AssessmentStore reads assessment inputs and writes assessment results.
type AssessmentStore struct {
	db     *sql.DB
	logger logger.Logger
}

func New(db *sql.DB, log logger.Logger) *AssessmentStore {
	return &AssessmentStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "assessment-store"}),
	}
}

// FetchInput loads the four input collections for a company. A missing
// company is a business error; empty child collections are returned as-is
// and graded by the assessment validator downstream.
func (s *AssessmentStore) FetchInput(ctx context.Context, companyID string) (assess.Input, error) {
	var in assess.Input

	err := s.db.QueryRowContext(ctx, companyQuery, companyID).Scan(
		&in.Company.Name,
		&in.Company.Sector,
		&in.Company.Employees,
		&in.Company.EstablishedYear,
	)
	if err == sql.ErrNoRows {
		return assess.Input{}, errors.NewCompanyNotFoundError(companyID)
	}
	if err != nil {
		return assess.Input{}, errors.NewQueryExecutionFailedError("company", err)
	}

	if in.Locations, err = s.fetchLocations(ctx, companyID); err != nil {
		return assess.Input{}, err
	}
	if in.Answers, err = s.fetchAnswers(ctx, companyID); err != nil {
		return assess.Input{}, err
	}
	if in.Tasks, err = s.fetchTasks(ctx, companyID); err != nil {
		return assess.Input{}, err
	}

	s.logger.Debug("Loaded assessment input", map[string]interface{}{
		"companyId": companyID,
		"locations": len(in.Locations),
		"answers":   len(in.Answers),
		"tasks":     len(in.Tasks),
	})

	return in, nil
}

func (s *AssessmentStore) fetchLocations(ctx context.Context, companyID string) ([]model.LocationRecord, error) {
	rows, err := s.db.QueryContext(ctx, locationsQuery, companyID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("locations", err)
	}
	defer rows.Close()

	var locations []model.LocationRecord
	for rows.Next() {
		var loc model.LocationRecord
		var utilitiesJSON []byte
		if err := rows.Scan(&loc.Name, &loc.TotalFloorArea, &utilitiesJSON); err != nil {
			return nil, errors.NewQueryExecutionFailedError("locations", err)
		}
		if len(utilitiesJSON) > 0 {
			if err := json.Unmarshal(utilitiesJSON, &loc.Utilities); err != nil {
				return nil, fmt.Errorf("decode utilities for location %q: %w", loc.Name, err)
			}
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("locations", err)
	}
	return locations, nil
}

func (s *AssessmentStore) fetchAnswers(ctx context.Context, companyID string) (map[string]model.AnswerRecord, error) {
	rows, err := s.db.QueryContext(ctx, answersQuery, companyID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("scoping_answers", err)
	}
	defer rows.Close()

	answers := map[string]model.AnswerRecord{}
	for rows.Next() {
		var (
			questionID     string
			record         model.AnswerRecord
			answerJSON     []byte
			frameworksJSON []byte
		)
		if err := rows.Scan(&questionID, &record.Question, &answerJSON, &frameworksJSON, &record.Category); err != nil {
			return nil, errors.NewQueryExecutionFailedError("scoping_answers", err)
		}
		if len(answerJSON) > 0 {
			if err := json.Unmarshal(answerJSON, &record.Answer); err != nil {
				return nil, fmt.Errorf("decode answer %q: %w", questionID, err)
			}
		}
		if len(frameworksJSON) > 0 {
			if err := json.Unmarshal(frameworksJSON, &record.Frameworks); err != nil {
				return nil, fmt.Errorf("decode frameworks for answer %q: %w", questionID, err)
			}
		}
		answers[questionID] = record
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("scoping_answers", err)
	}
	if len(answers) == 0 {
		return nil, nil
	}
	return answers, nil
}

func (s *AssessmentStore) fetchTasks(ctx context.Context, companyID string) ([]model.TaskRecord, error) {
	rows, err := s.db.QueryContext(ctx, tasksQuery, companyID)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("tasks", err)
	}
	defer rows.Close()

	var tasks []model.TaskRecord
	for rows.Next() {
		var task model.TaskRecord
		var frameworksJSON []byte
		if err := rows.Scan(&task.Title, &task.Category, &task.Status, &task.Priority, &frameworksJSON); err != nil {
			return nil, errors.NewQueryExecutionFailedError("tasks", err)
		}
		if len(frameworksJSON) > 0 {
			if err := json.Unmarshal(frameworksJSON, &task.Frameworks); err != nil {
				return nil, fmt.Errorf("decode frameworks for task %q: %w", task.Title, err)
			}
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("tasks", err)
	}
	return tasks, nil
}

// SaveAssessment persists a finished assessment as a JSONB payload keyed by
// the assessment ID.
func (s *AssessmentStore) SaveAssessment(ctx context.Context, companyID string, a assess.Assessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode assessment %s: %w", a.ID, err)
	}

	_, err = s.db.ExecContext(ctx, insertAssessmentQuery,
		a.ID, companyID, payload, a.Validation.IsValid, a.GeneratedAt,
	)
	if err != nil {
		return errors.NewQueryExecutionFailedError("assessments", err)
	}

	s.logger.Info("Assessment persisted", map[string]interface{}{
		"assessmentId": a.ID,
		"companyId":    companyID,
		"isValid":      a.Validation.IsValid,
	})
	return nil
}
