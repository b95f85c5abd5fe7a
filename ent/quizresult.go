// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fartec0/aigp-codex/ent/quizresult"
	"github.com/fartec0/aigp-codex/ent/schema"
)

// QuizResult is the model entity for the QuizResult schema.
type QuizResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Matches the originating quiz session
	SessionID string `json:"session_id,omitempty"`
	// Nil for anonymous results
	UserID *int `json:"user_id,omitempty"`
	// authenticated or anonymous
	UserType string `json:"user_type,omitempty"`
	// quick_practice, domain_focus, or exam_simulation
	Mode string `json:"mode,omitempty"`
	// DomainFocus holds the value of the "domain_focus" field.
	DomainFocus string `json:"domain_focus,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// AnsweredQuestions holds the value of the "answered_questions" field.
	AnsweredQuestions int `json:"answered_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// correct/total*100
	Score float64 `json:"score,omitempty"`
	// answered/total*100
	CompletionRate float64 `json:"completion_rate,omitempty"`
	// Wall clock from session start to finalize
	TimeTakenMinutes float64 `json:"time_taken_minutes,omitempty"`
	// score >= 70.0
	Passed bool `json:"passed,omitempty"`
	// DomainPerformance holds the value of the "domain_performance" field.
	DomainPerformance map[string]schema.PerformanceCell `json:"domain_performance,omitempty"`
	// DifficultyPerformance holds the value of the "difficulty_performance" field.
	DifficultyPerformance map[string]schema.PerformanceCell `json:"difficulty_performance,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// DetailedAnswers holds the value of the "detailed_answers" field.
	DetailedAnswers []schema.AnswerDetail `json:"detailed_answers,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldDomainPerformance, quizresult.FieldDifficultyPerformance, quizresult.FieldRecommendations, quizresult.FieldDetailedAnswers:
			values[i] = new([]byte)
		case quizresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case quizresult.FieldScore, quizresult.FieldCompletionRate, quizresult.FieldTimeTakenMinutes:
			values[i] = new(sql.NullFloat64)
		case quizresult.FieldID, quizresult.FieldUserID, quizresult.FieldTotalQuestions, quizresult.FieldAnsweredQuestions, quizresult.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case quizresult.FieldSessionID, quizresult.FieldUserType, quizresult.FieldMode, quizresult.FieldDomainFocus, quizresult.FieldDifficultyLevel:
			values[i] = new(sql.NullString)
		case quizresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResult fields.
func (_m *QuizResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizresult.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(int)
				*_m.UserID = int(value.Int64)
			}
		case quizresult.FieldUserType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_type", values[i])
			} else if value.Valid {
				_m.UserType = value.String
			}
		case quizresult.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case quizresult.FieldDomainFocus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_focus", values[i])
			} else if value.Valid {
				_m.DomainFocus = value.String
			}
		case quizresult.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = value.String
			}
		case quizresult.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case quizresult.FieldAnsweredQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered_questions", values[i])
			} else if value.Valid {
				_m.AnsweredQuestions = int(value.Int64)
			}
		case quizresult.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case quizresult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case quizresult.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = value.Float64
			}
		case quizresult.FieldTimeTakenMinutes:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_minutes", values[i])
			} else if value.Valid {
				_m.TimeTakenMinutes = value.Float64
			}
		case quizresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case quizresult.FieldDomainPerformance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_performance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainPerformance); err != nil {
					return fmt.Errorf("unmarshal field domain_performance: %w", err)
				}
			}
		case quizresult.FieldDifficultyPerformance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_performance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DifficultyPerformance); err != nil {
					return fmt.Errorf("unmarshal field difficulty_performance: %w", err)
				}
			}
		case quizresult.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case quizresult.FieldDetailedAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetailedAnswers); err != nil {
					return fmt.Errorf("unmarshal field detailed_answers: %w", err)
				}
			}
		case quizresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResult.
// This includes values selected through modifiers, order, etc.
func (_m *QuizResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResult.
// Note that you need to call QuizResult.Unwrap() before calling this method if this QuizResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizResult) Update() *QuizResultUpdateOne {
	return NewQuizResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizResult) Unwrap() *QuizResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizResult) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("user_type=")
	builder.WriteString(_m.UserType)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("domain_focus=")
	builder.WriteString(_m.DomainFocus)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(_m.DifficultyLevel)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("answered_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnsweredQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	builder.WriteString("time_taken_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTakenMinutes))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("domain_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainPerformance))
	builder.WriteString(", ")
	builder.WriteString("difficulty_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyPerformance))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("detailed_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetailedAnswers))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResults is a parsable slice of QuizResult.
type QuizResults []*QuizResult
