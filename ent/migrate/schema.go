// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuthSessionsColumns holds the columns for the "auth_sessions" table.
	AuthSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// AuthSessionsTable holds the schema information for the "auth_sessions" table.
	AuthSessionsTable = &schema.Table{
		Name:       "auth_sessions",
		Columns:    AuthSessionsColumns,
		PrimaryKey: []*schema.Column{AuthSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authsession_token",
				Unique:  true,
				Columns: []*schema.Column{AuthSessionsColumns[1]},
			},
			{
				Name:    "authsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[2]},
			},
			{
				Name:    "authsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AuthSessionsColumns[4]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "student_name", Type: field.TypeString, Nullable: true},
		{Name: "week_number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_user_id_week_number",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[1], NotesColumns[3]},
			},
			{
				Name:    "note_student_name_week_number",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[2], NotesColumns[3]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "identifier", Type: field.TypeString},
		{Name: "week_number", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_identifier_week_number",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
		},
	}
	// QuizResponsesColumns holds the columns for the "quiz_responses" table.
	QuizResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "selected_index", Type: field.TypeInt, Nullable: true},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizResponsesTable holds the schema information for the "quiz_responses" table.
	QuizResponsesTable = &schema.Table{
		Name:       "quiz_responses",
		Columns:    QuizResponsesColumns,
		PrimaryKey: []*schema.Column{QuizResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresponse_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResponsesColumns[1]},
			},
			{
				Name:    "quizresponse_domain",
				Unique:  false,
				Columns: []*schema.Column{QuizResponsesColumns[4]},
			},
			{
				Name:    "quizresponse_is_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizResponsesColumns[8]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_type", Type: field.TypeString, Default: "anonymous"},
		{Name: "mode", Type: field.TypeString},
		{Name: "domain_focus", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeString, Nullable: true},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "answered_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "completion_rate", Type: field.TypeFloat64},
		{Name: "time_taken_minutes", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "domain_performance", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_performance", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "detailed_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_session_id",
				Unique:  true,
				Columns: []*schema.Column{QuizResultsColumns[1]},
			},
			{
				Name:    "quizresult_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[2]},
			},
			{
				Name:    "quizresult_user_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3], QuizResultsColumns[18]},
			},
		},
	}
	// TutorRequestEventsColumns holds the columns for the "tutor_request_events" table.
	TutorRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// TutorRequestEventsTable holds the schema information for the "tutor_request_events" table.
	TutorRequestEventsTable = &schema.Table{
		Name:       "tutor_request_events",
		Columns:    TutorRequestEventsColumns,
		PrimaryKey: []*schema.Column{TutorRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[1]},
			},
			{
				Name:    "tutorrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "salt", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "student"},
		{Name: "profile", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuthSessionsTable,
		NotesTable,
		ProgressRecordsTable,
		QuizResponsesTable,
		QuizResultsTable,
		TutorRequestEventsTable,
		UsersTable,
	}
)

func init() {
}
