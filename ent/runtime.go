// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fartec0/aigp-codex/ent/authsession"
	"github.com/fartec0/aigp-codex/ent/note"
	"github.com/fartec0/aigp-codex/ent/progressrecord"
	"github.com/fartec0/aigp-codex/ent/quizresponse"
	"github.com/fartec0/aigp-codex/ent/quizresult"
	"github.com/fartec0/aigp-codex/ent/schema"
	"github.com/fartec0/aigp-codex/ent/tutorrequestevent"
	"github.com/fartec0/aigp-codex/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	authsessionFields := schema.AuthSession{}.Fields()
	_ = authsessionFields
	// authsessionDescToken is the schema descriptor for token field.
	authsessionDescToken := authsessionFields[0].Descriptor()
	// authsession.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	authsession.TokenValidator = authsessionDescToken.Validators[0].(func(string) error)
	// authsessionDescCreatedAt is the schema descriptor for created_at field.
	authsessionDescCreatedAt := authsessionFields[2].Descriptor()
	// authsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	authsession.DefaultCreatedAt = authsessionDescCreatedAt.Default.(func() time.Time)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescWeekNumber is the schema descriptor for week_number field.
	noteDescWeekNumber := noteFields[2].Descriptor()
	// note.WeekNumberValidator is a validator for the "week_number" field. It is called by the builders before save.
	note.WeekNumberValidator = func() func(int) error {
		validators := noteDescWeekNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(week_number int) error {
			for _, fn := range fns {
				if err := fn(week_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// noteDescTitle is the schema descriptor for title field.
	noteDescTitle := noteFields[3].Descriptor()
	// note.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	note.TitleValidator = noteDescTitle.Validators[0].(func(string) error)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[5].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	// noteDescUpdatedAt is the schema descriptor for updated_at field.
	noteDescUpdatedAt := noteFields[6].Descriptor()
	// note.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	note.DefaultUpdatedAt = noteDescUpdatedAt.Default.(func() time.Time)
	// note.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	note.UpdateDefaultUpdatedAt = noteDescUpdatedAt.UpdateDefault.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescIdentifier is the schema descriptor for identifier field.
	progressrecordDescIdentifier := progressrecordFields[0].Descriptor()
	// progressrecord.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	progressrecord.IdentifierValidator = progressrecordDescIdentifier.Validators[0].(func(string) error)
	// progressrecordDescWeekNumber is the schema descriptor for week_number field.
	progressrecordDescWeekNumber := progressrecordFields[1].Descriptor()
	// progressrecord.WeekNumberValidator is a validator for the "week_number" field. It is called by the builders before save.
	progressrecord.WeekNumberValidator = func() func(int) error {
		validators := progressrecordDescWeekNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(week_number int) error {
			for _, fn := range fns {
				if err := fn(week_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// progressrecordDescCompletedAt is the schema descriptor for completed_at field.
	progressrecordDescCompletedAt := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultCompletedAt holds the default value on creation for the completed_at field.
	progressrecord.DefaultCompletedAt = progressrecordDescCompletedAt.Default.(func() time.Time)
	quizresponseFields := schema.QuizResponse{}.Fields()
	_ = quizresponseFields
	// quizresponseDescSessionID is the schema descriptor for session_id field.
	quizresponseDescSessionID := quizresponseFields[0].Descriptor()
	// quizresponse.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresponse.SessionIDValidator = quizresponseDescSessionID.Validators[0].(func(string) error)
	// quizresponseDescQuestionID is the schema descriptor for question_id field.
	quizresponseDescQuestionID := quizresponseFields[2].Descriptor()
	// quizresponse.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	quizresponse.QuestionIDValidator = quizresponseDescQuestionID.Validators[0].(func(string) error)
	// quizresponseDescDomain is the schema descriptor for domain field.
	quizresponseDescDomain := quizresponseFields[3].Descriptor()
	// quizresponse.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	quizresponse.DomainValidator = quizresponseDescDomain.Validators[0].(func(string) error)
	// quizresponseDescDifficulty is the schema descriptor for difficulty field.
	quizresponseDescDifficulty := quizresponseFields[4].Descriptor()
	// quizresponse.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizresponse.DifficultyValidator = quizresponseDescDifficulty.Validators[0].(func(string) error)
	// quizresponseDescCreatedAt is the schema descriptor for created_at field.
	quizresponseDescCreatedAt := quizresponseFields[8].Descriptor()
	// quizresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizresponse.DefaultCreatedAt = quizresponseDescCreatedAt.Default.(func() time.Time)
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescSessionID is the schema descriptor for session_id field.
	quizresultDescSessionID := quizresultFields[0].Descriptor()
	// quizresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresult.SessionIDValidator = quizresultDescSessionID.Validators[0].(func(string) error)
	// quizresultDescUserType is the schema descriptor for user_type field.
	quizresultDescUserType := quizresultFields[2].Descriptor()
	// quizresult.DefaultUserType holds the default value on creation for the user_type field.
	quizresult.DefaultUserType = quizresultDescUserType.Default.(string)
	// quizresultDescMode is the schema descriptor for mode field.
	quizresultDescMode := quizresultFields[3].Descriptor()
	// quizresult.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	quizresult.ModeValidator = quizresultDescMode.Validators[0].(func(string) error)
	// quizresultDescCreatedAt is the schema descriptor for created_at field.
	quizresultDescCreatedAt := quizresultFields[17].Descriptor()
	// quizresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizresult.DefaultCreatedAt = quizresultDescCreatedAt.Default.(func() time.Time)
	tutorrequesteventFields := schema.TutorRequestEvent{}.Fields()
	_ = tutorrequesteventFields
	// tutorrequesteventDescTimestamp is the schema descriptor for timestamp field.
	tutorrequesteventDescTimestamp := tutorrequesteventFields[0].Descriptor()
	// tutorrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutorrequestevent.DefaultTimestamp = tutorrequesteventDescTimestamp.Default.(func() time.Time)
	// tutorrequesteventDescProvider is the schema descriptor for provider field.
	tutorrequesteventDescProvider := tutorrequesteventFields[1].Descriptor()
	// tutorrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	tutorrequestevent.ProviderValidator = tutorrequesteventDescProvider.Validators[0].(func(string) error)
	// tutorrequesteventDescModel is the schema descriptor for model field.
	tutorrequesteventDescModel := tutorrequesteventFields[2].Descriptor()
	// tutorrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	tutorrequestevent.ModelValidator = tutorrequesteventDescModel.Validators[0].(func(string) error)
	// tutorrequesteventDescPurpose is the schema descriptor for purpose field.
	tutorrequesteventDescPurpose := tutorrequesteventFields[3].Descriptor()
	// tutorrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	tutorrequestevent.DefaultPurpose = tutorrequesteventDescPurpose.Default.(string)
	// tutorrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	tutorrequesteventDescInputTokens := tutorrequesteventFields[4].Descriptor()
	// tutorrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	tutorrequestevent.DefaultInputTokens = tutorrequesteventDescInputTokens.Default.(int)
	// tutorrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	tutorrequesteventDescOutputTokens := tutorrequesteventFields[5].Descriptor()
	// tutorrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	tutorrequestevent.DefaultOutputTokens = tutorrequesteventDescOutputTokens.Default.(int)
	// tutorrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	tutorrequesteventDescLatencyMs := tutorrequesteventFields[6].Descriptor()
	// tutorrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	tutorrequestevent.DefaultLatencyMs = tutorrequesteventDescLatencyMs.Default.(int64)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescSalt is the schema descriptor for salt field.
	userDescSalt := userFields[2].Descriptor()
	// user.SaltValidator is a validator for the "salt" field. It is called by the builders before save.
	user.SaltValidator = userDescSalt.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
}
