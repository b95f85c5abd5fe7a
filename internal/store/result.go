package store

import (
	"context"
	"fmt"

	"github.com/fartec0/aigp-codex/ent"
	"github.com/fartec0/aigp-codex/ent/quizresult"
	entschema "github.com/fartec0/aigp-codex/ent/schema"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, res *Result) (*Result, error) {
	builder := r.client.QuizResult.Create().
		SetSessionID(res.SessionID).
		SetUserType(res.UserType).
		SetMode(res.Mode).
		SetTotalQuestions(res.TotalQuestions).
		SetAnsweredQuestions(res.AnsweredQuestions).
		SetCorrectAnswers(res.CorrectAnswers).
		SetScore(res.Score).
		SetCompletionRate(res.CompletionRate).
		SetTimeTakenMinutes(res.TimeTakenMinutes).
		SetPassed(res.Passed).
		SetDomainPerformance(performanceToCells(res.DomainPerformance)).
		SetDifficultyPerformance(performanceToCells(res.DifficultyPerformance)).
		SetRecommendations(res.Recommendations).
		SetDetailedAnswers(answersToDetails(res.DetailedAnswers))

	if res.UserID != nil {
		builder = builder.SetUserID(*res.UserID)
	}
	if res.DomainFocus != "" {
		builder = builder.SetDomainFocus(res.DomainFocus)
	}
	if res.DifficultyLevel != "" {
		builder = builder.SetDifficultyLevel(res.DifficultyLevel)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	// One response row per question, for drill-down queries.
	bulk := make([]*ent.QuizResponseCreate, len(res.DetailedAnswers))
	for i, a := range res.DetailedAnswers {
		rc := r.client.QuizResponse.Create().
			SetSessionID(res.SessionID).
			SetQuestionIndex(i).
			SetQuestionID(a.QuestionID).
			SetDomain(a.Domain).
			SetDifficulty(a.Difficulty).
			SetCorrectIndex(a.CorrectIndex).
			SetIsCorrect(a.IsCorrect)
		if a.SelectedIndex != nil {
			rc = rc.SetSelectedIndex(*a.SelectedIndex)
		}
		bulk[i] = rc
	}
	if len(bulk) > 0 {
		if err := r.client.QuizResponse.CreateBulk(bulk...).Exec(ctx); err != nil {
			return nil, fmt.Errorf("save quiz responses: %w", err)
		}
	}

	return entResultToResult(row), nil
}

func (r *resultRepo) BySession(ctx context.Context, sessionID string) (*Result, error) {
	row, err := r.client.QuizResult.Query().
		Where(quizresult.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query result by session: %w", err)
	}
	return entResultToResult(row), nil
}

func (r *resultRepo) RecentByUser(ctx context.Context, userID, limit int) ([]*Result, error) {
	q := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Order(ent.Desc(quizresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results by user: %w", err)
	}
	return entResultsToResults(rows), nil
}

func (r *resultRepo) RecentAnonymous(ctx context.Context, limit int) ([]*Result, error) {
	q := r.client.QuizResult.Query().
		Where(quizresult.UserType("anonymous")).
		Order(ent.Desc(quizresult.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query anonymous results: %w", err)
	}
	return entResultsToResults(rows), nil
}

func performanceToCells(perf map[string]Performance) map[string]entschema.PerformanceCell {
	out := make(map[string]entschema.PerformanceCell, len(perf))
	for k, v := range perf {
		out[k] = entschema.PerformanceCell{
			Correct: v.Correct,
			Total:   v.Total,
			Percent: v.Percent,
		}
	}
	return out
}

func cellsToPerformance(cells map[string]entschema.PerformanceCell) map[string]Performance {
	out := make(map[string]Performance, len(cells))
	for k, v := range cells {
		out[k] = Performance{
			Correct: v.Correct,
			Total:   v.Total,
			Percent: v.Percent,
		}
	}
	return out
}

func answersToDetails(answers []ResultAnswer) []entschema.AnswerDetail {
	out := make([]entschema.AnswerDetail, len(answers))
	for i, a := range answers {
		out[i] = entschema.AnswerDetail{
			QuestionID:    a.QuestionID,
			Domain:        a.Domain,
			Difficulty:    a.Difficulty,
			SelectedIndex: a.SelectedIndex,
			CorrectIndex:  a.CorrectIndex,
			IsCorrect:     a.IsCorrect,
			Explanation:   a.Explanation,
			LegalRef:      a.LegalRef,
		}
	}
	return out
}

func detailsToAnswers(details []entschema.AnswerDetail) []ResultAnswer {
	out := make([]ResultAnswer, len(details))
	for i, d := range details {
		out[i] = ResultAnswer{
			QuestionID:    d.QuestionID,
			Domain:        d.Domain,
			Difficulty:    d.Difficulty,
			SelectedIndex: d.SelectedIndex,
			CorrectIndex:  d.CorrectIndex,
			IsCorrect:     d.IsCorrect,
			Explanation:   d.Explanation,
			LegalRef:      d.LegalRef,
		}
	}
	return out
}

func entResultToResult(row *ent.QuizResult) *Result {
	return &Result{
		ID:                    row.ID,
		SessionID:             row.SessionID,
		UserID:                row.UserID,
		UserType:              row.UserType,
		Mode:                  row.Mode,
		DomainFocus:           row.DomainFocus,
		DifficultyLevel:       row.DifficultyLevel,
		TotalQuestions:        row.TotalQuestions,
		AnsweredQuestions:     row.AnsweredQuestions,
		CorrectAnswers:        row.CorrectAnswers,
		Score:                 row.Score,
		CompletionRate:        row.CompletionRate,
		TimeTakenMinutes:      row.TimeTakenMinutes,
		Passed:                row.Passed,
		DomainPerformance:     cellsToPerformance(row.DomainPerformance),
		DifficultyPerformance: cellsToPerformance(row.DifficultyPerformance),
		Recommendations:       row.Recommendations,
		DetailedAnswers:       detailsToAnswers(row.DetailedAnswers),
		CreatedAt:             row.CreatedAt,
	}
}

func entResultsToResults(rows []*ent.QuizResult) []*Result {
	out := make([]*Result, len(rows))
	for i, row := range rows {
		out[i] = entResultToResult(row)
	}
	return out
}
