package flow

import (
	"testing"

	"lexdraft/internal/model"
	"lexdraft/internal/questionset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) model.AnswerValue {
	return model.AnswerValue{Text: s}
}

// answerBatch fills the current batch with placeholder answers
func answerBatch(e *Engine, st *model.FlowState) {
	for _, q := range e.CurrentBatch(st) {
		e.SetAnswer(st, q.ID, text("answer for "+q.ID))
	}
}

func TestSelectCategoryResetsAnswers(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")

	e.SelectCategory(st, "employment")
	e.SetAnswer(st, "company-name", text("Acme Corp"))
	require.NotEmpty(t, st.Answers)

	e.SelectCategory(st, "nda")
	assert.Empty(t, st.Answers, "answers must never leak across categories")
	assert.Equal(t, 0, st.Cursor)
	assert.Equal(t, model.FlowInProgress, st.Status)
}

func TestUnknownCategoryResolvesToDefaultSet(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")

	e.SelectCategory(st, "no-such-contract")
	set := e.ActiveSet(st)
	assert.Equal(t, questionset.DefaultCategory, set.Category)
	assert.NotZero(t, set.Len())
}

func TestSetAnswerIgnoresForeignQuestionID(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "nda")

	e.SetAnswer(st, "not-a-question", text("whatever"))
	assert.Empty(t, st.Answers)
}

func TestAdvanceBlocksOnMissingRequired(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "nda")

	// Answer two of the three questions in the first batch
	batch := e.CurrentBatch(st)
	require.Len(t, batch, 3)
	e.SetAnswer(st, batch[0].ID, text("Acme Corp"))
	e.SetAnswer(st, batch[1].ID, text("XYZ Inc"))

	_, err := e.Advance(st)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{batch[2].ID}, vErr.MissingIDs)
	assert.Equal(t, 0, st.Cursor, "cursor must not move on validation failure")
}

func TestWhitespaceOnlyAnswerCountsAsBlank(t *testing.T) {
	e := NewEngine(Config{BatchSize: 1})
	st := e.NewState("f1")
	e.SelectCategory(st, "nda")

	e.SetAnswer(st, e.CurrentBatch(st)[0].ID, text("   "))
	_, err := e.Advance(st)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAdvanceNeverMovesCursorPastSetLength(t *testing.T) {
	for _, category := range []string{"nda", "employment", "consulting", "saas", "service", "partnership", "custom"} {
		for _, batchSize := range []int{1, 3} {
			e := NewEngine(Config{BatchSize: batchSize})
			st := e.NewState("f1")
			e.SelectCategory(st, category)
			setLen := e.ActiveSet(st).Len()

			for i := 0; i < setLen+2; i++ {
				answerBatch(e, st)
				_, err := e.Advance(st)
				require.NoError(t, err, "category %s batch %d", category, batchSize)
				assert.LessOrEqual(t, st.Cursor, setLen)
			}
			assert.Equal(t, model.FlowReview, st.Status)
		}
	}
}

func TestFullFlowReachesReviewAndSubmit(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "consulting") // 6 questions, two batches

	answerBatch(e, st)
	answers, err := e.Advance(st)
	require.NoError(t, err)
	assert.Nil(t, answers)
	assert.Equal(t, 3, st.Cursor)

	answerBatch(e, st)
	answers, err = e.Advance(st)
	require.NoError(t, err)
	assert.NotNil(t, answers, "last batch must signal completion with the full answer map")
	assert.Equal(t, model.FlowReview, st.Status)

	submitted, err := e.Submit(st)
	require.NoError(t, err)
	assert.Len(t, submitted, 6)
	assert.Equal(t, model.FlowComplete, st.Status)
}

func TestSkipReviewSubmitsOnLastAdvance(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3, SkipReview: true})
	st := e.NewState("f1")
	e.SelectCategory(st, "consulting")

	answerBatch(e, st)
	_, err := e.Advance(st)
	require.NoError(t, err)

	answerBatch(e, st)
	answers, err := e.Advance(st)
	require.NoError(t, err)
	assert.Len(t, answers, 6)
	assert.Equal(t, model.FlowComplete, st.Status)
}

func TestSubmitValidatesFullSetNotJustLastWindow(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "consulting")

	// Skip the first batch's answers entirely, then answer the second
	st.Cursor = 3
	answerBatch(e, st)

	_, err := e.Submit(st)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.MissingIDs, "company-name")
	assert.NotEqual(t, model.FlowComplete, st.Status)
}

func TestRetreatClampsAtZeroAndLeavesReview(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "consulting")

	e.Retreat(st)
	assert.Equal(t, 0, st.Cursor, "retreat at the start clamps to zero")

	answerBatch(e, st)
	_, err := e.Advance(st)
	require.NoError(t, err)
	answerBatch(e, st)
	_, err = e.Advance(st)
	require.NoError(t, err)
	require.Equal(t, model.FlowReview, st.Status)

	e.Retreat(st)
	assert.Equal(t, model.FlowInProgress, st.Status)
	assert.Equal(t, 3, st.Cursor, "retreat from review returns to the last batch")

	e.Retreat(st)
	assert.Equal(t, 0, st.Cursor)
}

func TestAdvanceWithoutCategory(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")

	_, err := e.Advance(st)
	assert.ErrorIs(t, err, ErrNoCategory)
}

func TestOptionalQuestionMayStayBlank(t *testing.T) {
	e := NewEngine(Config{BatchSize: 1})
	st := e.NewState("f1")
	e.SelectCategory(st, "nda")
	set := e.ActiveSet(st)

	for i := 0; i < set.Len(); i++ {
		q := set.Questions[i]
		if q.Required {
			e.SetAnswer(st, q.ID, text("filled"))
		}
		_, err := e.Advance(st)
		require.NoError(t, err, "question %s", q.ID)
	}
	assert.Equal(t, model.FlowReview, st.Status)

	_, err := e.Submit(st)
	assert.NoError(t, err, "optional additional-terms may stay blank")
}

func TestSummaryFollowsSetOrder(t *testing.T) {
	e := NewEngine(Config{BatchSize: 3})
	st := e.NewState("f1")
	e.SelectCategory(st, "nda")

	e.SetAnswer(st, "counterparty", text("XYZ Inc"))
	e.SetAnswer(st, "company-name", text("Acme Corp"))
	e.SetAnswer(st, "confidential-info", model.AnswerValue{Selections: []string{"Business plans", "Customer lists"}})

	summary := e.Summary(st)
	require.Len(t, summary, 3)
	assert.Equal(t, "company-name", summary[0].QuestionID)
	assert.Equal(t, "counterparty", summary[1].QuestionID)
	assert.Equal(t, "Business plans, Customer lists", summary[2].Value)
}
