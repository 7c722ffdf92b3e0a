package question

import (
	"context"

	"github.com/quizdeck/quizdeck-backend/internal/dispatch"
	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// Register binds question operations to the dispatcher and subscribes the
// reference-cleanup handlers to category and qualification deletions.
func Register(d *dispatch.Dispatcher, svc *Service) {
	dispatch.MustRegister(d, func(ctx context.Context, cmd CreateQuestionInput) (*domain.Question, error) {
		return svc.CreateQuestion(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd GetQuestionInput) (*domain.Question, error) {
		return svc.GetQuestion(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd ListQuestionsInput) ([]*domain.Question, error) {
		return svc.ListQuestions(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd UpdateQuestionInput) (*domain.Question, error) {
		return svc.UpdateQuestion(ctx, cmd)
	})
	dispatch.MustRegister(d, func(ctx context.Context, cmd DeleteQuestionInput) (struct{}, error) {
		return struct{}{}, svc.DeleteQuestion(ctx, cmd)
	})

	dispatch.Subscribe(d, "question.remove_category_refs", svc.RemoveCategoryRefs)
	dispatch.Subscribe(d, "question.remove_qualification_refs", svc.RemoveQualificationRefs)
}
