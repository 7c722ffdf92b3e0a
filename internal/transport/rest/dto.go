package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryResponses(cs []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type qualificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toQualificationResponse(q *domain.Qualification) qualificationResponse {
	return qualificationResponse{
		ID:        q.ID,
		Name:      q.Name,
		IsActive:  q.IsActive,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toQualificationResponses(qs []*domain.Qualification) []qualificationResponse {
	out := make([]qualificationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQualificationResponse(q))
	}
	return out
}

type questionResponse struct {
	ID                uuid.UUID  `json:"id"`
	QuestionText      string     `json:"question_text"`
	Answer            string     `json:"answer"`
	AnswerPL          *string    `json:"answer_pl,omitempty"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
	CategoryName      *string    `json:"category_name,omitempty"`
	QualificationID   *uuid.UUID `json:"qualification_id,omitempty"`
	QualificationName *string    `json:"qualification_name,omitempty"`
	Tags              []string   `json:"tags"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toQuestionResponse(q *domain.Question) questionResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return questionResponse{
		ID:                q.ID,
		QuestionText:      q.QuestionText,
		Answer:            q.Answer,
		AnswerPL:          q.AnswerPL,
		CategoryID:        q.CategoryID,
		CategoryName:      q.CategoryName,
		QualificationID:   q.QualificationID,
		QualificationName: q.QualificationName,
		Tags:              tags,
		IsActive:          q.IsActive,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func toQuestionResponses(qs []*domain.Question) []questionResponse {
	out := make([]questionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQuestionResponse(q))
	}
	return out
}

type conversationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toConversationResponse(c *domain.Conversation) conversationResponse {
	return conversationResponse{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toConversationResponses(cs []*domain.Conversation) []conversationResponse {
	out := make([]conversationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toConversationResponse(c))
	}
	return out
}

type messageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Role:           string(m.Role),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

func toMessageResponses(ms []*domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMessageResponse(m))
	}
	return out
}

type randomizationResponse struct {
	ID                uuid.UUID  `json:"id"`
	ShowAnswer        bool       `json:"show_answer"`
	Status            string     `json:"status"`
	CurrentQuestionID *uuid.UUID `json:"current_question_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toRandomizationResponse(s *domain.Randomization) randomizationResponse {
	return randomizationResponse{
		ID:                s.ID,
		ShowAnswer:        s.ShowAnswer,
		Status:            s.Status,
		CurrentQuestionID: s.CurrentQuestionID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toRandomizationResponses(ss []*domain.Randomization) []randomizationResponse {
	out := make([]randomizationResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, toRandomizationResponse(s))
	}
	return out
}

type selectedCategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSelectedCategoryResponses(rows []*domain.SelectedCategory) []selectedCategoryResponse {
	out := make([]selectedCategoryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, selectedCategoryResponse{
			ID:         row.ID,
			CategoryID: row.CategoryID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}

type sessionQuestionResponse struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUsedQuestionResponses(rows []*domain.UsedQuestion) []sessionQuestionResponse {
	out := make([]sessionQuestionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionQuestionResponse{
			ID:         row.ID,
			QuestionID: row.QuestionID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}

func toPostponedQuestionResponses(rows []*domain.PostponedQuestion) []sessionQuestionResponse {
	out := make([]sessionQuestionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionQuestionResponse{
			ID:         row.ID,
			QuestionID: row.QuestionID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}
