package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$" + suffix + "fakehashfortestingonly",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory creates an active category for the user.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, user_id, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.Name, category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return category
}

// SeedQualification creates an active qualification for the user.
func SeedQualification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Qualification {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	qualification := domain.Qualification{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO qualifications (id, user_id, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		qualification.ID, qualification.UserID, qualification.Name, qualification.IsActive,
		qualification.CreatedAt, qualification.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQualification insert: %v", err)
	}

	return qualification
}

// SeedQuestion creates an active question for the user, optionally referencing
// a category. The category name snapshot is filled from the category row.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category *domain.Category) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	question := domain.Question{
		ID:           uuid.New(),
		UserID:       userID,
		QuestionText: "Question " + suffix,
		Answer:       "Answer " + suffix,
		Tags:         []string{"seed"},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if category != nil {
		question.CategoryID = &category.ID
		question.CategoryName = &category.Name
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, user_id, question_text, answer, answer_pl,
		   category_id, category_name, qualification_id, qualification_name,
		   tags, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		question.ID, question.UserID, question.QuestionText, question.Answer, question.AnswerPL,
		question.CategoryID, question.CategoryName, question.QualificationID, question.QualificationName,
		question.Tags, question.IsActive, question.CreatedAt, question.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}

	return question
}

// SeedConversation creates an empty conversation for the user.
func SeedConversation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Conversation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	conversation := domain.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		conversation.ID, conversation.UserID, conversation.Title, conversation.CreatedAt, conversation.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation insert: %v", err)
	}

	return conversation
}

// SeedRandomization creates an ongoing session for the user.
func SeedRandomization(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Randomization {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.Randomization{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    domain.RandomizationStatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO randomizations (id, user_id, show_answer, status, current_question_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.UserID, session.ShowAnswer, session.Status, session.CurrentQuestionID,
		session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRandomization insert: %v", err)
	}

	return session
}
