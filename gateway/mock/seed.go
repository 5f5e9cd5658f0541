package mock

import (
	"context"
	"time"

	"github.com/freementors/sdk-go/core"
	"github.com/freementors/sdk-go/pkg/crypto"
)

// SeedPassword is the password every seeded account accepts.
const SeedPassword = "password123"

func strptr(s string) *string { return &s }

type seedMentor struct {
	id, email, firstName, lastName, bio string
	expertise                           []string
	rating                              float64
	totalReviews                        int
	yearsOfExperience                   int
	availableDays                       []string
}

// Seed loads the demo dataset: one admin, one mentee, and five mentors
// with established ratings, plus one accepted and one pending session
// for the mentee.
func Seed(ctx context.Context, store Store, passwords crypto.PasswordHandler) error {
	hash, err := passwords.Hash(SeedPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	users := []*core.User{
		{
			ID:        "1",
			Email:     "admin@freementors.com",
			FirstName: "Admin",
			LastName:  "User",
			Role:      core.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "2",
			Email:     "johndoe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Role:      core.RoleMentee,
			Bio:       strptr("Regular user looking for mentorship"),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	mentors := []seedMentor{
		{
			id: "3", email: "sarah.johnson@example.com", firstName: "Sarah", lastName: "Johnson",
			bio:       "Experienced software developer with 10 years of industry experience. I specialize in web development and enjoy helping others grow in their careers.",
			expertise: []string{"React", "JavaScript", "Web Development"},
			rating:    4.8, totalReviews: 24, yearsOfExperience: 10,
			availableDays: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			id: "4", email: "michael.brown@example.com", firstName: "Michael", lastName: "Brown",
			bio:       "Data Scientist with focus on ML and AI. I've worked with startups and large enterprises to implement data-driven solutions.",
			expertise: []string{"Data Science", "Python", "Machine Learning"},
			rating:    4.9, totalReviews: 19, yearsOfExperience: 8,
			availableDays: []string{"Tuesday", "Thursday", "Saturday"},
		},
		{
			id: "5", email: "emma.wilson@example.com", firstName: "Emma", lastName: "Wilson",
			bio:       "UX/UI Designer passionate about creating beautiful and intuitive user experiences. I can help with design thinking, user research, and portfolio reviews.",
			expertise: []string{"UX Design", "UI Design", "Figma", "User Research"},
			rating:    4.7, totalReviews: 15, yearsOfExperience: 6,
			availableDays: []string{"Monday", "Tuesday", "Friday"},
		},
		{
			id: "6", email: "david.lee@example.com", firstName: "David", lastName: "Lee",
			bio:       "DevOps engineer specializing in cloud infrastructure and CI/CD pipelines. I can help you with AWS, Docker, Kubernetes, and more.",
			expertise: []string{"DevOps", "AWS", "Docker", "Kubernetes"},
			rating:    4.6, totalReviews: 12, yearsOfExperience: 7,
			availableDays: []string{"Wednesday", "Thursday", "Saturday"},
		},
		{
			id: "7", email: "lisa.taylor@example.com", firstName: "Lisa", lastName: "Taylor",
			bio:       "Software Engineering Manager with experience leading teams at top tech companies. I can provide career guidance and leadership advice.",
			expertise: []string{"Leadership", "Career Development", "Engineering Management"},
			rating:    5.0, totalReviews: 21, yearsOfExperience: 12,
			availableDays: []string{"Monday", "Wednesday", "Friday"},
		},
	}

	for _, u := range users {
		if err := store.CreateUser(ctx, u, hash); err != nil {
			return err
		}
	}

	for _, m := range mentors {
		user := &core.User{
			ID:        m.id,
			Email:     m.email,
			FirstName: m.firstName,
			LastName:  m.lastName,
			Role:      core.RoleMentor,
			Bio:       strptr(m.bio),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.CreateUser(ctx, user, hash); err != nil {
			return err
		}
		mentor := &core.Mentor{
			User:              *user,
			Expertise:         m.expertise,
			Rating:            m.rating,
			TotalReviews:      m.totalReviews,
			YearsOfExperience: m.yearsOfExperience,
			AvailableDays:     m.availableDays,
		}
		if err := store.CreateMentorProfile(ctx, mentor); err != nil {
			return err
		}
	}

	scheduled := now.Add(7 * 24 * time.Hour)
	sessions := []*core.Session{
		{
			ID:            "1",
			MentorID:      "3",
			MenteeID:      "2",
			Topic:         "Career Transition to Web Development",
			Questions:     "I need guidance on transitioning from backend to frontend development",
			Status:        core.StatusAccepted,
			ScheduledDate: &scheduled,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:        "2",
			MentorID:  "4",
			MenteeID:  "2",
			Topic:     "Help with Machine Learning Project",
			Questions: "I'm working on a personal ML project and need some advice on model selection",
			Status:    core.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, s := range sessions {
		if err := store.CreateSession(ctx, s); err != nil {
			return err
		}
	}

	return nil
}
