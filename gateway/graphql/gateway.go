package graphql

import (
	"context"

	"github.com/machinebox/graphql"

	"github.com/freementors/sdk-go/core"
)

const userFields = `
	id
	firstName
	lastName
	email
	bio
	expertise
	occupation
	userType
`

const sessionFields = `
	id
	mentor {
		id
		firstName
		lastName
	}
	mentee {
		id
		firstName
		lastName
	}
	topic
	questions
	status
`

const reviewFields = `
	id
	session {
		id
		mentor {
			id
			firstName
			lastName
		}
		mentee {
			id
			firstName
			lastName
		}
	}
	rating
	content
	isVisible
	createdAt
	updatedAt
`

func (c *Client) SignUp(ctx context.Context, input core.SignupInput) (*core.User, error) {
	req := graphql.NewRequest(`
		mutation CreateUser($firstName: String!, $lastName: String!, $email: String!, $password: String!) {
			createUser(firstName: $firstName, lastName: $lastName, email: $email, password: $password) {
				user {` + userFields + `}
			}
		}`)
	req.Var("firstName", input.FirstName)
	req.Var("lastName", input.LastName)
	req.Var("email", input.Email)
	req.Var("password", input.Password)

	var resp struct {
		CreateUser struct {
			User wireUser `json:"user"`
		} `json:"createUser"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.CreateUser.User.toUser(), nil
}

// Login exchanges credentials for a token, persists it, then fetches
// the caller's identity under that token. The persist happens first so
// the identity request is already authenticated.
func (c *Client) Login(ctx context.Context, input core.LoginInput) (*core.AuthResult, error) {
	req := graphql.NewRequest(`
		mutation TokenAuth($email: String!, $password: String!) {
			tokenAuth(email: $email, password: $password) {
				token
			}
		}`)
	req.Var("email", input.Email)
	req.Var("password", input.Password)

	var resp struct {
		TokenAuth struct {
			Token string `json:"token"`
		} `json:"tokenAuth"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.TokenAuth.Token); err != nil {
		return nil, core.TransportError(err)
	}

	user, err := c.Me(ctx)
	if err != nil {
		return nil, err
	}
	return &core.AuthResult{Token: resp.TokenAuth.Token, User: user}, nil
}

func (c *Client) Me(ctx context.Context) (*core.User, error) {
	req := graphql.NewRequest(`
		query {
			me {` + userFields + `}
		}`)

	var resp struct {
		Me wireUser `json:"me"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Me.toUser(), nil
}

func (c *Client) Users(ctx context.Context) ([]*core.User, error) {
	req := graphql.NewRequest(`
		query {
			users {` + userFields + `}
		}`)

	var resp struct {
		Users []wireUser `json:"users"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	users := make([]*core.User, len(resp.Users))
	for i, w := range resp.Users {
		users[i] = w.toUser()
	}
	return users, nil
}

func (c *Client) Mentors(ctx context.Context) ([]*core.Mentor, error) {
	req := graphql.NewRequest(`
		query {
			mentors {` + userFields + `}
		}`)

	var resp struct {
		Mentors []wireUser `json:"mentors"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	mentors := make([]*core.Mentor, len(resp.Mentors))
	for i, w := range resp.Mentors {
		mentors[i] = w.toMentor()
	}
	return mentors, nil
}

func (c *Client) MentorByID(ctx context.Context, id string) (*core.Mentor, error) {
	req := graphql.NewRequest(`
		query Mentor($id: ID!) {
			mentor(id: $id) {` + userFields + `}
		}`)
	req.Var("id", id)

	var resp struct {
		Mentor wireUser `json:"mentor"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Mentor.toMentor(), nil
}

func (c *Client) ChangeToMentor(ctx context.Context, userID string) (*core.User, error) {
	req := graphql.NewRequest(`
		mutation ChangeToMentor($userId: ID!) {
			changeToMentor(userId: $userId) {
				user {` + userFields + `}
			}
		}`)
	req.Var("userId", userID)

	var resp struct {
		ChangeToMentor struct {
			User wireUser `json:"user"`
		} `json:"changeToMentor"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.ChangeToMentor.User.toUser(), nil
}

func (c *Client) Sessions(ctx context.Context) ([]*core.Session, error) {
	req := graphql.NewRequest(`
		query {
			userSessions {` + sessionFields + `}
		}`)

	var resp struct {
		UserSessions []wireSession `json:"userSessions"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	sessions := make([]*core.Session, len(resp.UserSessions))
	for i, w := range resp.UserSessions {
		sessions[i] = w.toSession()
	}
	return sessions, nil
}

func (c *Client) CreateSession(ctx context.Context, input core.SessionRequest) (*core.Session, error) {
	req := graphql.NewRequest(`
		mutation CreateSession($mentorId: ID!, $topic: String!, $questions: String!) {
			createSession(mentorId: $mentorId, topic: $topic, questions: $questions) {
				session {` + sessionFields + `}
			}
		}`)
	req.Var("mentorId", input.MentorID)
	req.Var("topic", input.Topic)
	req.Var("questions", input.Questions)

	var resp struct {
		CreateSession struct {
			Session wireSession `json:"session"`
		} `json:"createSession"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.CreateSession.Session.toSession(), nil
}

func (c *Client) UpdateSessionStatus(ctx context.Context, sessionID string, status core.SessionStatus) (*core.Session, error) {
	req := graphql.NewRequest(`
		mutation UpdateSessionStatus($sessionId: ID!, $status: String!) {
			updateSessionStatus(sessionId: $sessionId, status: $status) {
				session {` + sessionFields + `}
			}
		}`)
	req.Var("sessionId", sessionID)
	req.Var("status", statusToWire(status))

	var resp struct {
		UpdateSessionStatus struct {
			Session wireSession `json:"session"`
		} `json:"updateSessionStatus"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.UpdateSessionStatus.Session.toSession(), nil
}

func (c *Client) MentorReviews(ctx context.Context, mentorID string) ([]*core.Review, error) {
	req := graphql.NewRequest(`
		query MentorReviews($mentorId: String!) {
			mentorReviews(mentorId: $mentorId) {` + reviewFields + `}
		}`)
	req.Var("mentorId", mentorID)

	var resp struct {
		MentorReviews []wireReview `json:"mentorReviews"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	reviews := make([]*core.Review, len(resp.MentorReviews))
	for i, w := range resp.MentorReviews {
		reviews[i] = w.toReview()
	}
	return reviews, nil
}

func (c *Client) AllReviews(ctx context.Context) ([]*core.Review, error) {
	req := graphql.NewRequest(`
		query {
			allReviews {` + reviewFields + `}
		}`)

	var resp struct {
		AllReviews []wireReview `json:"allReviews"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	reviews := make([]*core.Review, len(resp.AllReviews))
	for i, w := range resp.AllReviews {
		reviews[i] = w.toReview()
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, input core.ReviewInput) (*core.Review, error) {
	req := graphql.NewRequest(`
		mutation CreateReview($sessionId: String!, $rating: Int!, $content: String!) {
			createReview(sessionId: $sessionId, rating: $rating, content: $content) {
				review {` + reviewFields + `}
			}
		}`)
	req.Var("sessionId", input.SessionID)
	// The schema stores whole-star ratings only
	req.Var("rating", int(input.Rating))
	req.Var("content", input.Content)

	var resp struct {
		CreateReview struct {
			Review wireReview `json:"review"`
		} `json:"createReview"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.CreateReview.Review.toReview(), nil
}

func (c *Client) SetReviewVisibility(ctx context.Context, reviewID string, visible bool) (*core.Review, error) {
	req := graphql.NewRequest(`
		mutation UpdateReviewVisibility($reviewId: ID!, $isVisible: Boolean!) {
			updateReviewVisibility(reviewId: $reviewId, isVisible: $isVisible) {
				review {` + reviewFields + `}
			}
		}`)
	req.Var("reviewId", reviewID)
	req.Var("isVisible", visible)

	var resp struct {
		UpdateReviewVisibility struct {
			Review wireReview `json:"review"`
		} `json:"updateReviewVisibility"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.UpdateReviewVisibility.Review.toReview(), nil
}
