package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/freementors/sdk-go/core"
)

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

// handleError maps a backend error onto an HTTP status and a JSON
// error body carrying the message verbatim.
func handleError(c fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	apiErr, ok := core.AsAPIError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case core.KindAuthorization:
		return http.StatusUnauthorized
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindValidation:
		return http.StatusBadRequest
	case core.KindConflict:
		return http.StatusConflict
	case core.KindTransport:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (a *Adapter) signup(c fiber.Ctx) error {
	var input core.SignupInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.backend.SignUp(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input core.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	token, user, err := a.backend.Login(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(core.AuthResult{Token: token, User: user})
}

func (a *Adapter) me(c fiber.Ctx) error {
	user, err := a.backend.Me(c.Context(), extractToken(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

func (a *Adapter) users(c fiber.Ctx) error {
	users, err := a.backend.Users(c.Context(), extractToken(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

func (a *Adapter) mentors(c fiber.Ctx) error {
	mentors, err := a.backend.Mentors(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(mentors)
}

func (a *Adapter) mentorByID(c fiber.Ctx) error {
	mentor, err := a.backend.MentorByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(mentor)
}

func (a *Adapter) mentorReviews(c fiber.Ctx) error {
	reviews, err := a.backend.MentorReviews(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

func (a *Adapter) changeToMentor(c fiber.Ctx) error {
	user, err := a.backend.ChangeToMentor(c.Context(), extractToken(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

func (a *Adapter) sessions(c fiber.Ctx) error {
	sessions, err := a.backend.Sessions(c.Context(), extractToken(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(sessions)
}

func (a *Adapter) createSession(c fiber.Ctx) error {
	var input core.SessionRequest
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, err := a.backend.CreateSession(c.Context(), extractToken(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(session)
}

func (a *Adapter) updateSessionStatus(c fiber.Ctx) error {
	var body struct {
		Status core.SessionStatus `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	session, err := a.backend.UpdateSessionStatus(c.Context(), extractToken(c), c.Params("id"), body.Status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(session)
}

func (a *Adapter) allReviews(c fiber.Ctx) error {
	reviews, err := a.backend.AllReviews(c.Context(), extractToken(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

func (a *Adapter) createReview(c fiber.Ctx) error {
	var input core.ReviewInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	review, err := a.backend.CreateReview(c.Context(), extractToken(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(review)
}

func (a *Adapter) setReviewVisibility(c fiber.Ctx) error {
	var body struct {
		Visible bool `json:"visible"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	review, err := a.backend.SetReviewVisibility(c.Context(), extractToken(c), c.Params("id"), body.Visible)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(review)
}
