package handler

import (
	"time"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/recruitment/dto"
	"github.com/gohire/recruitment-service/internal/recruitment/service"
	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "GOHIRE_SESSION"

type RecruitmentHandler struct {
	personService  *service.PersonService
	sessionService *service.SessionService
	secureCookie   bool
}

func NewRecruitmentHandler(personService *service.PersonService, sessionService *service.SessionService, secureCookie bool) *RecruitmentHandler {
	return &RecruitmentHandler{
		personService:  personService,
		sessionService: sessionService,
		secureCookie:   secureCookie,
	}
}

// parseAndValidate decodes the JSON body into input and runs its field
// constraints. Both failures surface as a ValidationError.
func parseAndValidate(c *fiber.Ctx, input interface{}) error {
	if err := c.BodyParser(input); err != nil {
		return &apperrors.ValidationError{Fields: []apperrors.FieldError{{Message: "Malformed request body."}}}
	}
	return dto.Validate(input)
}

func (h *RecruitmentHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	person, err := h.personService.Login(c.UserContext(), input)
	if err != nil {
		return err
	}

	token, expiresAt, err := h.sessionService.Start(c.UserContext(), person)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, token, expiresAt)

	return c.Status(fiber.StatusOK).JSON(dto.NewLoggedInPersonOutput(person))
}

func (h *RecruitmentHandler) CreateApplicant(c *fiber.Ctx) error {
	var input dto.CreateApplicantInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	person, err := h.personService.CreateApplicant(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewLoggedInPersonOutput(person))
}

func (h *RecruitmentHandler) ListApplications(c *fiber.Ctx) error {
	applicants, err := h.personService.ListApplications(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewApplicantOutputs(applicants))
}

func (h *RecruitmentHandler) ChangeApplicationStatus(c *fiber.Ctx) error {
	var input dto.ChangeStatusInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	applicant, err := h.personService.ChangeApplicationStatus(c.UserContext(), currentSession(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewApplicantOutput(*applicant))
}

// Logout ends the server-side session before the event is written, so a
// logging failure still leaves the client logged out.
func (h *RecruitmentHandler) Logout(c *fiber.Ctx) error {
	session := currentSession(c)
	if err := h.sessionService.End(c.UserContext(), session); err != nil {
		return err
	}
	c.ClearCookie(SessionCookieName)

	if err := h.personService.RecordLogout(session.Username); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageOutput{Message: "Logged out"})
}

func (h *RecruitmentHandler) Who(c *fiber.Ctx) error {
	person, err := h.personService.FetchPerson(c.UserContext(), currentSession(c).PersonID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.WhoOutput{Username: person.Username})
}

func (h *RecruitmentHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
