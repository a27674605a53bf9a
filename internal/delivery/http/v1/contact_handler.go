package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"contact-mail-backend/internal/delivery/http/response"
	"contact-mail-backend/internal/domain"
	"contact-mail-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// rejectionMessages maps validator reasons to client messages
var rejectionMessages = map[error]string{
	domain.ErrMissingFields:    "Missing required fields",
	domain.ErrNameTooLong:      "Name is too long",
	domain.ErrInvalidEmail:     "Invalid email format",
	domain.ErrMessageTooLong:   "Message is too long",
	domain.ErrMalformedPayload: "Malformed JSON payload",
}

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(group *gin.RouterGroup, contactUC domain.ContactUsecase, guards ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	group.POST("/send/mail", append(chain, handler.SendMail)...)

	// Preflight is answered by the CORS guard
	if len(guards) > 0 {
		group.OPTIONS("/send/mail", guards...)
	}
}

// SendMail godoc
// @Summary      Submit Contact Form
// @Description  Relays a contact form submission to the site owner and sends the customer an acknowledgment.
// @Tags         contact
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send/mail [post]
func (h *ContactHandler) SendMail(c *gin.Context) {
	raw, err := decodeBody(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Payload too large", err))
			return
		}
		c.Error(apperror.BadRequest(rejectionMessages[domain.ErrMalformedPayload], err))
		return
	}

	sub, err := h.contactUC.ValidateSubmission(raw)
	if err != nil {
		c.Error(rejection(err))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), sub.Name, sub.Email, sub.Message)
	if err != nil {
		c.Error(apperror.Internal("Error sending email", err))
		return
	}

	if !result.Succeeded() {
		c.Error(apperror.Internal("Email sending failed", errors.Join(result.Result.Err, result.CustomerResult.Err)))
		return
	}

	response.Success(c, http.StatusCreated, string(result.CustomerResult.Status), nil)
}

func rejection(err error) *apperror.AppError {
	for reason, msg := range rejectionMessages {
		if errors.Is(err, reason) {
			return apperror.BadRequest(msg, nil)
		}
	}
	return apperror.BadRequest("Invalid request", err)
}

// decodeBody turns a JSON or form encoded body into a generic object.
// An empty body or an unknown content type yields an empty object.
func decodeBody(c *gin.Context) (map[string]any, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	data, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	body := map[string]any{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return body, nil
	}

	switch c.ContentType() {
	case gin.MIMEJSON:
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, err
		}
		if body == nil {
			body = map[string]any{}
		}
	case gin.MIMEPOSTForm:
		body = decodeForm(string(data))
	}

	return body, nil
}

// decodeForm parses a form body leniently: only "&" separates pairs, the first
// value of a key wins, and escapes that do not decode are kept as literal text.
// A body that looks like a JSON document and has no "=" becomes a single key.
func decodeForm(raw string) map[string]any {
	body := map[string]any{}

	if strings.HasPrefix(strings.TrimSpace(raw), "{") && !strings.Contains(raw, "=") {
		body[unescapeFormText(strings.TrimSpace(raw))] = ""
		return body
	}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescapeFormText(key)
		if key == "" {
			continue
		}
		if _, seen := body[key]; !seen {
			body[key] = unescapeFormText(value)
		}
	}

	return body
}

func unescapeFormText(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return strings.ReplaceAll(s, "+", " ")
}
