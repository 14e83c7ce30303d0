// internal/app/features/contactform/handler.go
package contactform

import (
	"net/http"

	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/mailer"
	"go.uber.org/zap"
)

const (
	maxName    = 200
	maxEmail   = 254
	maxMessage = 5000
)

// Handler owns the public contact form endpoint. This is the one public
// mutation surface, so it gets its own rate limiting via the parent router
// and validates everything before the message reaches the mail relay.
type Handler struct {
	Mailer   *mailer.Mailer
	To       string
	SiteName string
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the mail relay and recipient.
func NewHandler(m *mailer.Mailer, to, siteName string, logger *zap.Logger) *Handler {
	return &Handler{Mailer: m, To: to, SiteName: siteName, Log: logger}
}

// HandleSubmit handles POST /api/contact. Name, a deliverable email, and a
// message are all required; 503 when no mail relay is configured.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.Mailer.Enabled() || h.To == "" {
		h.Log.Warn("contact form submitted with no mail relay configured")
		apiutil.Error(w, http.StatusServiceUnavailable, "contact form is not available")
		return
	}

	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	name, nameOK := inputval.String(fields["name"], maxName)
	email, emailOK := inputval.String(fields["email"], maxEmail)
	message, msgOK := inputval.String(fields["message"], maxMessage)
	if !nameOK || name == "" || !msgOK || message == "" {
		apiutil.BadRequest(w, "name and message are required")
		return
	}
	if !emailOK || !inputval.IsValidEmail(email) {
		apiutil.BadRequest(w, "a valid email address is required")
		return
	}

	msg := mailer.BuildContactEmail(mailer.ContactMessageData{
		SiteName:    h.SiteName,
		SenderName:  name,
		SenderEmail: email,
		Message:     message,
	})
	msg.To = h.To

	if err := h.Mailer.Send(msg); err != nil {
		h.Log.Error("send contact email", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, nil)
}
