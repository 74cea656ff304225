package email

// ContactData is the template data for TemplateContact.
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactSubjectPrefix is prepended to the submitter's subject line.
const ContactSubjectPrefix = "Portfolio Message: "

// NewContactMessage composes the operator notification for a submission.
// Replies go straight back to the submitter.
func NewContactMessage(from, to string, data ContactData) (*Message, error) {
	html, err := Render(TemplateContact, data)
	if err != nil {
		return nil, err
	}

	return &Message{
		From:    from,
		To:      to,
		Subject: ContactSubjectPrefix + data.Subject,
		HTML:    html,
		ReplyTo: data.Email,
	}, nil
}
