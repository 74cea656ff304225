package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[Template]any{
	TemplateContact: ContactData{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "Hi!\nI enjoyed your portfolio.\nLet's talk.",
	},
}
