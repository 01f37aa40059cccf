// Package validator provides rule-based validation with structured errors.
//
// Rules are plain values built by helper constructors and evaluated together by Apply:
//
//	err := validator.Apply(
//		validator.RequiredString("name", sub.Name),
//		validator.ValidEmail("email", sub.Email),
//		validator.Accepted("consent", sub.Consent),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		log.Info("invalid submission", "fields", ve.Fields())
//	}
//
// Every failing rule contributes a ValidationError carrying the field name and a short
// English message. Messages are meant for logs, not for end users.
package validator
